package mortality

import (
	"sort"

	"github.com/emoren/mortality_stats/dataframe"
)

// CatVar summarizes the categorical columns named in cols: one output row
// per column with its name, the number of distinct values it takes and the
// distinct values themselves in first-occurrence order. Rows come out
// sorted by cardinality descending, ties keeping the input column order.
func CatVar(df *dataframe.DataFrame, cols []string) (*dataframe.DataFrame, error) {
	names := make([]interface{}, len(cols))
	counts := make([]interface{}, len(cols))
	values := make([]interface{}, len(cols))
	for i, col := range cols {
		s, err := df.Column(col)
		if err != nil {
			return nil, err
		}
		uniq := s.Unique()
		names[i] = col
		counts[i] = len(uniq)
		values[i] = uniq
	}

	order := make([]int, len(cols))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]].(int) > counts[order[b]].(int)
	})

	take := func(src []interface{}) []interface{} {
		out := make([]interface{}, len(order))
		for i, j := range order {
			out[i] = src[j]
		}
		return out
	}
	return dataframe.New(
		dataframe.NewSeries("categorical_variable", take(names)...),
		dataframe.NewSeries("number_of_possible_values", take(counts)...),
		dataframe.NewSeries("values", take(values)...),
	)
}
