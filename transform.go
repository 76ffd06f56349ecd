package mortality

import (
	"github.com/pivolan/go_utils"

	"github.com/emoren/mortality_stats/dataframe"
)

// DefaultAggColumn is the death-count column the transformations aggregate
// and sort by unless told otherwise.
const DefaultAggColumn = "Total"

// RowFilter keeps the rows whose value in column is one of values, sorted
// by the "Total" column descending. All columns are preserved.
func RowFilter(df *dataframe.DataFrame, column string, values []string) (*dataframe.DataFrame, error) {
	return filterRows(df, column, values, true)
}

// NRowFilter keeps the rows whose value in column is NOT one of values,
// sorted by the "Total" column descending. Together with RowFilter it
// partitions the table exactly.
func NRowFilter(df *dataframe.DataFrame, column string, values []string) (*dataframe.DataFrame, error) {
	return filterRows(df, column, values, false)
}

func filterRows(df *dataframe.DataFrame, column string, values []string, include bool) (*dataframe.DataFrame, error) {
	s, err := df.Column(column)
	if err != nil {
		return nil, err
	}
	mask := make([]bool, df.NumRows())
	for i := range mask {
		mask[i] = go_utils.InArray(s.String(i), values) == include
	}
	filtered, err := df.Filter(mask)
	if err != nil {
		return nil, err
	}
	return filtered.SortByDesc(DefaultAggColumn)
}

// GroupBySum groups rows by the combination of values across groupVars and
// sums aggVar within each group, returning one row per distinct group
// sorted descending by sortVar. Empty aggVar or sortVar default to "Total".
// Combinations absent from the input do not appear in the output.
func GroupBySum(df *dataframe.DataFrame, groupVars []string, aggVar, sortVar string) (*dataframe.DataFrame, error) {
	if aggVar == "" {
		aggVar = DefaultAggColumn
	}
	if sortVar == "" {
		sortVar = DefaultAggColumn
	}
	grouped, err := df.GroupBySum(groupVars, aggVar)
	if err != nil {
		return nil, err
	}
	return grouped.SortByDesc(sortVar)
}

// PivotTable spreads the distinct values of col into columns, one row per
// distinct xAxis value, cells holding the summed value column for that
// pair. Empty value defaults to "Total"; pairs absent from the input leave
// a missing cell.
func PivotTable(df *dataframe.DataFrame, col, xAxis, value string) (*dataframe.DataFrame, error) {
	if value == "" {
		value = DefaultAggColumn
	}
	return df.Pivot(col, xAxis, value)
}
