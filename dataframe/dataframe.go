// Package dataframe holds a small column-oriented table type used by the
// mortality statistics helpers. A DataFrame is an ordered set of named,
// equal-length Series; every operation reads its receiver and returns a
// freshly built DataFrame, so values can be shared between goroutines
// without coordination.
package dataframe

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

type DataFrame struct {
	cols []*Series
}

// New builds a DataFrame from the given columns. Duplicate column names get
// a numeric suffix the same way repeated CSV headers do. All columns must
// have the same length.
func New(series ...*Series) (*DataFrame, error) {
	names := make([]string, len(series))
	for i, s := range series {
		names[i] = s.Name()
	}
	names = dedupeHeaders(names)

	df := &DataFrame{cols: make([]*Series, len(series))}
	for i, s := range series {
		if s.Len() != series[0].Len() {
			return nil, errors.Wrapf(ErrInvalidInput,
				"column %q has %d rows, want %d", s.Name(), s.Len(), series[0].Len())
		}
		df.cols[i] = s.rename(names[i])
	}
	return df, nil
}

// Columns returns the column names in table order.
func (df *DataFrame) Columns() []string {
	names := make([]string, len(df.cols))
	for i, s := range df.cols {
		names[i] = s.Name()
	}
	return names
}

func (df *DataFrame) NumCols() int { return len(df.cols) }

func (df *DataFrame) NumRows() int {
	if len(df.cols) == 0 {
		return 0
	}
	return df.cols[0].Len()
}

// Column returns the named column or ErrInvalidInput when it does not exist.
func (df *DataFrame) Column(name string) (*Series, error) {
	for _, s := range df.cols {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, errMissingColumn(name)
}

// Row returns the cells of row i across all columns.
func (df *DataFrame) Row(i int) []interface{} {
	row := make([]interface{}, len(df.cols))
	for c, s := range df.cols {
		row[c] = s.Value(i)
	}
	return row
}

// Filter keeps the rows whose mask entry is true, preserving row order and
// all columns. The mask must cover every row.
func (df *DataFrame) Filter(mask []bool) (*DataFrame, error) {
	if len(mask) != df.NumRows() {
		return nil, errors.Wrapf(ErrInvalidInput,
			"mask has %d entries, table has %d rows", len(mask), df.NumRows())
	}
	keep := []int{}
	for i, ok := range mask {
		if ok {
			keep = append(keep, i)
		}
	}
	return df.takeRows(keep), nil
}

// SortByDesc returns the table sorted descending by the given column. The
// sort is stable, compares numerically when both cells parse as numbers and
// lexicographically otherwise, and puts missing cells last.
func (df *DataFrame) SortByDesc(column string) (*DataFrame, error) {
	s, err := df.Column(column)
	if err != nil {
		return nil, err
	}
	order := make([]int, df.NumRows())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		va, vb := s.Value(order[a]), s.Value(order[b])
		if va == nil {
			return false
		}
		if vb == nil {
			return true
		}
		return compareCells(va, vb) > 0
	})
	return df.takeRows(order), nil
}

// GroupBySum groups rows by the combination of values across groupCols and
// sums aggCol within each group. Groups appear in first-occurrence order;
// combinations absent from the input are absent from the output. Sums are
// float64; cells that do not parse as numbers are skipped.
func (df *DataFrame) GroupBySum(groupCols []string, aggCol string) (*DataFrame, error) {
	keyCols := make([]*Series, len(groupCols))
	for i, name := range groupCols {
		s, err := df.Column(name)
		if err != nil {
			return nil, err
		}
		keyCols[i] = s
	}
	agg, err := df.Column(aggCol)
	if err != nil {
		return nil, err
	}

	type group struct {
		firstRow int
		sum      float64
	}
	index := map[string]int{}
	groups := []*group{}
	for i := 0; i < df.NumRows(); i++ {
		parts := make([]string, len(keyCols))
		for c, s := range keyCols {
			parts[c] = cellKey(s.Value(i))
		}
		key := strings.Join(parts, "\x00")
		g, ok := index[key]
		if !ok {
			g = len(groups)
			index[key] = g
			groups = append(groups, &group{firstRow: i})
		}
		if f, ok := agg.Float(i); ok {
			groups[g].sum += f
		}
	}

	out := make([]*Series, 0, len(groupCols)+1)
	for c, s := range keyCols {
		values := make([]interface{}, len(groups))
		for gi, g := range groups {
			values[gi] = s.Value(g.firstRow)
		}
		out = append(out, NewSeries(groupCols[c], values...))
	}
	sums := make([]interface{}, len(groups))
	for gi, g := range groups {
		sums[gi] = g.sum
	}
	out = append(out, NewSeries(aggCol, sums...))
	return New(out...)
}

// Pivot spreads the distinct values of col into columns, one row per
// distinct xAxis value, cells holding the sum of value for that pair. Both
// axes come out sorted ascending; pairs absent from the input leave a nil
// cell. Duplicate (xAxis, col) pairs are tolerated and summed.
func (df *DataFrame) Pivot(col, xAxis, value string) (*DataFrame, error) {
	spread, err := df.Column(col)
	if err != nil {
		return nil, err
	}
	axis, err := df.Column(xAxis)
	if err != nil {
		return nil, err
	}
	val, err := df.Column(value)
	if err != nil {
		return nil, err
	}

	rowVals := sortCellsAsc(axis.Unique())
	colVals := sortCellsAsc(spread.Unique())
	rowIdx := map[string]int{}
	for i, v := range rowVals {
		rowIdx[cellKey(v)] = i
	}
	colIdx := map[string]int{}
	for i, v := range colVals {
		colIdx[cellKey(v)] = i
	}

	cells := make([][]interface{}, len(colVals))
	for c := range cells {
		cells[c] = make([]interface{}, len(rowVals))
	}
	for i := 0; i < df.NumRows(); i++ {
		r := rowIdx[cellKey(axis.Value(i))]
		c := colIdx[cellKey(spread.Value(i))]
		f, ok := val.Float(i)
		if !ok {
			continue
		}
		if cells[c][r] == nil {
			cells[c][r] = f
		} else {
			cells[c][r] = cells[c][r].(float64) + f
		}
	}

	out := make([]*Series, 0, len(colVals)+1)
	out = append(out, NewSeries(xAxis, rowVals...))
	for c, v := range colVals {
		out = append(out, NewSeries(cellString(v), cells[c]...))
	}
	return New(out...)
}

func (df *DataFrame) takeRows(idx []int) *DataFrame {
	cols := make([]*Series, len(df.cols))
	for c, s := range df.cols {
		values := make([]interface{}, len(idx))
		for i, r := range idx {
			values[i] = s.Value(r)
		}
		cols[c] = NewSeries(s.Name(), values...)
	}
	return &DataFrame{cols: cols}
}

// compareCells orders two cells ascending: numeric comparison when both
// sides parse as numbers, string comparison otherwise, nil after everything.
func compareCells(a, b interface{}) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	fa, oka := toFloat(a)
	fb, okb := toFloat(b)
	if oka && okb {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(cellString(a), cellString(b))
}

func sortCellsAsc(values []interface{}) []interface{} {
	out := make([]interface{}, len(values))
	copy(out, values)
	sort.SliceStable(out, func(a, b int) bool {
		return compareCells(out[a], out[b]) < 0
	})
	return out
}
