package mortality

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emoren/mortality_stats/dataframe"
)

func deathsTable(t *testing.T) *dataframe.DataFrame {
	t.Helper()
	df, err := dataframe.New(
		dataframe.NewSeries("Sexo", "Hombres", "Mujeres", "Hombres", "Mujeres", "Hombres", "Mujeres"),
		dataframe.NewSeries("Periodo", 2019, 2019, 2020, 2020, 2019, 2020),
		dataframe.NewSeries("Causa",
			"001-102 I-XXII.Todas las causas",
			"001-102 I-XXII.Todas las causas",
			"062 Gripe",
			"062 Gripe",
			"062 Gripe",
			"001-102 I-XXII.Todas las causas"),
		dataframe.NewSeries("Total", 120, 110, 30, 25, 15, 95),
	)
	require.NoError(t, err)
	return df
}

func tableRows(df *dataframe.DataFrame) [][]interface{} {
	out := [][]interface{}{}
	for i := 0; i < df.NumRows(); i++ {
		out = append(out, df.Row(i))
	}
	return out
}

func columnSum(t *testing.T, df *dataframe.DataFrame, name string) float64 {
	t.Helper()
	s, err := df.Column(name)
	require.NoError(t, err)
	total := 0.0
	for i := 0; i < s.Len(); i++ {
		if f, ok := s.Float(i); ok {
			total += f
		}
	}
	return total
}

func TestRowFilter(t *testing.T) {
	df := deathsTable(t)
	got, err := RowFilter(df, "Sexo", []string{"Hombres"})
	require.NoError(t, err)

	want := [][]interface{}{
		{"Hombres", 2019, "001-102 I-XXII.Todas las causas", 120},
		{"Hombres", 2020, "062 Gripe", 30},
		{"Hombres", 2019, "062 Gripe", 15},
	}
	if diff := cmp.Diff(want, tableRows(got)); diff != "" {
		t.Errorf("filtered rows mismatch (-want +got):\n%s", diff)
	}
}

func TestRowFilterIdempotent(t *testing.T) {
	df := deathsTable(t)
	once, err := RowFilter(df, "Sexo", []string{"Mujeres"})
	require.NoError(t, err)
	twice, err := RowFilter(once, "Sexo", []string{"Mujeres"})
	require.NoError(t, err)

	if diff := cmp.Diff(tableRows(once), tableRows(twice)); diff != "" {
		t.Errorf("second application changed the table (-once +twice):\n%s", diff)
	}
}

func TestRowFilterPartition(t *testing.T) {
	df := deathsTable(t)
	in, err := RowFilter(df, "Periodo", []string{"2019"})
	require.NoError(t, err)
	out, err := NRowFilter(df, "Periodo", []string{"2019"})
	require.NoError(t, err)

	assert.Equal(t, df.NumRows(), in.NumRows()+out.NumRows())
	assert.Equal(t, columnSum(t, df, "Total"), columnSum(t, in, "Total")+columnSum(t, out, "Total"))

	periodo, err := in.Column("Periodo")
	require.NoError(t, err)
	for i := 0; i < periodo.Len(); i++ {
		assert.Equal(t, "2019", periodo.String(i))
	}
}

func TestRowFilterMissingColumn(t *testing.T) {
	df := deathsTable(t)
	_, err := RowFilter(df, "Edad", []string{"Todas las edades"})
	assert.True(t, errors.Is(err, dataframe.ErrInvalidInput))
	_, err = NRowFilter(df, "Edad", []string{"Todas las edades"})
	assert.True(t, errors.Is(err, dataframe.ErrInvalidInput))
}

func TestGroupBySum(t *testing.T) {
	df := deathsTable(t)
	got, err := GroupBySum(df, []string{"Sexo"}, "", "")
	require.NoError(t, err)

	want := [][]interface{}{
		{"Mujeres", 230.0},
		{"Hombres", 165.0},
	}
	if diff := cmp.Diff(want, tableRows(got)); diff != "" {
		t.Errorf("grouped rows mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, columnSum(t, df, "Total"), columnSum(t, got, "Total"))
}

func TestGroupBySumMultipleKeys(t *testing.T) {
	df := deathsTable(t)
	got, err := GroupBySum(df, []string{"Sexo", "Periodo"}, "Total", "Total")
	require.NoError(t, err)

	// every key combination appears exactly once
	seen := map[string]bool{}
	for i := 0; i < got.NumRows(); i++ {
		row := got.Row(i)
		key := fmt.Sprintf("%v/%v", row[0], row[1])
		assert.False(t, seen[key], "duplicate group %s", key)
		seen[key] = true
	}
}

func TestPivotTable(t *testing.T) {
	df := deathsTable(t)
	got, err := PivotTable(df, "Causa", "Periodo", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Periodo", "001-102 I-XXII.Todas las causas", "062 Gripe"}, got.Columns())
	want := [][]interface{}{
		{2019, 230.0, 15.0},
		{2020, 95.0, 55.0},
	}
	if diff := cmp.Diff(want, tableRows(got)); diff != "" {
		t.Errorf("pivoted rows mismatch (-want +got):\n%s", diff)
	}

	// every death in the input lands in exactly one cell
	total := 0.0
	for _, name := range got.Columns()[1:] {
		total += columnSum(t, got, name)
	}
	assert.Equal(t, columnSum(t, df, "Total"), total)
}

func TestPivotTableMissingColumn(t *testing.T) {
	df := deathsTable(t)
	_, err := PivotTable(df, "Causa", "Edad", "")
	assert.True(t, errors.Is(err, dataframe.ErrInvalidInput))
}
