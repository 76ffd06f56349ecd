package dataframe

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// Render formats the DataFrame as a bordered text table. Nil cells come out
// empty. Meant for debugging and test output, not machine consumption.
func (df *DataFrame) Render() string {
	t := table.NewWriter()

	header := table.Row{}
	for _, name := range df.Columns() {
		header = append(header, name)
	}
	t.AppendHeader(header)

	for i := 0; i < df.NumRows(); i++ {
		row := table.Row{}
		for _, cell := range df.Row(i) {
			if cell == nil {
				cell = ""
			}
			row = append(row, cell)
		}
		t.AppendRows([]table.Row{row})
	}

	t.SetStyle(table.StyleDefault)
	return t.Render()
}
