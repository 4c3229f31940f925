package tui

import (
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"geosvg/svg"
)

// shapeTable lists every loaded shape with its kind and the ViewBox it
// renders into under the current style, followed by any attributes the
// file carried.
func (m Model) shapeTable() ([]string, [][]string) {
	if len(m.data.Shapes) == 0 {
		return nil, nil
	}
	cols := append([]string{"kind", "viewBox"}, m.data.Columns...)
	rows := make([][]string, 0, len(m.data.Shapes))
	for i, g := range m.data.Shapes {
		vb := svg.Shape(g).Bounds(m.style)
		row := []string{g.Kind().String(), vb.Attr()}
		if i < len(m.data.Rows) {
			row = append(row, m.data.Rows[i]...)
		}
		rows = append(rows, row)
	}
	return cols, rows
}

// refreshShapeTable rebuilds the table columns/rows from the current dataset.
func (m *Model) refreshShapeTable() {
	cols, rows := m.shapeTable()
	if len(cols) == 0 || len(rows) == 0 {
		m.showShapes = false
		m.status = "no shapes loaded"
		return
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	maxColW := 24
	for i, c := range cols {
		w := len(c) + 2
		for _, r := range rows {
			if i < len(r) {
				w = max(w, len(r[i])+2)
			}
		}
		tcols = append(tcols, table.Column{Title: c, Width: min(w, maxColW)})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		cells := make([]string, len(tcols))
		cells[0] = strconv.Itoa(i + 1)
		copy(cells[1:], r)
		trows = append(trows, table.Row(cells))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}
