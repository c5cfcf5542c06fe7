package model

import "fmt"

// CellID identifies a merged cell within a grid. Two coordinates carry the
// same CellID iff they belong to the same merged cell. The zero-based value
// indexes the owning grid's cell table; identity is value equality, never
// pointer equality, so snapshots survive copying and serialization.
type CellID int

// GridSnapshot is a read-only view of a two-dimensional grid whose cells may
// span multiple rows and columns. It is produced by a document reader and is
// never mutated by the engine.
type GridSnapshot interface {
	// Rows returns the number of grid rows. May be zero.
	Rows() int

	// Cols returns the number of grid columns. May be zero.
	Cols() int

	// CellAt returns the identity of the cell occupying (row, col).
	// Behavior is undefined outside [0,Rows) x [0,Cols).
	CellAt(row, col int) CellID

	// TextOf returns the text of the cell with the given identity.
	TextOf(id CellID) string
}

// SliceGrid is the standard in-memory GridSnapshot: an occupancy matrix of
// cell indices over a per-cell text table.
type SliceGrid struct {
	rows  int
	cols  int
	cells [][]CellID // rows x cols occupancy, values index texts
	texts []string
}

// NewSliceGrid builds a SliceGrid from an occupancy matrix and a text table.
// Every row of cells must have the same length, and every CellID must index
// into texts.
func NewSliceGrid(cells [][]CellID, texts []string) (*SliceGrid, error) {
	rows := len(cells)
	cols := 0
	if rows > 0 {
		cols = len(cells[0])
	}
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d", r, len(row), cols)
		}
		for c, id := range row {
			if int(id) < 0 || int(id) >= len(texts) {
				return nil, fmt.Errorf("cell (%d,%d) references identity %d outside text table of %d", r, c, id, len(texts))
			}
		}
	}
	return &SliceGrid{rows: rows, cols: cols, cells: cells, texts: texts}, nil
}

// Rows returns the number of grid rows.
func (g *SliceGrid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *SliceGrid) Cols() int { return g.cols }

// CellAt returns the identity of the cell occupying (row, col).
func (g *SliceGrid) CellAt(row, col int) CellID { return g.cells[row][col] }

// TextOf returns the text of the cell with the given identity.
func (g *SliceGrid) TextOf(id CellID) string { return g.texts[id] }
