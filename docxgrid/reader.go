// Package docxgrid reads and writes timetable grids stored as the first
// table of a Word document. It resolves gridSpan/vMerge merges into a
// model.GridSnapshot on the way in and addresses write-back through the
// owning merged cell on the way out.
package docxgrid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/schema/soo/wml"

	"gridfill/model"
)

// ErrNoTable is returned when the document contains no table.
var ErrNoTable = errors.New("document contains no table")

// Document wraps a Word document whose first table is a grid.
type Document struct {
	doc  *document.Document
	grid *tableGrid // built on first Snapshot call
}

// tableGrid is the resolved first table: the snapshot plus, per coordinate,
// the owning document cell used for write-back.
type tableGrid struct {
	snapshot *model.SliceGrid
	owners   [][]document.Cell
	rows     int
	cols     int
}

// Open reads the Word document at path.
func Open(path string) (*Document, error) {
	doc, err := document.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Snapshot resolves the document's first table into a grid snapshot.
// Horizontally merged cells (gridSpan) and vertically merged cells (vMerge
// continuations) collapse to a single cell identity covering their span.
func (d *Document) Snapshot() (model.GridSnapshot, error) {
	grid, err := d.resolveGrid()
	if err != nil {
		return nil, err
	}
	return grid.snapshot, nil
}

// BodyText returns the document's non-empty paragraph text joined by
// newlines. Callers extract document-level context labels from it.
func (d *Document) BodyText() string {
	var lines []string
	for _, para := range d.doc.Paragraphs() {
		var sb strings.Builder
		for _, run := range para.Runs() {
			sb.WriteString(run.Text())
		}
		if text := strings.TrimSpace(sb.String()); text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}

// SetCellText replaces the text of the merged cell occupying (row, col) in
// the first table. Writing through any coordinate of a merge addresses the
// owning cell, so the merge is never split. Each line of text becomes one
// paragraph. Implements reconcile.CellTextSetter.
func (d *Document) SetCellText(row, col int, text string) error {
	grid, err := d.resolveGrid()
	if err != nil {
		return err
	}
	if row < 0 || row >= grid.rows || col < 0 || col >= grid.cols {
		return fmt.Errorf("coordinate (%d,%d) outside %dx%d table", row, col, grid.rows, grid.cols)
	}

	cell := grid.owners[row][col]
	if cell.X() == nil {
		// Padding coordinate from a short table row; there is no real
		// cell to write into.
		return fmt.Errorf("coordinate (%d,%d) has no backing table cell", row, col)
	}
	cell.X().EG_BlockLevelElts = nil
	for _, line := range strings.Split(text, "\n") {
		para := cell.AddParagraph()
		para.AddRun().AddText(line)
	}
	return nil
}

// SaveAs writes the (possibly mutated) document to path.
func (d *Document) SaveAs(path string) error {
	return d.doc.SaveToFile(path)
}

// resolveGrid builds the occupancy grid for the first table once.
func (d *Document) resolveGrid() (*tableGrid, error) {
	if d.grid != nil {
		return d.grid, nil
	}

	tables := d.doc.Tables()
	if len(tables) == 0 {
		return nil, ErrNoTable
	}
	grid, err := resolveTable(tables[0])
	if err != nil {
		return nil, err
	}
	d.grid = grid
	return grid, nil
}

// resolveTable expands a table's rows into a rectangular occupancy matrix of
// cell identities, resolving gridSpan horizontally and vMerge vertically.
func resolveTable(tbl document.Table) (*tableGrid, error) {
	rows := tbl.Rows()
	rowCount := len(rows)

	// Column count is the widest row in grid units.
	colCount := 0
	for _, row := range rows {
		width := 0
		for _, cell := range row.Cells() {
			width += cellSpan(cell)
		}
		if width > colCount {
			colCount = width
		}
	}

	occupancy := make([][]model.CellID, rowCount)
	owners := make([][]document.Cell, rowCount)
	var texts []string

	for r, row := range rows {
		occupancy[r] = make([]model.CellID, colCount)
		owners[r] = make([]document.Cell, colCount)
		colIdx := 0

		for _, cell := range row.Cells() {
			span := cellSpan(cell)
			if colIdx+span > colCount {
				span = colCount - colIdx
			}
			if span <= 0 {
				break
			}

			var id model.CellID
			owner := cell
			if isMergeContinuation(cell) && r > 0 {
				// Vertical continuation: adopt the identity and owning
				// cell from the coordinate directly above.
				id = occupancy[r-1][colIdx]
				owner = owners[r-1][colIdx]
			} else {
				id = model.CellID(len(texts))
				texts = append(texts, cellText(cell))
			}

			for c := colIdx; c < colIdx+span; c++ {
				occupancy[r][c] = id
				owners[r][c] = owner
			}
			colIdx += span
		}

		// Short rows pad out with fresh empty cells so the matrix stays
		// rectangular.
		for ; colIdx < colCount; colIdx++ {
			occupancy[r][colIdx] = model.CellID(len(texts))
			texts = append(texts, "")
		}
	}

	snapshot, err := model.NewSliceGrid(occupancy, texts)
	if err != nil {
		return nil, fmt.Errorf("resolving table: %w", err)
	}
	return &tableGrid{snapshot: snapshot, owners: owners, rows: rowCount, cols: colCount}, nil
}

// cellSpan returns the number of grid columns the cell occupies.
func cellSpan(cell document.Cell) int {
	tcPr := cell.X().TcPr
	if tcPr == nil || tcPr.GridSpan == nil {
		return 1
	}
	if span := int(tcPr.GridSpan.ValAttr); span > 1 {
		return span
	}
	return 1
}

// isMergeContinuation reports whether the cell continues a vertical merge.
// A vMerge element without val, or with val "continue", continues the merge
// started above; val "restart" starts a new one.
func isMergeContinuation(cell document.Cell) bool {
	tcPr := cell.X().TcPr
	if tcPr == nil || tcPr.VMerge == nil {
		return false
	}
	return tcPr.VMerge.ValAttr != wml.ST_MergeRestart
}

// cellText joins the cell's paragraph texts with newlines.
func cellText(cell document.Cell) string {
	var parts []string
	for _, para := range cell.Paragraphs() {
		var sb strings.Builder
		for _, run := range para.Runs() {
			sb.WriteString(run.Text())
		}
		parts = append(parts, sb.String())
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
