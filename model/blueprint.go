package model

// BlueprintCell is one unique merged-cell region of a grid with its text.
type BlueprintCell struct {
	Region
	Text string `json:"text"`
}

// Blueprint is the merge-aware structural description of a grid: the unique
// cell regions, in row-major discovery order, partitioning the full
// TotalRows x TotalCols coordinate space. The JSON shape matches the
// blueprint objects the companion tools exchange with classifiers.
type Blueprint struct {
	TotalRows int             `json:"total_rows"`
	TotalCols int             `json:"total_columns"`
	Cells     []BlueprintCell `json:"cells"`
}

// CellAt returns the blueprint cell whose region contains (row, col), or nil
// if the coordinate lies outside the grid. Linear in the number of cells;
// blueprints are small (one per document table).
func (b *Blueprint) CellAt(row, col int) *BlueprintCell {
	for i := range b.Cells {
		if b.Cells[i].Contains(row, col) {
			return &b.Cells[i]
		}
	}
	return nil
}

// InBounds reports whether (row, col) lies inside the blueprint's grid.
func (b *Blueprint) InBounds(row, col int) bool {
	return row >= 0 && row < b.TotalRows && col >= 0 && col < b.TotalCols
}
