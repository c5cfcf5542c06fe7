package model

import "fmt"

// Coord addresses a single grid coordinate.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Region is an axis-aligned inclusive rectangle of grid coordinates believed
// to be one merged cell. StartRow <= EndRow and StartCol <= EndCol always
// hold for regions produced by the engine.
type Region struct {
	StartRow int `json:"start_row"`
	StartCol int `json:"start_col"`
	EndRow   int `json:"end_row"`
	EndCol   int `json:"end_col"`
}

// Contains reports whether (row, col) lies inside the region.
func (rg Region) Contains(row, col int) bool {
	return row >= rg.StartRow && row <= rg.EndRow && col >= rg.StartCol && col <= rg.EndCol
}

// Area returns the number of coordinates the region covers.
func (rg Region) Area() int {
	return (rg.EndRow - rg.StartRow + 1) * (rg.EndCol - rg.StartCol + 1)
}

func (rg Region) String() string {
	return fmt.Sprintf("[%d,%d..%d,%d]", rg.StartRow, rg.StartCol, rg.EndRow, rg.EndCol)
}
