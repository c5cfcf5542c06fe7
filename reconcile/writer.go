package reconcile

import "gridfill/model"

// CellTextSetter is the destination grid's write primitive. SetCellText must
// resolve (row, col) to the owning merged cell and replace that cell's text,
// so writing through any coordinate of a merge never splits it. The
// destination document collaborator provides the implementation.
type CellTextSetter interface {
	SetCellText(row, col int, text string) error
}

// Write applies a final mapping onto the destination grid described by dest.
//
// Entries are applied in row-major coordinate order so the report is
// deterministic. A coordinate outside the destination grid is recorded as
// skipped with ReasonOutOfBounds and never aborts the pass; a setter error
// on an in-bounds coordinate is likewise recorded and the pass continues.
func Write(mapping model.FinalMapping, dest model.Blueprint, set CellTextSetter) model.WriteReport {
	var report model.WriteReport
	for _, coord := range mapping.Coords() {
		if !dest.InBounds(coord.Row, coord.Col) {
			report.Skipped = append(report.Skipped, model.SkippedFill{
				Coord:  coord,
				Reason: model.ReasonOutOfBounds,
			})
			continue
		}
		if err := set.SetCellText(coord.Row, coord.Col, mapping[coord]); err != nil {
			report.Skipped = append(report.Skipped, model.SkippedFill{
				Coord:  coord,
				Reason: err.Error(),
			})
			continue
		}
		report.Applied = append(report.Applied, coord)
	}
	return report
}
