package reconcile

import (
	"strings"

	"gridfill/model"
)

// collisionSeparator joins colliding fill texts at one coordinate.
const collisionSeparator = "\n"

// Reconcile folds expanded fills into the final coordinate-to-text mapping.
//
// The first fill seen for a coordinate initializes its entry. Each later
// fill for the same coordinate appends its text after a newline, unless the
// text is already an exact substring of the accumulated value, so replaying
// the same fill never duplicates it. The result depends only on the input
// order: identical fill sequences produce identical mappings.
//
// Coordinates are not bounds-checked here. Candidates are generated against
// a blueprint whose dimensions the caller matched to the destination; the
// writer enforces destination bounds.
func Reconcile(fills []model.ExpandedFill) model.FinalMapping {
	mapping := make(model.FinalMapping, len(fills))
	for _, fill := range fills {
		coord := model.Coord{Row: fill.Row, Col: fill.Col}
		existing, seen := mapping[coord]
		if !seen {
			mapping[coord] = fill.Text
			continue
		}
		if strings.Contains(existing, fill.Text) {
			continue
		}
		mapping[coord] = existing + collisionSeparator + fill.Text
	}
	return mapping
}
