package model

import "sort"

// Candidate is a source cell matched by the classifier, pending expansion
// into individual destination coordinates. SourceIndex records which source
// grid produced it (0 for the first source); provenance order is the
// collision tie-break downstream.
type Candidate struct {
	SourceIndex int
	Region      Region
	Text        string
}

// ExpandedFill is one coordinate of a Candidate's region with the resolved
// fill text.
type ExpandedFill struct {
	SourceIndex int
	Row         int
	Col         int
	Text        string
}

// FinalMapping is the reconciled coordinate-to-text mapping applied to the
// destination grid.
type FinalMapping map[Coord]string

// Coords returns the mapping's coordinates in row-major order. Iterating the
// map directly is fine for lookups; Coords exists so write passes and
// reports are deterministic.
func (m FinalMapping) Coords() []Coord {
	coords := make([]Coord, 0, len(m))
	for c := range m {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})
	return coords
}

// ReasonOutOfBounds marks a fill whose coordinate lies outside the
// destination grid.
const ReasonOutOfBounds = "out_of_bounds"

// SkippedFill records a coordinate the writer did not apply and why.
type SkippedFill struct {
	Coord  Coord
	Reason string
}

// WriteReport summarizes a write pass over a destination grid.
type WriteReport struct {
	Applied []Coord
	Skipped []SkippedFill
}
