package reconcile

import "gridfill/model"

// Expand flattens each candidate's region into one ExpandedFill per covered
// coordinate. All fills of candidate i precede all fills of candidate i+1,
// and within a candidate the order is row-major; Reconcile relies on this
// ordering for its collision tie-break.
func Expand(candidates []model.Candidate) []model.ExpandedFill {
	total := 0
	for _, cand := range candidates {
		total += cand.Region.Area()
	}

	fills := make([]model.ExpandedFill, 0, total)
	for _, cand := range candidates {
		for r := cand.Region.StartRow; r <= cand.Region.EndRow; r++ {
			for c := cand.Region.StartCol; c <= cand.Region.EndCol; c++ {
				fills = append(fills, model.ExpandedFill{
					SourceIndex: cand.SourceIndex,
					Row:         r,
					Col:         c,
					Text:        cand.Text,
				})
			}
		}
	}
	return fills
}
