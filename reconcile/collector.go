// Package reconcile turns classified source-grid cells into coordinate-exact
// fill instructions for a destination grid, combining collisions
// deterministically.
package reconcile

import (
	"context"
	"fmt"

	"gridfill/model"
)

// Classifier tags source cells. Classify returns the semantic tag for the
// cell text and ok=true when the cell matches the target, or ok=false for no
// match. The engine treats it as a synchronous oracle: no retries, no
// backoff; a remote classifier's failure policy belongs to its own adapter
// (see classify.Tolerant for the failure-means-no-match wrapping).
type Classifier interface {
	Classify(ctx context.Context, cellText string) (tag string, ok bool, err error)
}

// Resolver combines a classifier tag with a source's document-level context
// label into the final fill text. The combination rule belongs to the
// caller, not the engine.
type Resolver func(tag, label string) string

// DefaultResolver renders "tag (label)", or the bare tag when the source has
// no label.
func DefaultResolver(tag, label string) string {
	if label == "" {
		return tag
	}
	return fmt.Sprintf("%s (%s)", tag, label)
}

// Source pairs a source blueprint with its document-level context label
// (e.g. a semester marker pulled from the document's body text).
type Source struct {
	Blueprint model.Blueprint
	Label     string
}

// Collect classifies every cell of every source blueprint and returns one
// Candidate per matched cell. Order is load-bearing downstream: sources in
// the given order, cells in blueprint (row-major discovery) order within
// each source. SourceIndex records provenance for the collision tie-break.
//
// A nil resolve falls back to DefaultResolver. A classifier error aborts
// collection; nothing built for earlier sources leaks into the error path.
func Collect(ctx context.Context, sources []Source, cl Classifier, resolve Resolver) ([]model.Candidate, error) {
	if resolve == nil {
		resolve = DefaultResolver
	}

	var candidates []model.Candidate
	for si, src := range sources {
		for _, cell := range src.Blueprint.Cells {
			tag, ok, err := cl.Classify(ctx, cell.Text)
			if err != nil {
				return nil, fmt.Errorf("classifying source %d cell %s: %w", si, cell.Region, err)
			}
			if !ok || tag == "" {
				continue
			}
			candidates = append(candidates, model.Candidate{
				SourceIndex: si,
				Region:      cell.Region,
				Text:        resolve(tag, src.Label),
			})
		}
	}
	return candidates, nil
}
