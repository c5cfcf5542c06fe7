// Package blueprint derives the merge-aware structural description of a grid:
// a partition of the coordinate space into rectangular cell regions with text.
package blueprint

import (
	"errors"
	"fmt"
	"strings"

	"gridfill/model"
)

// ErrMalformedMerge reports a merged-cell region that is not a solid
// axis-aligned rectangle. It is returned only under the Strict option;
// by default malformed merges are skipped and surfaced as warnings.
var ErrMalformedMerge = errors.New("malformed merge: region is not a solid rectangle")

// WarningKind classifies a non-fatal extraction issue.
type WarningKind string

const (
	// WarnMalformedMerge marks a cell identity whose occupied coordinates
	// do not form a solid rectangle. No region is emitted for it.
	WarnMalformedMerge WarningKind = "malformed_merge"

	// WarnCoverageGap marks coordinates left uncovered by every emitted
	// region. Skipped malformed merges and identities occupying disjoint
	// areas both produce gaps.
	WarnCoverageGap WarningKind = "coverage_gap"
)

// Warning describes a non-fatal issue encountered during extraction.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}

// FormatWarnings renders warnings one per line for logging.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}

// Option configures extraction.
type Option func(*config)

type config struct {
	strict bool
}

// Strict makes a malformed merge a hard extraction error instead of a
// skipped-region warning.
func Strict() Option {
	return func(c *config) { c.strict = true }
}

// Extract derives a Blueprint from a grid snapshot.
//
// Coordinates are scanned in row-major order. The first coordinate at which
// an identity appears anchors its region: the column span grows rightward
// while the anchor row keeps the same identity, then the row span grows
// downward while the anchor column keeps it. Each coordinate is touched a
// constant number of times, so extraction is O(rows x cols).
//
// A snapshot with zero rows or columns yields an empty Blueprint and no
// error. An identity whose occupied coordinates do not fill its grown
// rectangle is skipped and reported as a WarnMalformedMerge warning (or, with
// Strict, aborts extraction with ErrMalformedMerge); regions already emitted
// are unaffected.
func Extract(snap model.GridSnapshot, opts ...Option) (model.Blueprint, []Warning, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	rows, cols := snap.Rows(), snap.Cols()
	bp := model.Blueprint{TotalRows: rows, TotalCols: cols}
	if rows == 0 || cols == 0 {
		return bp, nil, nil
	}

	var warnings []Warning
	visited := make(map[model.CellID]bool)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := snap.CellAt(r, c)
			if visited[id] {
				continue
			}
			visited[id] = true

			endCol := c
			for endCol+1 < cols && snap.CellAt(r, endCol+1) == id {
				endCol++
			}
			endRow := r
			for endRow+1 < rows && snap.CellAt(endRow+1, c) == id {
				endRow++
			}

			region := model.Region{StartRow: r, StartCol: c, EndRow: endRow, EndCol: endCol}
			if !solidRectangle(snap, region, id) {
				if cfg.strict {
					return model.Blueprint{TotalRows: rows, TotalCols: cols}, nil,
						fmt.Errorf("cell anchored at (%d,%d): %w", r, c, ErrMalformedMerge)
				}
				warnings = append(warnings, Warning{
					Kind:    WarnMalformedMerge,
					Message: fmt.Sprintf("cell anchored at (%d,%d) spans %s but does not fill it; region skipped", r, c, region),
				})
				continue
			}

			bp.Cells = append(bp.Cells, model.BlueprintCell{
				Region: region,
				Text:   snap.TextOf(id),
			})
		}
	}

	covered := 0
	for _, cell := range bp.Cells {
		covered += cell.Area()
	}
	if covered != rows*cols {
		warnings = append(warnings, Warning{
			Kind:    WarnCoverageGap,
			Message: fmt.Sprintf("%d of %d coordinates not covered by any region", rows*cols-covered, rows*cols),
		})
	}

	return bp, warnings, nil
}

// solidRectangle reports whether every coordinate of the region maps to id.
// The anchor row and anchor column were already checked during growth; the
// interior is what an L-shaped merge would leave inconsistent.
func solidRectangle(snap model.GridSnapshot, rg model.Region, id model.CellID) bool {
	for r := rg.StartRow; r <= rg.EndRow; r++ {
		for c := rg.StartCol; c <= rg.EndCol; c++ {
			if snap.CellAt(r, c) != id {
				return false
			}
		}
	}
	return true
}
