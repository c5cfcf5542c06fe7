// Package classify provides classifier implementations for tagging source
// grid cells: a deterministic marker matcher and a Gemini-backed adapter.
package classify

import (
	"context"
	"strings"

	"golang.org/x/text/unicode/norm"

	"gridfill/reconcile"
)

// Func adapts a plain function to the reconcile.Classifier interface.
type Func func(ctx context.Context, cellText string) (string, bool, error)

// Classify calls f.
func (f Func) Classify(ctx context.Context, cellText string) (string, bool, error) {
	return f(ctx, cellText)
}

// Tolerant wraps a classifier so that any classification error becomes a
// plain "no match". Use it when one unreachable classifier call should not
// abort a whole reconciliation run.
func Tolerant(c reconcile.Classifier) reconcile.Classifier {
	return Func(func(ctx context.Context, cellText string) (string, bool, error) {
		tag, ok, err := c.Classify(ctx, cellText)
		if err != nil {
			return "", false, nil
		}
		return tag, ok, nil
	})
}

// Normalize standardizes cell text for matching: Unicode NFC, newlines and
// tabs folded to spaces, runs of whitespace collapsed, ends trimmed. Cells
// with minor formatting differences normalize to the same string.
func Normalize(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// Marker is a deterministic classifier matching cells that carry a marker
// token, such as a teacher's initials in a timetable cell. A cell matches
// when, after normalization, any whitespace-delimited token equals the
// marker or the marker in parentheses. The tag is the cell text with those
// tokens removed.
type Marker struct {
	// Token is the marker to look for, e.g. "RC". Comparison is exact
	// after normalization.
	Token string
}

// Classify reports whether the cell text carries the marker token and, if
// so, returns the remaining text as the tag. Never returns an error.
func (m Marker) Classify(_ context.Context, cellText string) (string, bool, error) {
	fields := strings.Fields(norm.NFC.String(cellText))
	kept := make([]string, 0, len(fields))
	matched := false
	for _, f := range fields {
		if f == m.Token || f == "("+m.Token+")" {
			matched = true
			continue
		}
		kept = append(kept, f)
	}
	if !matched {
		return "", false, nil
	}
	return strings.Join(kept, " "), true, nil
}
