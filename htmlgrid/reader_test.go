package htmlgrid

import (
	"errors"
	"strings"
	"testing"

	"gridfill/blueprint"
	"gridfill/model"
)

func parseGrid(t *testing.T, src string) model.GridSnapshot {
	t.Helper()

	snap, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return snap
}

func TestParse_SimpleTable(t *testing.T) {
	snap := parseGrid(t, `<html><body><table>
		<tr><td>A</td><td>B</td></tr>
		<tr><td>C</td><td>D</td></tr>
	</table></body></html>`)

	if snap.Rows() != 2 || snap.Cols() != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", snap.Rows(), snap.Cols())
	}
	if got := snap.TextOf(snap.CellAt(1, 1)); got != "D" {
		t.Errorf("cell (1,1) = %q, want 'D'", got)
	}
}

func TestParse_Spans(t *testing.T) {
	snap := parseGrid(t, `<table>
		<tr><td colspan="2">Wide</td><td>R</td></tr>
		<tr><td rowspan="2">Tall</td><td>A</td><td>B</td></tr>
		<tr><td>C</td><td>D</td></tr>
	</table>`)

	if snap.Rows() != 3 || snap.Cols() != 3 {
		t.Fatalf("dimensions = %dx%d, want 3x3", snap.Rows(), snap.Cols())
	}

	// The colspan cell owns (0,0) and (0,1).
	if snap.CellAt(0, 0) != snap.CellAt(0, 1) {
		t.Error("colspan coordinates should share an identity")
	}
	// The rowspan cell owns (1,0) and (2,0).
	if snap.CellAt(1, 0) != snap.CellAt(2, 0) {
		t.Error("rowspan coordinates should share an identity")
	}
	// Cells after the rowspan flow around it.
	if got := snap.TextOf(snap.CellAt(2, 1)); got != "C" {
		t.Errorf("cell (2,1) = %q, want 'C'", got)
	}
	if got := snap.TextOf(snap.CellAt(2, 2)); got != "D" {
		t.Errorf("cell (2,2) = %q, want 'D'", got)
	}
}

func TestParse_TheadTbody(t *testing.T) {
	snap := parseGrid(t, `<table>
		<thead><tr><th>H1</th><th>H2</th></tr></thead>
		<tbody><tr><td>A</td><td>B</td></tr></tbody>
	</table>`)

	if snap.Rows() != 2 {
		t.Fatalf("rows = %d, want 2", snap.Rows())
	}
	if got := snap.TextOf(snap.CellAt(0, 0)); got != "H1" {
		t.Errorf("header cell = %q, want 'H1'", got)
	}
}

func TestParse_NoTable(t *testing.T) {
	_, err := Parse(strings.NewReader("<html><body><p>no tables here</p></body></html>"))
	if !errors.Is(err, ErrNoTable) {
		t.Fatalf("Parse() error = %v, want ErrNoTable", err)
	}
}

func TestParse_BlueprintFromHTML(t *testing.T) {
	// The resolved snapshot must extract to a clean partition.
	snap := parseGrid(t, `<table>
		<tr><td colspan="2">Math</td><td>Lit</td></tr>
		<tr><td colspan="3">Sci</td></tr>
	</table>`)

	bp, warnings, err := blueprint.Extract(snap)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("Extract() warnings = %v, want none", warnings)
	}
	if len(bp.Cells) != 3 {
		t.Fatalf("expected 3 regions, got %d", len(bp.Cells))
	}
	if bp.Cells[2].Text != "Sci" || bp.Cells[2].Area() != 3 {
		t.Errorf("bottom region = %+v, want full-width 'Sci'", bp.Cells[2])
	}
}

func TestParse_LineBreaksInCell(t *testing.T) {
	snap := parseGrid(t, `<table><tr><td>Physics<br>Room 204</td></tr></table>`)

	if got := snap.TextOf(snap.CellAt(0, 0)); got != "Physics\nRoom 204" {
		t.Errorf("cell text = %q, want line break preserved", got)
	}
}
