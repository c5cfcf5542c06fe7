package docxgrid

import (
	"errors"
	"testing"

	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/schema/soo/wml"

	"gridfill/blueprint"
)

// buildTable adds a table to doc from a cell layout. Each cellSpec row
// becomes one table row; spans are written the way Word stores them
// (gridSpan for columns, vMerge restart/continue for rows).
type cellSpec struct {
	text     string
	colSpan  int // 0 or 1 = no span
	vRestart bool
	vCont    bool
}

func buildTable(t *testing.T, doc *document.Document, rows [][]cellSpec) document.Table {
	t.Helper()

	tbl := doc.AddTable()
	for _, rowSpec := range rows {
		row := tbl.AddRow()
		for _, spec := range rowSpec {
			cell := row.AddCell()
			cell.AddParagraph().AddRun().AddText(spec.text)

			pr := cell.Properties().X()
			if spec.colSpan > 1 {
				pr.GridSpan = &wml.CT_DecimalNumber{ValAttr: int64(spec.colSpan)}
			}
			if spec.vRestart {
				pr.VMerge = &wml.CT_VMerge{ValAttr: wml.ST_MergeRestart}
			}
			if spec.vCont {
				pr.VMerge = &wml.CT_VMerge{ValAttr: wml.ST_MergeContinue}
			}
		}
	}
	return tbl
}

func TestSnapshot_SimpleTable(t *testing.T) {
	doc := document.New()
	buildTable(t, doc, [][]cellSpec{
		{{text: "A"}, {text: "B"}},
		{{text: "C"}, {text: "D"}},
	})

	d := &Document{doc: doc}
	snap, err := d.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	if snap.Rows() != 2 || snap.Cols() != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", snap.Rows(), snap.Cols())
	}
	if got := snap.TextOf(snap.CellAt(1, 1)); got != "D" {
		t.Errorf("cell (1,1) = %q, want 'D'", got)
	}
}

func TestSnapshot_GridSpan(t *testing.T) {
	doc := document.New()
	buildTable(t, doc, [][]cellSpec{
		{{text: "Math", colSpan: 2}, {text: "Lit"}},
		{{text: "A"}, {text: "B"}, {text: "C"}},
	})

	d := &Document{doc: doc}
	snap, err := d.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	if snap.Cols() != 3 {
		t.Fatalf("cols = %d, want 3", snap.Cols())
	}
	if snap.CellAt(0, 0) != snap.CellAt(0, 1) {
		t.Error("gridSpan coordinates should share an identity")
	}
	if got := snap.TextOf(snap.CellAt(0, 2)); got != "Lit" {
		t.Errorf("cell (0,2) = %q, want 'Lit'", got)
	}
}

func TestSnapshot_VMerge(t *testing.T) {
	doc := document.New()
	buildTable(t, doc, [][]cellSpec{
		{{text: "Tall", vRestart: true}, {text: "A"}},
		{{text: "", vCont: true}, {text: "B"}},
	})

	d := &Document{doc: doc}
	snap, err := d.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	if snap.CellAt(0, 0) != snap.CellAt(1, 0) {
		t.Error("vMerge coordinates should share an identity")
	}
	if got := snap.TextOf(snap.CellAt(1, 0)); got != "Tall" {
		t.Errorf("merged cell text = %q, want 'Tall'", got)
	}

	// The merged cell extracts to a single 2x1 region.
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
	if bp.Cells[0].EndRow != 1 || bp.Cells[0].Text != "Tall" {
		t.Errorf("first region = %+v, want 2-row 'Tall'", bp.Cells[0])
	}
}

func TestSnapshot_NoTable(t *testing.T) {
	doc := document.New()
	doc.AddParagraph().AddRun().AddText("just text")

	d := &Document{doc: doc}
	if _, err := d.Snapshot(); !errors.Is(err, ErrNoTable) {
		t.Fatalf("Snapshot() error = %v, want ErrNoTable", err)
	}
}

func TestSetCellText_WritesThroughMerge(t *testing.T) {
	doc := document.New()
	tbl := buildTable(t, doc, [][]cellSpec{
		{{text: "old", vRestart: true}, {text: "A"}},
		{{text: "", vCont: true}, {text: "B"}},
	})

	d := &Document{doc: doc}
	if _, err := d.Snapshot(); err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	// Address the merge through its second coordinate.
	if err := d.SetCellText(1, 0, "Physics (3rd sem)\nPhysics Lab (3rd sem)"); err != nil {
		t.Fatalf("SetCellText() error = %v", err)
	}

	// Re-resolve the table: the owning cell carries the new text and the
	// merge is intact.
	grid, err := resolveTable(tbl)
	if err != nil {
		t.Fatalf("resolveTable() error = %v", err)
	}
	if grid.snapshot.CellAt(0, 0) != grid.snapshot.CellAt(1, 0) {
		t.Error("merge was split by the write")
	}
	want := "Physics (3rd sem)\nPhysics Lab (3rd sem)"
	if got := grid.snapshot.TextOf(grid.snapshot.CellAt(0, 0)); got != want {
		t.Errorf("cell text = %q, want %q", got, want)
	}
}

func TestSetCellText_OutOfRange(t *testing.T) {
	doc := document.New()
	buildTable(t, doc, [][]cellSpec{{{text: "A"}}})

	d := &Document{doc: doc}
	if err := d.SetCellText(5, 0, "x"); err == nil {
		t.Fatal("SetCellText() outside the table should error")
	}
}

func TestBodyText(t *testing.T) {
	doc := document.New()
	doc.AddParagraph().AddRun().AddText("Routine for 3rd sem")
	doc.AddParagraph() // empty paragraph is dropped
	doc.AddParagraph().AddRun().AddText("Effective from July")

	d := &Document{doc: doc}
	want := "Routine for 3rd sem\nEffective from July"
	if got := d.BodyText(); got != want {
		t.Errorf("BodyText() = %q, want %q", got, want)
	}
}
