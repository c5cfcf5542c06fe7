// Package gridfill reconciles class assignments scattered across source
// timetable grids into a single destination grid. It derives a merge-aware
// blueprint of each grid, classifies source cells, expands merged-cell
// candidates to individual coordinates, combines collisions
// deterministically, and writes the result back through the destination's
// merged-cell structure.
//
// Basic usage:
//
//	report, warnings, err := gridfill.
//	    From(gridfill.Source{Snapshot: snap1, Label: "3rd sem"}).
//	    Into(destSnap, dest).
//	    Classify(classify.Marker{Token: "RC"}).
//	    Run(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("warnings:", blueprint.FormatWarnings(warnings))
//	}
//
// The lower-level blueprint and reconcile packages are also available for
// callers that need the individual pipeline stages.
package gridfill

import (
	"context"
	"fmt"

	"gridfill/blueprint"
	"gridfill/model"
	"gridfill/reconcile"
)

// Source is one input grid together with its document-level context label.
type Source struct {
	Snapshot model.GridSnapshot
	Label    string
}

// Merger provides a fluent interface for a reconciliation run. Each
// configuration method returns a new Merger instance, so a partially
// configured Merger can be reused and chained safely.
type Merger struct {
	sources []Source

	destSnapshot model.GridSnapshot
	destSetter   reconcile.CellTextSetter

	classifier reconcile.Classifier

	options mergeOptions

	// Accumulated configuration error (fail-fast at Run).
	err error
}

// From starts a merge over the given source grids, in provenance order.
// Source order is the collision tie-break: where two sources fill the same
// destination coordinate, the earlier source's text comes first.
func From(sources ...Source) *Merger {
	return &Merger{
		sources: append([]Source(nil), sources...),
		options: defaultMergeOptions(),
	}
}

// clone creates a copy of the Merger with deep-copied options so chain
// methods never mutate their receiver.
func (m *Merger) clone() *Merger {
	return &Merger{
		sources:      append([]Source(nil), m.sources...),
		destSnapshot: m.destSnapshot,
		destSetter:   m.destSetter,
		classifier:   m.classifier,
		options:      m.options.clone(),
		err:          m.err,
	}
}

// Into sets the destination: the grid snapshot of the clean template and the
// setter its document collaborator exposes for writing cell text.
func (m *Merger) Into(snap model.GridSnapshot, setter reconcile.CellTextSetter) *Merger {
	c := m.clone()
	c.destSnapshot = snap
	c.destSetter = setter
	return c
}

// Classify sets the classifier used to tag source cells.
func (m *Merger) Classify(cl reconcile.Classifier) *Merger {
	c := m.clone()
	c.classifier = cl
	return c
}

// Resolver sets the rule combining a classifier tag with a source's label
// into the final fill text. The default renders "tag (label)".
func (m *Merger) Resolver(resolve reconcile.Resolver) *Merger {
	c := m.clone()
	c.options.resolve = resolve
	return c
}

// Strict makes malformed merges in any grid a hard error instead of a
// skipped-region warning.
func (m *Merger) Strict() *Merger {
	c := m.clone()
	c.options.strict = true
	return c
}

// Run executes the full pipeline: blueprint extraction for every grid,
// candidate collection, span expansion, reconciliation, and the write pass.
// Warnings accumulate across all extractions in source order, destination
// last.
func (m *Merger) Run(ctx context.Context) (model.WriteReport, []blueprint.Warning, error) {
	if m.err != nil {
		return model.WriteReport{}, nil, m.err
	}
	if len(m.sources) == 0 {
		return model.WriteReport{}, nil, fmt.Errorf("no source grids configured")
	}
	if m.destSnapshot == nil || m.destSetter == nil {
		return model.WriteReport{}, nil, fmt.Errorf("no destination configured")
	}
	if m.classifier == nil {
		return model.WriteReport{}, nil, fmt.Errorf("no classifier configured")
	}

	var extractOpts []blueprint.Option
	if m.options.strict {
		extractOpts = append(extractOpts, blueprint.Strict())
	}

	var warnings []blueprint.Warning
	recSources := make([]reconcile.Source, 0, len(m.sources))
	for i, src := range m.sources {
		bp, w, err := blueprint.Extract(src.Snapshot, extractOpts...)
		if err != nil {
			return model.WriteReport{}, warnings, fmt.Errorf("extracting source %d blueprint: %w", i, err)
		}
		warnings = append(warnings, w...)
		recSources = append(recSources, reconcile.Source{Blueprint: bp, Label: src.Label})
	}

	destBP, w, err := blueprint.Extract(m.destSnapshot, extractOpts...)
	if err != nil {
		return model.WriteReport{}, warnings, fmt.Errorf("extracting destination blueprint: %w", err)
	}
	warnings = append(warnings, w...)

	candidates, err := reconcile.Collect(ctx, recSources, m.classifier, m.options.resolve)
	if err != nil {
		return model.WriteReport{}, warnings, err
	}

	mapping := reconcile.Reconcile(reconcile.Expand(candidates))
	report := reconcile.Write(mapping, destBP, m.destSetter)
	return report, warnings, nil
}
