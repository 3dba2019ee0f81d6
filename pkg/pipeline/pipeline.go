// Package pipeline runs one generation request end to end: derive the
// geometry, place components, build the panel outlines, pack the sheets
// and render the SVG. Every CLI command goes through this runner.
package pipeline

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/housebox/pkg/components"
	"github.com/matzehuels/housebox/pkg/config"
	"github.com/matzehuels/housebox/pkg/floors"
	"github.com/matzehuels/housebox/pkg/geometry"
	"github.com/matzehuels/housebox/pkg/layout"
	"github.com/matzehuels/housebox/pkg/outline"
	"github.com/matzehuels/housebox/pkg/render"
)

// Summary is the read-only cutting report of a finished run.
type Summary struct {
	Panels     int
	Sheets     int
	CutLength  float64 // mm
	Components int
	Floors     floors.Plan
}

// Result carries everything a run produced.
type Result struct {
	JobID    string
	Geometry *geometry.Derived
	Set      *components.Set
	Layout   *layout.Layout
	Summary  Summary
}

// Plan executes the request up to the packed layout without rendering.
func Plan(ctx context.Context, job *config.Job) (*Result, error) {
	logger := log.FromContext(ctx)
	jobID := uuid.NewString()
	logger.Debug("starting generation", "job", jobID)

	d, err := geometry.Derive(job.Params())
	if err != nil {
		return nil, err
	}
	logger.Debug("derived geometry",
		"peak", d.GablePeakHeight, "roof_len", d.RoofPanelLength)

	plan, err := floors.Divide(job.House.Height, job.House.FloorHeight)
	if err != nil {
		return nil, err
	}

	set, err := job.ComponentSet(d)
	if err != nil {
		return nil, err
	}
	logger.Debug("placed components",
		"windows", len(set.Windows), "doors", len(set.Doors), "chimneys", len(set.Chimneys))

	panels, err := outline.NewBuilder(d).Structural()
	if err != nil {
		return nil, err
	}
	if err := set.Apply(panels); err != nil {
		return nil, err
	}
	panels = append(panels, set.CasingPanels()...)

	l, err := layout.Pack(panels, job.LayoutOptions())
	if err != nil {
		return nil, err
	}
	logger.Debug("packed sheets", "panels", len(panels), "sheets", l.Sheets)

	return &Result{
		JobID:    jobID,
		Geometry: d,
		Set:      set,
		Layout:   l,
		Summary: Summary{
			Panels:     len(panels),
			Sheets:     l.Sheets,
			CutLength:  l.CutLength(),
			Components: set.Count(),
			Floors:     plan,
		},
	}, nil
}

// Run executes the request and writes the SVG artifact to w.
func Run(ctx context.Context, job *config.Job, w io.Writer) (*Result, error) {
	res, err := Plan(ctx, job)
	if err != nil {
		return nil, err
	}
	r := render.New(
		render.WithLabels(job.Output.Labels),
		render.WithScores(job.Output.Scores),
	)
	if err := r.Render(w, res.Layout, res.JobID); err != nil {
		return nil, err
	}
	log.FromContext(ctx).Debug("rendered svg", "job", res.JobID)
	return res, nil
}
