// Package render serializes a packed layout to laser-cutting-ready SVG.
//
// Coordinates are millimeters, y-down, one user unit per mm. Cut paths use
// a 0.0254mm hairline so cutters treat them as vector cuts; score paths go
// on a blue engrave layer with a heavier stroke.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/matzehuels/housebox/pkg/layout"
)

// Stroke widths in mm. The hairline matches the 0.001in convention most
// laser drivers use to distinguish cuts from engraves.
const (
	CutStrokeWidth   = 0.0254
	ScoreStrokeWidth = 3 * CutStrokeWidth
)

const (
	cutStyle   = "stroke:#000000;stroke-width:0.0254;fill:none;stroke-linecap:round;stroke-linejoin:round"
	scoreStyle = "stroke:#0000ff;stroke-width:0.0762;fill:none;stroke-linecap:round;stroke-linejoin:round"
	labelStyle = "font-family:sans-serif;font-size:1.5px;fill:#666666;text-anchor:middle"
)

// Option adjusts renderer behavior.
type Option func(*Renderer)

// WithLabels toggles the panel name labels under each panel.
func WithLabels(on bool) Option {
	return func(r *Renderer) { r.labels = on }
}

// WithScores toggles the engrave layer (fold lines, chimney footprints,
// decorative patterns).
func WithScores(on bool) Option {
	return func(r *Renderer) { r.scores = on }
}

// WithMargin sets the blank border around the layout in mm.
func WithMargin(mm float64) Option {
	return func(r *Renderer) { r.margin = mm }
}

// Renderer writes layouts as SVG documents.
type Renderer struct {
	labels bool
	scores bool
	margin float64
}

// New builds a renderer. Labels and scores default to on with a 10mm
// margin.
func New(opts ...Option) *Renderer {
	r := &Renderer{labels: true, scores: true, margin: 10}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// errWriter latches the first write error so one check at the end covers
// the whole document.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// Render writes the layout as one SVG document with the sheets stacked
// vertically. jobID goes into the document description so a cut file can
// be traced back to its generation run.
func (r *Renderer) Render(w io.Writer, l *layout.Layout, jobID string) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	width := l.Width + 2*r.margin
	height := float64(l.Sheets)*l.SheetHeight + 2*r.margin
	canvas.StartviewUnit(width, height, "mm", 0, 0, width, height)
	canvas.Desc(fmt.Sprintf("housebox job %s, %d sheet(s) %gx%gmm",
		jobID, l.Sheets, l.SheetWidth, l.SheetHeight))

	canvas.Gtransform(fmt.Sprintf("translate(%.3f,%.3f)", r.margin, r.margin))
	for _, p := range l.Placements {
		r.panel(canvas, l, p)
	}
	canvas.Gend()
	canvas.End()
	return ew.err
}

// placementTransform computes the SVG transform for one placement: the
// translate offset and the rotation pivot. The panel's own coordinates may
// start below zero where tabs protrude, so the translate centers the
// panel's bounding box on the placement box center. The placement box is
// the rotated bounds, which share that center with the unrotated box, so
// rotating about it leaves the panel exactly inside the reserved rectangle.
func placementTransform(l *layout.Layout, p layout.Placement) (dx, dy, cx, cy float64) {
	lo, hi := p.Panel.Bounds()
	sheetTop := float64(p.Sheet) * l.SheetHeight
	dx = p.X - lo.X + (p.Width-(hi.X-lo.X))/2
	dy = sheetTop + p.Y - lo.Y + (p.Height-(hi.Y-lo.Y))/2
	cx = p.X + p.Width/2
	cy = sheetTop + p.Y + p.Height/2
	return dx, dy, cx, cy
}

func (r *Renderer) panel(canvas *svg.SVG, l *layout.Layout, p layout.Placement) {
	dx, dy, cx, cy := placementTransform(l, p)
	transform := fmt.Sprintf("translate(%.3f,%.3f)", dx, dy)
	if p.Rotation != 0 {
		transform = fmt.Sprintf("rotate(%.3f,%.3f,%.3f) %s", p.Rotation, cx, cy, transform)
	}

	canvas.Gtransform(transform)
	canvas.Path(p.Panel.Outline.Data(), cutStyle)
	for _, c := range p.Panel.Cutouts {
		canvas.Path(c.Data(), cutStyle)
	}
	if r.scores {
		for _, s := range p.Panel.Scores {
			canvas.Path(s.Data(), scoreStyle)
		}
	}
	canvas.Gend()

	if r.labels {
		canvas.Text(cx, cy+p.Height/2+3, p.Panel.Name, labelStyle)
	}
}
