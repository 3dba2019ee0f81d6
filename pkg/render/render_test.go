package render

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/housebox/pkg/geometry"
	"github.com/matzehuels/housebox/pkg/layout"
	"github.com/matzehuels/housebox/pkg/outline"
)

func testLayout(t *testing.T, rotated bool) *layout.Layout {
	t.Helper()
	d, err := geometry.Derive(geometry.DefaultParams())
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	panels, err := outline.NewBuilder(d).Structural()
	if err != nil {
		t.Fatalf("Structural: %v", err)
	}
	if err := panels[0].AddScore(outline.Rect(10, 10, 20, 20)); err != nil {
		t.Fatalf("AddScore: %v", err)
	}
	l, err := layout.Pack(panels, layout.Options{
		Rotated:    rotated,
		GableAngle: d.Params.GableAngle,
		SheetWidth: 600,
	})
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	return l
}

func TestRenderDocument(t *testing.T) {
	var buf bytes.Buffer
	err := New().Render(&buf, testLayout(t, false), "test-job-id")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<svg",
		"</svg>",
		"test-job-id",
		"stroke-width:0.0254",
		"floor",
		"roof_panel_left",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("document missing %q", want)
		}
	}
	if !strings.Contains(out, "stroke:#0000ff") {
		t.Error("document missing the score layer")
	}
}

func TestRenderWithoutLabelsAndScores(t *testing.T) {
	var buf bytes.Buffer
	r := New(WithLabels(false), WithScores(false))
	if err := r.Render(&buf, testLayout(t, false), "job"); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "text-anchor") {
		t.Error("labels rendered despite WithLabels(false)")
	}
	if strings.Contains(out, "stroke:#0000ff") {
		t.Error("scores rendered despite WithScores(false)")
	}
}

func TestRenderRotatedTransforms(t *testing.T) {
	var buf bytes.Buffer
	if err := New().Render(&buf, testLayout(t, true), "job"); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "rotate(180.000") {
		t.Error("rotated layout missing the 180° gable transform")
	}
}

func TestRenderedPanelsStayInPlacementBoxes(t *testing.T) {
	// Apply each placement's transform (SVG semantics: translate first,
	// then rotate about the pivot) to the corners of the panel's bounding
	// box and check the result against the rectangle the packer reserved.
	for _, rotated := range []bool{false, true} {
		l := testLayout(t, rotated)
		for _, p := range l.Placements {
			dx, dy, cx, cy := placementTransform(l, p)
			lo, hi := p.Panel.Bounds()
			rad := p.Rotation * math.Pi / 180
			sin, cos := math.Sin(rad), math.Cos(rad)

			minX, minY := math.Inf(1), math.Inf(1)
			maxX, maxY := math.Inf(-1), math.Inf(-1)
			for _, c := range [][2]float64{{lo.X, lo.Y}, {hi.X, lo.Y}, {hi.X, hi.Y}, {lo.X, hi.Y}} {
				x, y := c[0]+dx, c[1]+dy
				rx := cx + (x-cx)*cos - (y-cy)*sin
				ry := cy + (x-cx)*sin + (y-cy)*cos
				minX, maxX = math.Min(minX, rx), math.Max(maxX, rx)
				minY, maxY = math.Min(minY, ry), math.Max(maxY, ry)
			}

			top := float64(p.Sheet)*l.SheetHeight + p.Y
			const eps = 1e-6
			if minX < p.X-eps || maxX > p.X+p.Width+eps ||
				minY < top-eps || maxY > top+p.Height+eps {
				t.Errorf("%s (rot %.0f): rendered box [%.2f,%.2f]x[%.2f,%.2f] outside placement [%.2f,%.2f]x[%.2f,%.2f]",
					p.Panel.Name, p.Rotation, minX, maxX, minY, maxY,
					p.X, p.X+p.Width, top, top+p.Height)
			}
		}
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, bytes.ErrTooLarge
}

func TestRenderSurfacesWriteErrors(t *testing.T) {
	if err := New().Render(failWriter{}, testLayout(t, false), "job"); err == nil {
		t.Error("write error swallowed")
	}
}
