package outline

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/housebox/pkg/errors"
	"github.com/matzehuels/housebox/pkg/geometry"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func testDerived(t *testing.T) *geometry.Derived {
	t.Helper()
	d, err := geometry.Derive(geometry.Params{
		Length: 100, Width: 80, Height: 90,
		GableAngle: 45, Thickness: 3, FingerLength: 15, Kerf: 0.1,
	})
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	return d
}

func TestRectPathLengthAndBounds(t *testing.T) {
	p := Rect(10, 20, 100, 50)
	if !almostEqual(p.Length(), 300) {
		t.Errorf("Length = %.4f, want 300", p.Length())
	}
	min, max := p.Bounds()
	if !almostEqual(min.X, 10) || !almostEqual(min.Y, 20) ||
		!almostEqual(max.X, 110) || !almostEqual(max.Y, 70) {
		t.Errorf("Bounds = (%.1f,%.1f)-(%.1f,%.1f)", min.X, min.Y, max.X, max.Y)
	}
}

func TestCirclePathLength(t *testing.T) {
	// Flattened Bézier length must land within a fraction of a percent of
	// the true circumference.
	p := Circle(50, 50, 20)
	want := 2 * math.Pi * 20
	if math.Abs(p.Length()-want)/want > 0.005 {
		t.Errorf("circle length = %.4f, want ≈%.4f", p.Length(), want)
	}
}

func TestTranslate(t *testing.T) {
	p := Rect(0, 0, 10, 10).Translate(5, -3)
	min, max := p.Bounds()
	if !almostEqual(min.X, 5) || !almostEqual(min.Y, -3) ||
		!almostEqual(max.X, 15) || !almostEqual(max.Y, 7) {
		t.Errorf("translated bounds = (%.1f,%.1f)-(%.1f,%.1f)", min.X, min.Y, max.X, max.Y)
	}
	if !almostEqual(p.Length(), 40) {
		t.Errorf("translation changed length: %.4f", p.Length())
	}
}

func TestPathData(t *testing.T) {
	var p Path
	p.MoveTo(geometry.Point{X: 0, Y: 0})
	p.LineTo(geometry.Point{X: 10, Y: 0})
	p.QuadTo(geometry.Point{X: 15, Y: 5}, geometry.Point{X: 10, Y: 10})
	p.Close()
	data := p.Data()
	if !strings.HasPrefix(data, "M 0.000,0.000") {
		t.Errorf("data does not start with the move: %q", data)
	}
	if !strings.Contains(data, "Q 15.000,5.000 10.000,10.000") {
		t.Errorf("quad segment missing: %q", data)
	}
	if !strings.HasSuffix(data, "Z") {
		t.Errorf("data does not end closed: %q", data)
	}
}

func TestStructuralPanelCount(t *testing.T) {
	panels, err := NewBuilder(testDerived(t)).Structural()
	if err != nil {
		t.Fatalf("Structural: %v", err)
	}
	if len(panels) != 7 {
		t.Fatalf("got %d panels, want 7", len(panels))
	}
	seen := map[string]bool{}
	for _, p := range panels {
		if len(p.Outline) == 0 {
			t.Errorf("panel %s has empty outline", p.Name)
		}
		seen[p.Name] = true
	}
	for _, name := range geometry.StructuralPanels() {
		if !seen[string(name)] {
			t.Errorf("panel %s missing", name)
		}
	}
}

func TestFloorTabsProtrudeAllSides(t *testing.T) {
	b := NewBuilder(testDerived(t))
	floor, err := b.Build(geometry.PanelFloor)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// All four floor edges are male, so tabs protrude by t+k = 3.1 beyond
	// the 100×80 base on every side.
	min, max := floor.Bounds()
	if !almostEqual(min.X, -3.1) || !almostEqual(min.Y, -3.1) {
		t.Errorf("min = (%.4f, %.4f), want (-3.1, -3.1)", min.X, min.Y)
	}
	if !almostEqual(max.X, 103.1) || !almostEqual(max.Y, 83.1) {
		t.Errorf("max = (%.4f, %.4f), want (103.1, 83.1)", max.X, max.Y)
	}
}

func TestFloorCutLength(t *testing.T) {
	b := NewBuilder(testDerived(t))
	floor, err := b.Build(geometry.PanelFloor)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// A 100mm edge carries 3 tabs, an 80mm edge 1. Each tab adds two
	// perpendicular steps of 3.1, so the boundary length is the perimeter
	// plus 8 tabs × 2 × 3.1.
	want := 2*(100.0+80.0) + 8*2*3.1
	if !almostEqual(floor.CutLength(), want) {
		t.Errorf("CutLength = %.4f, want %.4f", floor.CutLength(), want)
	}
}

func TestSideWallBounds(t *testing.T) {
	b := NewBuilder(testDerived(t))
	wall, err := b.Build(geometry.PanelSideWallLeft)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// Female bottom recesses inward, the top is smooth, and the two male
	// side edges protrude.
	min, max := wall.Bounds()
	if !almostEqual(min.X, -3.1) || !almostEqual(max.X, 103.1) {
		t.Errorf("x range = [%.4f, %.4f], want [-3.1, 103.1]", min.X, max.X)
	}
	if !almostEqual(min.Y, 0) || !almostEqual(max.Y, 90) {
		t.Errorf("y range = [%.4f, %.4f], want [0, 90]", min.Y, max.Y)
	}
}

func TestGableSlopeTabsProtrude(t *testing.T) {
	b := NewBuilder(testDerived(t))
	gable, err := b.Build(geometry.PanelGableWallFront)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if gable.Shape.Kind != geometry.HouseProfile {
		t.Fatalf("gable shape = %v, want HouseProfile", gable.Shape.Kind)
	}
	// The side and bottom edges are female, so nothing protrudes past the
	// profile bounding box; the slope tabs rise above the slope lines but
	// stay well below the ridge peak.
	min, max := gable.Bounds()
	if min.X < -1e-9 || max.X > 80+1e-9 {
		t.Errorf("x range = [%.4f, %.4f], want within [0, 80]", min.X, max.X)
	}
	if !almostEqual(min.Y, 0) || !almostEqual(max.Y, 130) {
		t.Errorf("y range = [%.4f, %.4f], want [0, 130]", min.Y, max.Y)
	}

	// Boundary length: profile perimeter plus two steps per tab. The bottom
	// carries one female slot, each 90mm side three, each slope one male tab.
	slope := 40 * math.Sqrt2
	perimeter := 80 + 2*90 + 2*slope
	extra := 1*2*2.9 + 2*3*2*2.9 + 2*1*2*3.1
	if !almostEqual(gable.Outline.Length(), perimeter+extra) {
		t.Errorf("outline length = %.4f, want %.4f", gable.Outline.Length(), perimeter+extra)
	}
}

func TestRoofPanelSlots(t *testing.T) {
	d := testDerived(t)
	b := NewBuilder(d)
	for _, tt := range []struct {
		name    geometry.PanelName
		centerY float64
	}{
		{geometry.PanelRoofRight, d.BaseRoofWidth / 2},
		{geometry.PanelRoofLeft, 3 + d.BaseRoofWidth/2},
	} {
		panel, err := b.Build(tt.name)
		if err != nil {
			t.Fatalf("Build(%s): %v", tt.name, err)
		}
		if len(panel.Cutouts) != 2 {
			t.Fatalf("%s has %d cutouts, want 2", tt.name, len(panel.Cutouts))
		}
		wantX := []float64{2.5 * 3, d.RoofPanelLength - 2.5*3}
		for i, slot := range panel.Cutouts {
			min, max := slot.Bounds()
			cx := (min.X + max.X) / 2
			cy := (min.Y + max.Y) / 2
			if !almostEqual(cx, wantX[i]) {
				t.Errorf("%s slot %d center x = %.4f, want %.4f", tt.name, i, cx, wantX[i])
			}
			if !almostEqual(cy, tt.centerY) {
				t.Errorf("%s slot %d center y = %.4f, want %.4f", tt.name, i, cy, tt.centerY)
			}
			// Slot is undersized by the kerf on both axes.
			if !almostEqual(max.X-min.X, 2.9) || !almostEqual(max.Y-min.Y, 14.9) {
				t.Errorf("%s slot %d = %.2f×%.2f, want 2.9×14.9",
					tt.name, i, max.X-min.X, max.Y-min.Y)
			}
		}
	}
}

func TestRoofRidgePolarityInBounds(t *testing.T) {
	b := NewBuilder(testDerived(t))
	left, err := b.Build(geometry.PanelRoofLeft)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	right, err := b.Build(geometry.PanelRoofRight)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// The right panel's male ridge tabs extend above the base rectangle;
	// the left panel's female ridge slots stay inside it.
	minL, _ := left.Bounds()
	minR, _ := right.Bounds()
	if !almostEqual(minL.Y, 0) {
		t.Errorf("left roof min.Y = %.4f, want 0", minL.Y)
	}
	if !almostEqual(minR.Y, -3.1) {
		t.Errorf("right roof min.Y = %.4f, want -3.1", minR.Y)
	}
}

func TestAddCutoutContainment(t *testing.T) {
	b := NewBuilder(testDerived(t))
	floor, err := b.Build(geometry.PanelFloor)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := floor.AddCutout(Rect(10, 10, 20, 20)); err != nil {
		t.Errorf("contained cutout rejected: %v", err)
	}
	err = floor.AddCutout(Rect(90, 70, 20, 20))
	if !errors.Is(err, errors.ErrCodeCutoutOutOfBounds) {
		t.Errorf("overflowing cutout: got %v, want CUTOUT_OUT_OF_BOUNDS", err)
	}
	err = floor.AddCutout(Rect(-5, 10, 20, 20))
	if !errors.Is(err, errors.ErrCodeCutoutOutOfBounds) {
		t.Errorf("negative-origin cutout: got %v, want CUTOUT_OUT_OF_BOUNDS", err)
	}
	if len(floor.Cutouts) != 1 {
		t.Errorf("rejected cutouts must not be attached, have %d", len(floor.Cutouts))
	}
}

func TestCutAndScoreLength(t *testing.T) {
	b := NewBuilder(testDerived(t))
	wall, err := b.Build(geometry.PanelSideWallLeft)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	base := wall.CutLength()
	if err := wall.AddCutout(Rect(40, 40, 10, 10)); err != nil {
		t.Fatal(err)
	}
	if !almostEqual(wall.CutLength(), base+40) {
		t.Errorf("CutLength after cutout = %.4f, want %.4f", wall.CutLength(), base+40)
	}
	if err := wall.AddScore(Rect(20, 20, 5, 5)); err != nil {
		t.Fatal(err)
	}
	if !almostEqual(wall.CutLength(), base+40) {
		t.Errorf("scores must not count into CutLength")
	}
	if !almostEqual(wall.ScoreLength(), 20) {
		t.Errorf("ScoreLength = %.4f, want 20", wall.ScoreLength())
	}
}

func TestBoundingDim(t *testing.T) {
	b := NewBuilder(testDerived(t))
	floor, err := b.Build(geometry.PanelFloor)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	dim := floor.BoundingDim()
	if !almostEqual(dim.Width, 106.2) || !almostEqual(dim.Height, 86.2) {
		t.Errorf("BoundingDim = %.2f×%.2f, want 106.2×86.2", dim.Width, dim.Height)
	}
}
