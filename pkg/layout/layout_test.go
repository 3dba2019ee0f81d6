package layout

import (
	"testing"

	"github.com/matzehuels/housebox/pkg/errors"
	"github.com/matzehuels/housebox/pkg/geometry"
	"github.com/matzehuels/housebox/pkg/outline"
)

func testPanels(t *testing.T) []*outline.Panel {
	t.Helper()
	d, err := geometry.Derive(geometry.Params{
		Length:       100,
		Width:        80,
		Height:       90,
		GableAngle:   45,
		Thickness:    3,
		FingerLength: 15,
		Kerf:         0.1,
	})
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	panels, err := outline.NewBuilder(d).Structural()
	if err != nil {
		t.Fatalf("Structural: %v", err)
	}
	return panels
}

func globalY(l *Layout, p Placement) float64 {
	return float64(p.Sheet)*l.SheetHeight + p.Y
}

func TestPackRespectsWidthBound(t *testing.T) {
	panels := testPanels(t)
	l, err := Pack(panels, Options{SheetWidth: 200})
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if len(l.Placements) != len(panels) {
		t.Fatalf("placed %d of %d panels", len(l.Placements), len(panels))
	}
	for _, p := range l.Placements {
		if p.X < 0 || p.X+p.Width > 200+1e-9 {
			t.Errorf("panel %s at x=%.2f width %.2f breaks the 200mm bound", p.Panel.Name, p.X, p.Width)
		}
	}
}

func TestPackNoOverlap(t *testing.T) {
	l, err := Pack(testPanels(t), Options{})
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	for i, a := range l.Placements {
		ay := globalY(l, a)
		for _, b := range l.Placements[i+1:] {
			by := globalY(l, b)
			if a.X < b.X+b.Width && a.X+a.Width > b.X &&
				ay < by+b.Height && ay+a.Height > by {
				t.Errorf("panels %s and %s overlap", a.Panel.Name, b.Panel.Name)
			}
		}
	}
}

func TestPackTooWide(t *testing.T) {
	_, err := Pack(testPanels(t), Options{SheetWidth: 50})
	if !errors.Is(err, errors.ErrCodePanelTooWide) {
		t.Errorf("Pack on a 50mm sheet = %v, want PANEL_TOO_WIDE", err)
	}
}

func TestPackDeterministic(t *testing.T) {
	a, err := Pack(testPanels(t), Options{})
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	b, err := Pack(testPanels(t), Options{})
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	for i := range a.Placements {
		pa, pb := a.Placements[i], b.Placements[i]
		if pa.Panel.Name != pb.Panel.Name || pa.X != pb.X || pa.Y != pb.Y || pa.Sheet != pb.Sheet {
			t.Errorf("placement %d differs between runs: %+v vs %+v", i, pa, pb)
		}
	}
}

func TestPackSheetsGrowWithHeight(t *testing.T) {
	l, err := Pack(testPanels(t), Options{SheetWidth: 150, SheetHeight: 100})
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if l.Sheets < 2 {
		t.Errorf("narrow 100mm sheets used %d sheet(s), want several", l.Sheets)
	}
	for _, p := range l.Placements {
		if p.Sheet < 0 || p.Sheet >= l.Sheets {
			t.Errorf("panel %s assigned sheet %d of %d", p.Panel.Name, p.Sheet, l.Sheets)
		}
	}
}

func TestPackRotatedArrangement(t *testing.T) {
	panels := testPanels(t)
	l, err := Pack(panels, Options{Rotated: true, GableAngle: 45, SheetWidth: 600})
	if err != nil {
		t.Fatalf("Pack rotated: %v", err)
	}
	if len(l.Placements) != len(panels) {
		t.Fatalf("placed %d of %d panels", len(l.Placements), len(panels))
	}
	rot := map[string]float64{}
	for _, p := range l.Placements {
		rot[p.Panel.Name] = p.Rotation
		if p.X < -1e-9 {
			t.Errorf("panel %s at negative x %.2f after normalization", p.Panel.Name, p.X)
		}
	}
	if rot["gable_wall_front"] != 180 {
		t.Errorf("front gable rotation = %.0f, want 180", rot["gable_wall_front"])
	}
	if rot["floor"] != -90 {
		t.Errorf("floor rotation = %.0f, want -90", rot["floor"])
	}
	if rot["roof_panel_left"] != 45 || rot["roof_panel_right"] != -45 {
		t.Errorf("roof rotations = %.0f/%.0f, want 45/-45", rot["roof_panel_left"], rot["roof_panel_right"])
	}
}

func TestCutLengthSumsPanels(t *testing.T) {
	panels := testPanels(t)
	l, err := Pack(panels, Options{})
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	var want float64
	for _, p := range panels {
		want += p.CutLength()
	}
	if got := l.CutLength(); got != want {
		t.Errorf("CutLength = %.2f, want %.2f", got, want)
	}
}
