package joints

import (
	"math"
	"testing"

	"github.com/matzehuels/housebox/pkg/errors"
	"github.com/matzehuels/housebox/pkg/geometry"
)

func testPlanner() Planner {
	return Planner{FingerLength: 15, Thickness: 3, Kerf: 0.1}
}

func TestSeamPolaritySymmetry(t *testing.T) {
	// Every seam must reference edges with exactly opposite polarities, or
	// None on both sides for non-joined boundaries.
	if err := Default().VerifySeams(Seams()); err != nil {
		t.Fatal(err)
	}
}

func TestSeamEdgeLengthsMatch(t *testing.T) {
	// Both sides of every jointed perimeter seam must span the same drawn
	// length, or their independently computed tab plans would not line up.
	d, err := geometry.Derive(geometry.Params{
		Length: 100, Width: 80, Height: 90,
		GableAngle: 45, Thickness: 3, FingerLength: 15, Kerf: 0.1,
	})
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if err := Default().VerifySeamLengths(d, Seams()); err != nil {
		t.Fatal(err)
	}

	// The floor's long edges mate the side walls and its short edges mate
	// the gable walls, not the other way around.
	crossed := []Seam{
		{geometry.PanelFloor, EdgeBottom, geometry.PanelGableWallFront, EdgeBottom},
	}
	if err := Default().VerifySeamLengths(d, crossed); err == nil {
		t.Error("crossed floor/gable seam should fail the length check")
	}
}

func TestFloorSeamPartners(t *testing.T) {
	want := map[EdgeSide]geometry.PanelName{
		EdgeBottom: geometry.PanelSideWallLeft,
		EdgeTop:    geometry.PanelSideWallRight,
		EdgeLeft:   geometry.PanelGableWallFront,
		EdgeRight:  geometry.PanelGableWallBack,
	}
	seen := 0
	for _, s := range Seams() {
		if s.PanelA != geometry.PanelFloor {
			continue
		}
		seen++
		if partner, ok := want[s.EdgeA]; !ok || s.PanelB != partner {
			t.Errorf("floor/%s mates %s, want %s", s.EdgeA, s.PanelB, partner)
		}
	}
	if seen != 4 {
		t.Errorf("floor seams = %d, want 4", seen)
	}
}

func TestEveryPanelEdgeCovered(t *testing.T) {
	tbl := Default()
	for _, panel := range geometry.StructuralPanels() {
		if _, ok := tbl[panel]; !ok {
			t.Errorf("panel %s missing from polarity table", panel)
		}
	}
	// The floor is the anchor panel: male everywhere.
	for _, edge := range []EdgeSide{EdgeBottom, EdgeRight, EdgeTop, EdgeLeft} {
		if p, _ := tbl.PolarityOf(geometry.PanelFloor, edge); p != Male {
			t.Errorf("floor %s = %s, want male", edge, p)
		}
	}
}

func TestPolarityOfUnknown(t *testing.T) {
	tbl := Default()
	if _, ok := tbl.PolarityOf("chimney_front", EdgeTop); ok {
		t.Error("unknown panel should not resolve")
	}
	if _, ok := tbl.PolarityOf(geometry.PanelFloor, EdgeGable); ok {
		t.Error("unknown edge should not resolve")
	}
}

func TestOppositeIsInvolution(t *testing.T) {
	for _, p := range []Polarity{None, Male, Female} {
		if p.Opposite().Opposite() != p {
			t.Errorf("Opposite(Opposite(%s)) != %s", p, p)
		}
	}
	if Male.Opposite() != Female || Female.Opposite() != Male || None.Opposite() != None {
		t.Error("Opposite pairing broken")
	}
}

func TestTabCountTable(t *testing.T) {
	// Reference counts for finger length 15mm: min spacing 12mm, multi-tab
	// threshold 37.5mm, capped at 7.
	pl := testPlanner()
	tests := []struct {
		length float64
		want   int
	}{
		{30, 1},
		{60, 1},
		{100, 3},
		{150, 5},
		{200, 7},
		{500, 7}, // clamped
	}
	for _, tt := range tests {
		plan, err := pl.Plan(tt.length, Male)
		if err != nil {
			t.Fatalf("Plan(%.0f): %v", tt.length, err)
		}
		if plan.Count != tt.want {
			t.Errorf("Plan(%.0f).Count = %d, want %d", tt.length, plan.Count, tt.want)
		}
		if plan.Count%2 == 0 {
			t.Errorf("Plan(%.0f).Count = %d, must be odd", tt.length, plan.Count)
		}
	}
}

func TestSymmetricPlacement(t *testing.T) {
	pl := testPlanner()
	for _, length := range []float64{20, 40, 75.5, 100, 133.7, 150, 200, 480} {
		plan, err := pl.Plan(length, Male)
		if err != nil {
			t.Fatalf("Plan(%.1f): %v", length, err)
		}
		wantGap := (length - float64(plan.Count)*plan.TabLength) / float64(plan.Count+1)
		if math.Abs(plan.Gap(length)-wantGap) > 1e-9 {
			t.Errorf("Gap(%.1f) = %.6f, want %.6f", length, plan.Gap(length), wantGap)
		}

		// All count+1 gaps must be equal: before the first tab, between
		// consecutive tabs, and after the last tab.
		prev := 0.0
		for i, span := range plan.Positions {
			gap := span.Start - prev
			if math.Abs(gap-wantGap) > 1e-9 {
				t.Errorf("length %.1f: gap %d = %.6f, want %.6f", length, i, gap, wantGap)
			}
			if math.Abs(span.Length()-plan.TabLength) > 1e-9 {
				t.Errorf("length %.1f: tab %d length = %.6f, want %.6f", length, i, span.Length(), plan.TabLength)
			}
			prev = span.End
		}
		if gap := length - prev; math.Abs(gap-wantGap) > 1e-9 {
			t.Errorf("length %.1f: trailing gap = %.6f, want %.6f", length, gap, wantGap)
		}

		// Bilateral symmetry: mirroring the layout maps tabs onto tabs.
		for i := range plan.Positions {
			mirror := plan.Positions[len(plan.Positions)-1-i]
			if math.Abs((length-mirror.End)-plan.Positions[i].Start) > 1e-9 {
				t.Errorf("length %.1f: tab %d not mirror-symmetric", length, i)
			}
		}
	}
}

func TestSingleTabCentered(t *testing.T) {
	pl := testPlanner()
	plan, err := pl.Plan(30, Female)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if plan.Count != 1 {
		t.Fatalf("Count = %d, want 1", plan.Count)
	}
	span := plan.Positions[0]
	center := (span.Start + span.End) / 2
	if math.Abs(center-15) > 1e-9 {
		t.Errorf("tab center = %.4f, want 15 (edge midpoint)", center)
	}
}

func TestPlanSingleForcesOneTab(t *testing.T) {
	pl := testPlanner()
	plan, err := pl.PlanSingle(200, Male)
	if err != nil {
		t.Fatalf("PlanSingle: %v", err)
	}
	if plan.Count != 1 {
		t.Errorf("Count = %d, want 1", plan.Count)
	}
}

func TestSingleTabPlannerOption(t *testing.T) {
	pl := testPlanner()
	pl.SingleTab = true
	plan, err := pl.Plan(200, Male)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if plan.Count != 1 {
		t.Errorf("Count = %d, want 1 with SingleTab set", plan.Count)
	}
}

func TestKerfRoundTrip(t *testing.T) {
	for _, tt := range []struct{ thickness, kerf float64 }{
		{3, 0}, {3, 0.1}, {3, 0.2}, {6, 0.15}, {0.5, 0.05},
	} {
		pl := Planner{FingerLength: 15, Thickness: tt.thickness, Kerf: tt.kerf}
		male := pl.MaleDepth()
		female := pl.FemaleDepth()
		if math.Abs(male-(tt.thickness+tt.kerf)) > 1e-12 {
			t.Errorf("t=%.2f k=%.2f: MaleDepth = %.4f", tt.thickness, tt.kerf, male)
		}
		if math.Abs(female-(tt.thickness-tt.kerf)) > 1e-12 {
			t.Errorf("t=%.2f k=%.2f: FemaleDepth = %.4f", tt.thickness, tt.kerf, female)
		}
		if math.Abs((male-female)-2*tt.kerf) > 1e-12 {
			t.Errorf("t=%.2f k=%.2f: male-female = %.6f, want %.6f", tt.thickness, tt.kerf, male-female, 2*tt.kerf)
		}
	}
}

func TestPlanDepths(t *testing.T) {
	pl := testPlanner()
	male, err := pl.Plan(100, Male)
	if err != nil {
		t.Fatal(err)
	}
	female, err := pl.Plan(100, Female)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(male.TabDepth-3.1) > 1e-9 {
		t.Errorf("male depth = %.4f, want 3.1", male.TabDepth)
	}
	if math.Abs(female.TabDepth-2.9) > 1e-9 {
		t.Errorf("female depth = %.4f, want 2.9", female.TabDepth)
	}
	// The two plans must use identical positions, or the panels won't mate.
	if len(male.Positions) != len(female.Positions) {
		t.Fatal("male and female plans differ in count")
	}
	for i := range male.Positions {
		if male.Positions[i] != female.Positions[i] {
			t.Errorf("position %d differs between male and female plan", i)
		}
	}
}

func TestPlanNone(t *testing.T) {
	pl := testPlanner()
	plan, err := pl.Plan(5, None) // shorter than the finger: still fine
	if err != nil {
		t.Fatalf("Plan(None): %v", err)
	}
	if plan.Count != 0 || len(plan.Positions) != 0 {
		t.Errorf("None plan should be empty, got %+v", plan)
	}
}

func TestPlanFailures(t *testing.T) {
	pl := testPlanner()
	if _, err := pl.Plan(10, Male); !errors.Is(err, errors.ErrCodeFingerJoint) {
		t.Errorf("short edge: got %v, want FINGER_JOINT", err)
	}

	// An edge exactly as long as the finger leaves zero-width gaps.
	if _, err := pl.Plan(15, Male); !errors.Is(err, errors.ErrCodeFingerJoint) {
		t.Errorf("zero-width gaps: got %v, want FINGER_JOINT", err)
	}

	bad := Planner{FingerLength: 15, Thickness: 3, Kerf: 3}
	if _, err := bad.Plan(100, Male); !errors.Is(err, errors.ErrCodeKerfExceedsThickness) {
		t.Errorf("kerf ≥ thickness: got %v, want KERF_EXCEEDS_THICKNESS", err)
	}
}

func TestCutoutDims(t *testing.T) {
	pl := testPlanner()
	l, w := pl.CutoutDims()
	if math.Abs(l-14.9) > 1e-9 || math.Abs(w-2.9) > 1e-9 {
		t.Errorf("CutoutDims = %.2f×%.2f, want 14.9×2.9", l, w)
	}
}

func TestNewPlannerFromParams(t *testing.T) {
	pl := NewPlanner(geometry.Params{
		Length: 100, Width: 80, Height: 90,
		GableAngle: 45, Thickness: 3, FingerLength: 15, Kerf: 0.1,
	})
	if pl.FingerLength != 15 || pl.Thickness != 3 || pl.Kerf != 0.1 {
		t.Errorf("NewPlanner = %+v", pl)
	}
}
