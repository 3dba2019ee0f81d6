// Package joints implements the finger-joint model of the house box: the
// per-edge joint polarity table and the multi-tab placement planner.
//
// The polarity table is the single source of truth for which side of every
// seam carries tabs and which carries slots. It is built once at package
// initialization, is independent of dimensions, and is never mutated. Panel
// renderers look polarities up here instead of deciding locally, which is
// what guarantees that two independently rendered panels mate correctly.
package joints

import (
	"fmt"
	"math"

	"github.com/matzehuels/housebox/pkg/geometry"
)

// Polarity states for one edge of one panel.
type Polarity int

const (
	// None marks a smooth, unjointed boundary (e.g. a wall top under the
	// roof overhang).
	None Polarity = iota
	// Male edges carry protruding tabs, oversized by the kerf.
	Male
	// Female edges carry recessed slots, undersized by the kerf.
	Female
)

// String implements fmt.Stringer.
func (p Polarity) String() string {
	switch p {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return "none"
	}
}

// Opposite returns the mating polarity. None mates only None.
func (p Polarity) Opposite() Polarity {
	switch p {
	case Male:
		return Female
	case Female:
		return Male
	default:
		return None
	}
}

// EdgeSide names one edge of a panel. Rectangular panels use the four
// compass sides; gable walls replace "top" with the two roof slopes; roof
// panels additionally carry two internal slot pseudo-edges that receive the
// gable slope tabs.
type EdgeSide string

const (
	EdgeBottom EdgeSide = "bottom"
	EdgeRight  EdgeSide = "right"
	EdgeTop    EdgeSide = "top"
	EdgeLeft   EdgeSide = "left"

	// Gable wall roof slopes, left and right of the ridge peak.
	EdgeRoofLeft  EdgeSide = "roof_left"
	EdgeRoofRight EdgeSide = "roof_right"

	// Roof panel edges: the edge resting on the gable walls and the outer
	// eave edge.
	EdgeGable EdgeSide = "gable_edge"
	EdgeOuter EdgeSide = "outer"

	// Internal slot cutouts in the roof panels, one near each gable wall.
	EdgeSlotFront EdgeSide = "slot_front"
	EdgeSlotBack  EdgeSide = "slot_back"
)

// Table maps every panel edge to its joint polarity.
type Table map[geometry.PanelName]map[EdgeSide]Polarity

// table is the process-wide polarity assignment. The floor is the anchor
// panel and is male on all four edges; everything else follows from that.
var table = Table{
	geometry.PanelFloor: {
		EdgeBottom: Male, // spans the length, mates side_wall_left bottom
		EdgeRight:  Male, // spans the width, mates gable_wall_back bottom
		EdgeTop:    Male, // spans the length, mates side_wall_right bottom
		EdgeLeft:   Male, // spans the width, mates gable_wall_front bottom
	},
	geometry.PanelSideWallLeft: {
		EdgeBottom: Female, // receives floor tabs
		EdgeRight:  Male,   // mates gable_wall_front left
		EdgeTop:    None,   // roof rests on top, no joint
		EdgeLeft:   Male,   // mates gable_wall_back right
	},
	geometry.PanelSideWallRight: {
		EdgeBottom: Female,
		EdgeRight:  Male, // mates gable_wall_back left
		EdgeTop:    None,
		EdgeLeft:   Male, // mates gable_wall_front right
	},
	geometry.PanelGableWallFront: {
		EdgeBottom:    Female,
		EdgeRight:     Female,
		EdgeRoofRight: Male, // single tab into roof_panel_right slot
		EdgeRoofLeft:  Male, // single tab into roof_panel_left slot
		EdgeLeft:      Female,
	},
	geometry.PanelGableWallBack: {
		EdgeBottom:    Female,
		EdgeRight:     Female,
		EdgeRoofRight: Male,
		EdgeRoofLeft:  Male,
		EdgeLeft:      Female,
	},
	geometry.PanelRoofLeft: {
		EdgeGable:     Female, // differentiated from the right panel at the ridge
		EdgeLeft:      None,
		EdgeOuter:     None,
		EdgeRight:     None,
		EdgeSlotFront: Female,
		EdgeSlotBack:  Female,
	},
	geometry.PanelRoofRight: {
		EdgeGable:     Male,
		EdgeLeft:      None,
		EdgeOuter:     None,
		EdgeRight:     None,
		EdgeSlotFront: Female,
		EdgeSlotBack:  Female,
	},
}

// Default returns the process-wide polarity table. The returned map is
// shared and must be treated as read-only.
func Default() Table {
	return table
}

// PolarityOf looks up the polarity of one panel edge. The second return is
// false when the panel or edge is not part of the table.
func (t Table) PolarityOf(panel geometry.PanelName, edge EdgeSide) (Polarity, bool) {
	edges, ok := t[panel]
	if !ok {
		return None, false
	}
	p, ok := edges[edge]
	return p, ok
}

// Seam is one physical seam between two panel edges.
type Seam struct {
	PanelA geometry.PanelName
	EdgeA  EdgeSide
	PanelB geometry.PanelName
	EdgeB  EdgeSide
}

// Seams lists every physical seam of the assembled house. Seams where both
// sides are None are non-joined boundaries (the roof resting on the wall
// tops) and are listed so the verification covers them too.
func Seams() []Seam {
	return []Seam{
		// Floor to walls. The floor's bottom and top edges run along the
		// house length and mate the side walls; its left and right edges
		// run along the width and mate the gable walls.
		{geometry.PanelFloor, EdgeBottom, geometry.PanelSideWallLeft, EdgeBottom},
		{geometry.PanelFloor, EdgeTop, geometry.PanelSideWallRight, EdgeBottom},
		{geometry.PanelFloor, EdgeLeft, geometry.PanelGableWallFront, EdgeBottom},
		{geometry.PanelFloor, EdgeRight, geometry.PanelGableWallBack, EdgeBottom},

		// Side walls to gable walls
		{geometry.PanelSideWallLeft, EdgeRight, geometry.PanelGableWallFront, EdgeLeft},
		{geometry.PanelSideWallLeft, EdgeLeft, geometry.PanelGableWallBack, EdgeRight},
		{geometry.PanelSideWallRight, EdgeLeft, geometry.PanelGableWallFront, EdgeRight},
		{geometry.PanelSideWallRight, EdgeRight, geometry.PanelGableWallBack, EdgeLeft},

		// Gable slopes into roof panel slots
		{geometry.PanelGableWallFront, EdgeRoofLeft, geometry.PanelRoofLeft, EdgeSlotFront},
		{geometry.PanelGableWallFront, EdgeRoofRight, geometry.PanelRoofRight, EdgeSlotFront},
		{geometry.PanelGableWallBack, EdgeRoofLeft, geometry.PanelRoofLeft, EdgeSlotBack},
		{geometry.PanelGableWallBack, EdgeRoofRight, geometry.PanelRoofRight, EdgeSlotBack},

		// Ridge overlap between the two roof panels
		{geometry.PanelRoofLeft, EdgeGable, geometry.PanelRoofRight, EdgeGable},

		// Roof resting on the wall tops: non-joined boundaries
		{geometry.PanelSideWallLeft, EdgeTop, geometry.PanelRoofLeft, EdgeOuter},
		{geometry.PanelSideWallRight, EdgeTop, geometry.PanelRoofRight, EdgeOuter},
	}
}

// edgeLength returns the drawn span of a compass edge of a structural
// panel. The second return is false for the slope, slot, ridge and eave
// pseudo-edges, whose mating is governed by the single-tab rule rather
// than by matching edge spans.
func edgeLength(d *geometry.Derived, panel geometry.PanelName, edge EdgeSide) (float64, bool) {
	dims, ok := d.PanelDimensions()[panel]
	if !ok {
		return 0, false
	}
	switch edge {
	case EdgeBottom, EdgeTop:
		return dims.Width, true
	case EdgeLeft, EdgeRight:
		if d.PanelShape(panel).Kind == geometry.HouseProfile {
			// Gable side edges stop where the triangular cap begins.
			return d.Params.Height, true
		}
		return dims.Height, true
	default:
		return 0, false
	}
}

// VerifySeams checks that every seam references edges with exactly opposite
// polarities, or None on both sides for non-joined boundaries. It is run by
// the property test suite, not at request time: the table is static, so one
// verification covers every run.
func (t Table) VerifySeams(seams []Seam) error {
	for _, s := range seams {
		pa, ok := t.PolarityOf(s.PanelA, s.EdgeA)
		if !ok {
			return fmt.Errorf("seam references unknown edge %s/%s", s.PanelA, s.EdgeA)
		}
		pb, ok := t.PolarityOf(s.PanelB, s.EdgeB)
		if !ok {
			return fmt.Errorf("seam references unknown edge %s/%s", s.PanelB, s.EdgeB)
		}
		if pa.Opposite() != pb {
			return fmt.Errorf("seam %s/%s (%s) does not mate %s/%s (%s)",
				s.PanelA, s.EdgeA, pa, s.PanelB, s.EdgeB, pb)
		}
	}
	return nil
}

// VerifySeamLengths checks that both edges of every jointed seam span the
// same drawn length under the given dimensions, so the tab plans computed
// independently for the two sides line up. Seams involving pseudo-edges
// and non-joined boundaries are skipped.
func (t Table) VerifySeamLengths(d *geometry.Derived, seams []Seam) error {
	for _, s := range seams {
		la, oka := edgeLength(d, s.PanelA, s.EdgeA)
		lb, okb := edgeLength(d, s.PanelB, s.EdgeB)
		if !oka || !okb {
			continue
		}
		if pa, _ := t.PolarityOf(s.PanelA, s.EdgeA); pa == None {
			continue
		}
		if math.Abs(la-lb) > 1e-9 {
			return fmt.Errorf("seam %s/%s (%.2fmm) does not match %s/%s (%.2fmm)",
				s.PanelA, s.EdgeA, la, s.PanelB, s.EdgeB, lb)
		}
	}
	return nil
}
