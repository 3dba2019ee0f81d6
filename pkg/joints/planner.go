package joints

import (
	"github.com/matzehuels/housebox/pkg/errors"
	"github.com/matzehuels/housebox/pkg/geometry"
)

// Multi-tab placement constants, as ratios of the finger length.
const (
	// minSpacingRatio is the smallest allowed gap between two tabs.
	minSpacingRatio = 0.8
	// multiTabRatio is the shortest edge that receives more than one tab.
	multiTabRatio = 2.5
	// maxTabs caps the tab count; odd so the layout stays symmetric.
	maxTabs = 7
)

// Span is a [Start, End) interval along an edge, measured from the edge's
// starting corner.
type Span struct {
	Start, End float64
}

// Length returns End − Start.
func (s Span) Length() float64 { return s.End - s.Start }

// Plan is the computed tab/slot placement for one edge.
type Plan struct {
	Polarity  Polarity
	Count     int     // number of tabs or slots; 0 for a smooth edge
	TabLength float64 // length of each tab along the edge
	TabDepth  float64 // protrusion (male) or recess (female) across the edge
	Positions []Span  // tab intervals, ascending, bilaterally symmetric
}

// Gap returns the uniform gap between (and around) the tabs. A plan with
// count n has n+1 equal gaps summing to edgeLength − n·TabLength.
func (p Plan) Gap(edgeLength float64) float64 {
	if p.Count == 0 {
		return edgeLength
	}
	return (edgeLength - float64(p.Count)*p.TabLength) / float64(p.Count+1)
}

// Planner computes tab counts and placements for edges. The zero value is
// not usable; construct it from validated parameters with NewPlanner.
type Planner struct {
	FingerLength float64
	Thickness    float64
	Kerf         float64

	// SingleTab forces one centered tab per edge regardless of length.
	SingleTab bool
}

// NewPlanner builds a planner from house parameters.
func NewPlanner(p geometry.Params) Planner {
	return Planner{
		FingerLength: p.FingerLength,
		Thickness:    p.Thickness,
		Kerf:         p.Kerf,
	}
}

// MaleDepth is the protrusion of a male tab: oversized by the kerf so the
// laser cut leaves exactly the material thickness.
func (pl Planner) MaleDepth() float64 { return pl.Thickness + pl.Kerf }

// FemaleDepth is the recess of a female slot: undersized by the kerf so the
// mated pair is a tight thickness-wide fit.
func (pl Planner) FemaleDepth() float64 { return pl.Thickness - pl.Kerf }

// CutoutDims returns the length×width of an internal female slot cutout
// (used for the gable tabs passing through the roof panels). Both axes are
// undersized by the kerf.
func (pl Planner) CutoutDims() (length, width float64) {
	return pl.FingerLength - pl.Kerf, pl.Thickness - pl.Kerf
}

// Plan computes the tab placement for an edge of the given length and
// polarity. None polarity yields an empty plan for any length. The tab
// count is always odd, so the gap before the first tab equals the gap
// after the last one.
func (pl Planner) Plan(edgeLength float64, pol Polarity) (Plan, error) {
	return pl.plan(edgeLength, pol, false)
}

// PlanSingle computes a single-tab plan regardless of edge length. Gable
// roof slopes use this: each slope carries exactly one tab so it mates the
// single slot cut into the roof panel.
func (pl Planner) PlanSingle(edgeLength float64, pol Polarity) (Plan, error) {
	return pl.plan(edgeLength, pol, true)
}

func (pl Planner) plan(edgeLength float64, pol Polarity, single bool) (Plan, error) {
	if pl.Kerf >= pl.Thickness {
		return Plan{}, errors.New(errors.ErrCodeKerfExceedsThickness,
			"kerf %.2f must be smaller than material thickness %.2f", pl.Kerf, pl.Thickness)
	}
	if pol == None {
		return Plan{Polarity: None}, nil
	}
	if edgeLength < pl.FingerLength {
		return Plan{}, errors.New(errors.ErrCodeFingerJoint,
			"edge length %.2f cannot host a %.2f finger joint", edgeLength, pl.FingerLength)
	}

	count := 1
	if !single && !pl.SingleTab {
		count = pl.tabCount(edgeLength)
	}

	plan := Plan{
		Polarity:  pol,
		Count:     count,
		TabLength: pl.FingerLength,
	}
	if pol == Male {
		plan.TabDepth = pl.MaleDepth()
	} else {
		plan.TabDepth = pl.FemaleDepth()
	}

	// n tabs and n+1 equal gaps fill the edge exactly, which keeps the
	// layout bilaterally symmetric for any odd count.
	gap := (edgeLength - float64(count)*pl.FingerLength) / float64(count+1)
	if gap <= 0 {
		return Plan{}, errors.New(errors.ErrCodeFingerJoint,
			"%d tabs of %.2f do not fit edge %.2f", count, pl.FingerLength, edgeLength)
	}
	pos := gap
	for i := 0; i < count; i++ {
		plan.Positions = append(plan.Positions, Span{pos, pos + pl.FingerLength})
		pos += pl.FingerLength + gap
	}
	return plan, nil
}

// tabCount decides how many tabs an edge receives. Short edges get one
// centered tab; longer edges get as many as fit with the minimum spacing,
// clamped to maxTabs and rounded down to odd.
func (pl Planner) tabCount(edgeLength float64) int {
	f := pl.FingerLength
	if edgeLength < multiTabRatio*f {
		return 1
	}
	minSpacing := minSpacingRatio * f
	available := edgeLength - f
	perTab := f + minSpacing
	count := int((available + minSpacing) / perTab)
	if count > maxTabs {
		count = maxTabs
	}
	if count < 1 {
		count = 1
	}
	if count%2 == 0 {
		count--
	}
	return count
}
