package geometry

import "math"

// Derived is the full set of dimensions computed from a Params snapshot.
// It is immutable after Derive returns. Kerf never mutates these values;
// kerf compensation is applied per-joint by the planner (male tabs grow by
// k, female slots shrink by k) so the base dimensions stay exact.
type Derived struct {
	Params Params

	// Gable geometry
	GablePeakHeight  float64 // (y/2)·tanθ, height of the triangular cap
	TotalGableHeight float64 // z + GablePeakHeight
	BaseRoofWidth    float64 // (y/2)/cosθ, slope length from wall top to ridge

	// Roof panel dimensions. The widths are deliberately asymmetric so the
	// two panels overlap correctly at the ridge.
	RoofPanelLength     float64 // x + 6t
	RoofPanelLeftWidth  float64 // BaseRoofWidth + 4t
	RoofPanelRightWidth float64 // BaseRoofWidth + 3t
}

// Derive validates p and computes every derived dimension.
// It is a pure function: the same parameters always produce the same
// snapshot or the same error.
func Derive(p Params) (*Derived, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	theta := p.gableAngleRad()
	d := &Derived{
		Params:          p,
		GablePeakHeight: (p.Width / 2) * math.Tan(theta),
		BaseRoofWidth:   (p.Width / 2) / math.Cos(theta),
		RoofPanelLength: p.Length + 6*p.Thickness,
	}
	d.TotalGableHeight = p.Height + d.GablePeakHeight
	d.RoofPanelLeftWidth = d.BaseRoofWidth + 4*p.Thickness
	d.RoofPanelRightWidth = d.BaseRoofWidth + 3*p.Thickness
	return d, nil
}
