// Package geometry derives all panel and joint dimensions for a house box
// from a small set of physical parameters.
//
// The package is a pure function set: Derive validates the input parameters
// and returns an immutable snapshot of every derived dimension. Nothing here
// mutates in place; changing a parameter means deriving a fresh snapshot.
// All dimensions are millimeters.
package geometry

import (
	"math"

	"github.com/matzehuels/housebox/pkg/errors"
)

// Angle bounds for the gable roof, in degrees. Outside this range the roof
// geometry degenerates (near-flat or near-vertical slopes).
const (
	MinGableAngle = 10.0
	MaxGableAngle = 80.0
)

// Params holds the base physical parameters of a house box.
// It is treated as immutable input; Derive never modifies it.
type Params struct {
	Length       float64 // x: front-to-back depth
	Width        float64 // y: side-to-side width
	Height       float64 // z: wall height to the start of the gable
	GableAngle   float64 // θ: gable half-angle in degrees
	Thickness    float64 // t: material thickness
	FingerLength float64 // f: finger joint tab length
	Kerf         float64 // k: laser kerf compensation, typically ≪ t
}

// Default parameter values, matching a small desk-sized house box cut from
// 3mm plywood.
func DefaultParams() Params {
	return Params{
		Length:       100,
		Width:        100,
		Height:       80,
		GableAngle:   45,
		Thickness:    3,
		FingerLength: 15,
		Kerf:         0.1,
	}
}

// Validate checks every parameter range. It returns the first violation as a
// structured validation error; no geometry is produced for invalid input.
func (p Params) Validate() error {
	if p.Length <= 0 {
		return errors.New(errors.ErrCodeInvalidDimension, "length must be positive, got %.2f", p.Length)
	}
	if p.Width <= 0 {
		return errors.New(errors.ErrCodeInvalidDimension, "width must be positive, got %.2f", p.Width)
	}
	if p.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidDimension, "height must be positive, got %.2f", p.Height)
	}
	if p.GableAngle < MinGableAngle || p.GableAngle > MaxGableAngle {
		return errors.New(errors.ErrCodeInvalidAngle,
			"gable angle %.1f° outside %.0f°..%.0f°", p.GableAngle, MinGableAngle, MaxGableAngle)
	}
	if p.Thickness <= 0 {
		return errors.New(errors.ErrCodeInvalidDimension, "material thickness must be positive, got %.2f", p.Thickness)
	}
	if p.FingerLength <= 0 {
		return errors.New(errors.ErrCodeInvalidDimension, "finger length must be positive, got %.2f", p.FingerLength)
	}
	if p.Kerf < 0 {
		return errors.New(errors.ErrCodeInvalidDimension, "kerf must be non-negative, got %.3f", p.Kerf)
	}
	if p.Kerf >= p.Thickness {
		// A female slot is cut t−k wide; k ≥ t would make it vanish.
		return errors.New(errors.ErrCodeKerfExceedsThickness,
			"kerf %.2f must be smaller than material thickness %.2f", p.Kerf, p.Thickness)
	}

	minDim := math.Min(p.Length, math.Min(p.Width, p.Height))
	if p.Thickness >= minDim/4 {
		return errors.New(errors.ErrCodeInvalidDimension,
			"material thickness %.1f degenerate against smallest dimension %.1f", p.Thickness, minDim)
	}
	if p.FingerLength > minDim/3 {
		return errors.New(errors.ErrCodeInvalidDimension,
			"finger length %.1f too large for smallest dimension %.1f", p.FingerLength, minDim)
	}
	return nil
}

// gableAngleRad returns θ in radians.
func (p Params) gableAngleRad() float64 {
	return p.GableAngle * math.Pi / 180
}
