package components

import (
	"fmt"
	"math"

	"github.com/matzehuels/housebox/pkg/errors"
	"github.com/matzehuels/housebox/pkg/geometry"
	"github.com/matzehuels/housebox/pkg/outline"
)

func (c Chimney) validate(roofLen, roofWidth float64) error {
	if c.Width <= 0 || c.Depth <= 0 || c.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidDimension,
			"chimney dimensions must be positive, got %.1f×%.1f×%.1f", c.Width, c.Depth, c.Height)
	}
	if c.Panel != geometry.PanelRoofLeft && c.Panel != geometry.PanelRoofRight {
		return errors.New(errors.ErrCodeInvalidConfig,
			"chimney must sit on a roof panel, got %q", c.Panel)
	}
	if c.X < 0 || c.Y < 0 || c.X+c.Width > roofLen || c.Y+c.Depth > roofWidth {
		return errors.New(errors.ErrCodeCutoutOutOfBounds,
			"chimney footprint at (%.1f,%.1f) leaves the roof panel", c.X, c.Y)
	}
	return nil
}

// Footprint is the score rectangle engraved on the roof panel where the
// chimney body sits. The depth stretches by 1/cos(angle) because the
// footprint lives on the pitched surface.
func (c Chimney) Footprint(gableAngleDeg float64) outline.Path {
	projected := c.Depth / math.Cos(gableAngleDeg*math.Pi/180)
	return outline.Rect(c.X, c.Y, c.Width, projected)
}

// BodyPanels builds the four loose chimney walls. The body stands plumb
// on the pitched roof, so the downhill face is taller than the uphill
// face by depth·tan(angle) and the side walls are trapezoids whose bottom
// edge follows the slope. The walls are butt-glued, no finger joints at
// this scale.
func (c Chimney) BodyPanels(gableAngleDeg float64) []*outline.Panel {
	rise := c.Depth * math.Tan(gableAngleDeg*math.Pi/180)
	tall := c.Height + rise

	side := func(name string, downhillLeft bool) *outline.Panel {
		// Flat top, slanted bottom. The downhill end carries the tall edge.
		yLeft, yRight := c.Height, tall
		if downhillLeft {
			yLeft, yRight = tall, c.Height
		}
		var p outline.Path
		p.MoveTo(geometry.Point{X: 0, Y: 0})
		p.LineTo(geometry.Point{X: c.Depth, Y: 0})
		p.LineTo(geometry.Point{X: c.Depth, Y: yRight})
		p.LineTo(geometry.Point{X: 0, Y: yLeft})
		p.Close()
		return &outline.Panel{
			Name:    name,
			Base:    geometry.Dim{Width: c.Depth, Height: tall},
			Outline: p,
		}
	}

	prefix := fmt.Sprintf("%s_chimney", c.Panel)
	return []*outline.Panel{
		{
			Name:    prefix + "_front",
			Base:    geometry.Dim{Width: c.Width, Height: tall},
			Outline: outline.Rect(0, 0, c.Width, tall),
		},
		{
			Name:    prefix + "_back",
			Base:    geometry.Dim{Width: c.Width, Height: c.Height},
			Outline: outline.Rect(0, 0, c.Width, c.Height),
		},
		side(prefix+"_left", true),
		side(prefix+"_right", false),
	}
}
