package components

import (
	"math"

	"github.com/matzehuels/housebox/pkg/errors"
	"github.com/matzehuels/housebox/pkg/geometry"
)

// Attic window thresholds: the gable cap must be tall or the roof steep.
const (
	minCapHeightForAttic = 60.0
	minAngleForAttic     = 30.0
)

// Positioner places doors and windows on wall panels: doors centered at
// the bottom, windows in the upper band, with collision avoidance against
// components already placed.
type Positioner struct {
	geom  *geometry.Derived
	sizer Sizer
}

// NewPositioner wires a positioner for one derived geometry snapshot.
func NewPositioner(d *geometry.Derived) Positioner {
	return Positioner{geom: d, sizer: NewSizer(d)}
}

// CanPlaceAttic reports whether the gable cap has room for an attic
// window: at least 60mm of cap height or a 30° or steeper roof.
func (p Positioner) CanPlaceAttic() bool {
	return p.geom.GablePeakHeight >= minCapHeightForAttic ||
		p.geom.Params.GableAngle >= minAngleForAttic
}

// ValidatePlacement checks panel bounds and the thickness margin kept
// clear around every component.
func (p Positioner) ValidatePlacement(pl Placement) error {
	dim, ok := p.geom.PanelDimensions()[pl.Panel]
	if !ok {
		return errors.New(errors.ErrCodeCutoutOutOfBounds, "unknown panel %q", pl.Panel)
	}
	margin := p.geom.Params.Thickness
	if pl.X < margin || pl.Y < margin ||
		pl.X+pl.Width > dim.Width-margin || pl.Y+pl.Height > dim.Height-margin {
		return errors.New(errors.ErrCodeCutoutOutOfBounds,
			"component %s breaks the %.1fmm panel margin", pl, margin)
	}
	return nil
}

// gableWidthAt returns the gable wall width available at a given y in
// panel-local coordinates. Inside the triangular cap the width narrows
// linearly to zero at the peak.
func (p Positioner) gableWidthAt(y float64) float64 {
	capH := p.geom.GablePeakHeight
	if y >= capH {
		return p.geom.Params.Width
	}
	if y <= 0 {
		return 0
	}
	return p.geom.Params.Width * (y / capH)
}

// RecommendDoors places one door: centered horizontally, resting on the
// bottom margin. Only wall panels take doors.
func (p Positioner) RecommendDoors(panel geometry.PanelName, t DoorType) []Door {
	dim, ok := p.geom.PanelDimensions()[panel]
	if !ok || !isWallPanel(panel) {
		return nil
	}
	w, h := p.sizer.DoorSize(panel)
	margin := p.geom.Params.Thickness * 2
	pl := Placement{
		Panel:  panel,
		X:      (dim.Width - w) / 2,
		Y:      dim.Height - margin - h,
		Width:  w,
		Height: h,
	}
	if p.ValidatePlacement(pl) != nil {
		return nil
	}
	return []Door{{Type: t, Placement: pl}}
}

// RecommendWindows places windows of the given type on a wall panel,
// avoiding the existing components. Single-opening windows try the center
// of the upper band first and fall back to offset positions; assemblies
// place at most one per wall. Attic windows go into the gable cap.
func (p Positioner) RecommendWindows(panel geometry.PanelName, t WindowType, existing []Placement) []Window {
	dim, ok := p.geom.PanelDimensions()[panel]
	if !ok || !isWallPanel(panel) {
		return nil
	}
	if t == WindowAttic {
		return p.recommendAttic(panel, existing)
	}

	var w, h float64
	if isAssembly(t) {
		w, h = p.sizer.AssemblySize(panel, t)
	} else {
		w, h = p.sizer.WindowSize(panel, t)
	}
	bandY := p.windowBandY(panel, h)

	center := Placement{Panel: panel, X: (dim.Width - w) / 2, Y: bandY, Width: w, Height: h}
	if p.placeable(center, existing) {
		return []Window{{Type: t, Placement: center}}
	}

	// The centered spot is taken, usually by a door. Assemblies give up;
	// single windows shrink and try flanking positions.
	if isAssembly(t) {
		return nil
	}
	var windows []Window
	placed := append([]Placement(nil), existing...)
	sideW := math.Max(w*0.7, minWindowSize)
	sideH := math.Max(h*0.7, minWindowSize)
	for _, fraction := range []float64{0.2, 0.4, 0.6, 0.8} {
		pl := Placement{
			Panel:  panel,
			X:      dim.Width*fraction - sideW/2,
			Y:      bandY,
			Width:  sideW,
			Height: sideH,
		}
		if !p.placeable(pl, placed) || p.tooClose(pl, placed) {
			continue
		}
		windows = append(windows, Window{Type: t, Placement: pl})
		placed = append(placed, pl)
		if len(windows) >= 2 {
			break
		}
	}
	return windows
}

// windowBandY is the top of the window band: the upper area of the wall
// section, measured in panel-local y-down coordinates.
func (p Positioner) windowBandY(panel geometry.PanelName, winH float64) float64 {
	dim := p.geom.PanelDimensions()[panel]
	margin := p.geom.Params.Thickness
	var y float64
	switch panel {
	case geometry.PanelGableWallFront, geometry.PanelGableWallBack:
		y = dim.Height - 0.382*p.geom.Params.Height - winH
	default:
		y = 0.65*dim.Height - winH
	}
	return math.Max(y, margin)
}

// recommendAttic places one window centered in the gable cap, provided
// the cap is wide enough at the window's top edge.
func (p Positioner) recommendAttic(panel geometry.PanelName, existing []Placement) []Window {
	if panel != geometry.PanelGableWallFront && panel != geometry.PanelGableWallBack {
		return nil
	}
	if !p.CanPlaceAttic() {
		return nil
	}
	w, h := p.sizer.WindowSize(panel, WindowAttic)
	capH := p.geom.GablePeakHeight
	y := 0.618*capH - h
	if y < 0 {
		return nil
	}
	margin := p.geom.Params.Thickness
	if w > p.gableWidthAt(y)-2*margin {
		return nil
	}
	pl := Placement{
		Panel:  panel,
		X:      (p.geom.Params.Width - w) / 2,
		Y:      y,
		Width:  w,
		Height: h,
	}
	for _, e := range existing {
		if pl.overlaps(e) {
			return nil
		}
	}
	return []Window{{Type: WindowAttic, Placement: pl}}
}

func (p Positioner) placeable(pl Placement, existing []Placement) bool {
	if p.ValidatePlacement(pl) != nil {
		return false
	}
	for _, e := range existing {
		if pl.overlaps(e) {
			return false
		}
	}
	return true
}

// tooClose rejects placements whose center is nearer to an existing
// component than half their combined widths plus 20% spacing.
func (p Positioner) tooClose(pl Placement, existing []Placement) bool {
	for _, e := range existing {
		if e.Panel != pl.Panel {
			continue
		}
		dx := (pl.X + pl.Width/2) - (e.X + e.Width/2)
		dy := (pl.Y + pl.Height/2) - (e.Y + e.Height/2)
		minDist := (pl.Width+e.Width)/2 + pl.Width*0.2
		if math.Hypot(dx, dy) < minDist {
			return true
		}
	}
	return false
}

func isWallPanel(panel geometry.PanelName) bool {
	switch panel {
	case geometry.PanelSideWallLeft, geometry.PanelSideWallRight,
		geometry.PanelGableWallFront, geometry.PanelGableWallBack:
		return true
	}
	return false
}
