// Package components is the catalog of architectural cutouts: windows,
// doors, chimneys, casing pieces and decorative style patterns. It sizes
// components proportionally to the house, positions them with collision
// avoidance, and merges their cut and score paths into the structural
// panels.
package components

import (
	"fmt"

	"github.com/matzehuels/housebox/pkg/errors"
	"github.com/matzehuels/housebox/pkg/geometry"
)

// WindowType selects the window cutout shape.
type WindowType string

const (
	WindowRectangular WindowType = "rectangular"
	WindowArched      WindowType = "arched"
	WindowCircular    WindowType = "circular"
	WindowAttic       WindowType = "attic"
	WindowBay         WindowType = "bay"
	WindowDormer      WindowType = "dormer"
	WindowDoubleHung  WindowType = "double_hung"
	WindowCasement    WindowType = "casement"
	WindowPalladian   WindowType = "palladian"
	WindowGothicPair  WindowType = "gothic_pair"
	WindowColonialSet WindowType = "colonial_set"
	WindowCrossPane   WindowType = "cross_pane"
	WindowMultiPane   WindowType = "multi_pane"
)

// WindowTypes lists every window type in a stable order.
func WindowTypes() []WindowType {
	return []WindowType{
		WindowRectangular, WindowArched, WindowCircular, WindowAttic,
		WindowBay, WindowDormer, WindowDoubleHung, WindowCasement,
		WindowPalladian, WindowGothicPair, WindowColonialSet,
		WindowCrossPane, WindowMultiPane,
	}
}

// ParseWindowType resolves a CLI or config string to a window type.
func ParseWindowType(s string) (WindowType, error) {
	for _, t := range WindowTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidConfig, "unknown window type %q", s)
}

// DoorType selects the door cutout shape.
type DoorType string

const (
	DoorRectangular DoorType = "rectangular"
	DoorArched      DoorType = "arched"
	DoorDouble      DoorType = "double"
	DoorDutch       DoorType = "dutch"
)

// DoorTypes lists every door type in a stable order.
func DoorTypes() []DoorType {
	return []DoorType{DoorRectangular, DoorArched, DoorDouble, DoorDutch}
}

// ParseDoorType resolves a CLI or config string to a door type.
func ParseDoorType(s string) (DoorType, error) {
	for _, t := range DoorTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidConfig, "unknown door type %q", s)
}

// Style selects the decorative score-line pattern family.
type Style string

const (
	StyleBasic        Style = "basic"
	StyleFachwerkhaus Style = "fachwerkhaus"
	StyleFarmhouse    Style = "farmhouse"
	StyleColonial     Style = "colonial"
	StyleBrick        Style = "brick"
	StyleVictorian    Style = "victorian"
	StyleTudor        Style = "tudor"
	StyleCraftsman    Style = "craftsman"
	StyleGingerbread  Style = "gingerbread"
)

// Styles lists every decorative style in a stable order.
func Styles() []Style {
	return []Style{
		StyleBasic, StyleFachwerkhaus, StyleFarmhouse, StyleColonial,
		StyleBrick, StyleVictorian, StyleTudor, StyleCraftsman,
		StyleGingerbread,
	}
}

// ParseStyle resolves a CLI or config string to a style.
func ParseStyle(s string) (Style, error) {
	for _, t := range Styles() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidConfig, "unknown style %q", s)
}

// Minimum component dimensions the laser can cut cleanly.
const (
	minWindowSize = 5.0
	minDoorWidth  = 8.0
	minDoorHeight = 15.0
)

// Placement locates one component on a panel. Coordinates are panel-local,
// top-left origin, y-down, like every path in the outline package.
type Placement struct {
	Panel  geometry.PanelName
	X, Y   float64
	Width  float64
	Height float64
}

// String renders the placement for error messages and summaries.
func (p Placement) String() string {
	return fmt.Sprintf("%s@(%.1f,%.1f) %.1f×%.1f", p.Panel, p.X, p.Y, p.Width, p.Height)
}

func (p Placement) overlaps(q Placement) bool {
	if p.Panel != q.Panel {
		return false
	}
	return p.X < q.X+q.Width && p.X+p.Width > q.X &&
		p.Y < q.Y+q.Height && p.Y+p.Height > q.Y
}

// Window is one placed window cutout.
type Window struct {
	Type WindowType
	Placement
}

func (w Window) validate() error {
	if w.Width < minWindowSize || w.Height < minWindowSize {
		return errors.New(errors.ErrCodeInvalidDimension,
			"window %.1f×%.1f below the %.0fmm laser minimum", w.Width, w.Height, minWindowSize)
	}
	return nil
}

// Door is one placed door cutout.
type Door struct {
	Type DoorType
	Placement
}

func (d Door) validate() error {
	if d.Width < minDoorWidth || d.Height < minDoorHeight {
		return errors.New(errors.ErrCodeInvalidDimension,
			"door %.1f×%.1f below the %.0f×%.0fmm minimum", d.Width, d.Height, minDoorWidth, minDoorHeight)
	}
	return nil
}

// Chimney is one chimney on a roof panel. Width runs across the slope,
// Depth along it, Height above the roof surface. The body is four loose
// wall panels plus a casing ring; the roof panel itself only receives a
// score-line footprint marking where the chimney sits.
type Chimney struct {
	Panel  geometry.PanelName
	X, Y   float64 // top-left of the footprint on the roof panel
	Width  float64
	Depth  float64
	Height float64
}

// Default chimney dimensions in mm.
const (
	DefaultChimneyWidth  = 8.0
	DefaultChimneyDepth  = 12.0
	DefaultChimneyHeight = 20.0
)
