package components

import (
	"fmt"
	"math"

	"github.com/matzehuels/housebox/pkg/geometry"
	"github.com/matzehuels/housebox/pkg/outline"
)

// Casing proportions as factors of the material thickness.
const (
	casingExtensionRatio = 0.4 // horizontal tab extension per side
	casingTabRatio       = 1.5 // tab bar height
	casingScoreRatio     = 0.2 // fold-line inset from the cut edges
)

// WindowCasing builds the loose frame piece glued behind a window
// opening. The shape follows the window: rectangular frames carry tab
// bars at top and bottom plus fold score lines, arched frames follow the
// arch, circular frames are a plain ring. Attic windows are too small to
// case and return nil.
func WindowCasing(w Window, thickness float64) *outline.Panel {
	switch w.Type {
	case WindowAttic:
		return nil
	case WindowArched:
		return archedWindowCasing(w, thickness)
	case WindowCircular:
		return circularWindowCasing(w, thickness)
	default:
		return rectangularWindowCasing(w, thickness)
	}
}

func rectangularWindowCasing(w Window, t float64) *outline.Panel {
	ext := casingExtensionRatio * t
	tab := casingTabRatio * t
	frameW := w.Width + 2*t
	outerW := frameW + 2*ext
	outerH := w.Height + 2*tab
	innerX := ext + t
	innerY := tab

	// Tab bars at top and bottom span the full width; the frame body
	// between them is inset by the extension on both sides.
	var p outline.Path
	p.MoveTo(geometry.Point{X: 0, Y: 0})
	p.LineTo(geometry.Point{X: outerW, Y: 0})
	p.LineTo(geometry.Point{X: outerW, Y: tab})
	p.LineTo(geometry.Point{X: outerW - ext, Y: tab})
	p.LineTo(geometry.Point{X: outerW - ext, Y: outerH - tab})
	p.LineTo(geometry.Point{X: outerW, Y: outerH - tab})
	p.LineTo(geometry.Point{X: outerW, Y: outerH})
	p.LineTo(geometry.Point{X: 0, Y: outerH})
	p.LineTo(geometry.Point{X: 0, Y: outerH - tab})
	p.LineTo(geometry.Point{X: ext, Y: outerH - tab})
	p.LineTo(geometry.Point{X: ext, Y: tab})
	p.LineTo(geometry.Point{X: 0, Y: tab})
	p.Close()

	inset := casingScoreRatio * t
	panel := &outline.Panel{
		Name:    casingName(w.Panel, "window"),
		Base:    geometry.Dim{Width: outerW, Height: outerH},
		Outline: p,
		Cutouts: []outline.Path{outline.Rect(innerX, innerY, w.Width, w.Height)},
		Scores: []outline.Path{
			outline.Rect(ext+inset, inset, frameW-2*inset, outerH-2*inset),
			outline.Rect(innerX-inset, innerY-inset, w.Width+2*inset, w.Height+2*inset),
		},
	}
	return panel
}

func archedWindowCasing(w Window, t float64) *outline.Panel {
	ext := casingExtensionRatio * t
	outerW := w.Width + 2*t + 2*ext
	outerH := w.Height + 2*t
	innerX := ext + t
	innerY := t
	return &outline.Panel{
		Name:    casingName(w.Panel, "window"),
		Base:    geometry.Dim{Width: outerW, Height: outerH},
		Outline: archedPath(0, 0, outerW, outerH),
		Cutouts: []outline.Path{archedPath(innerX, innerY, w.Width, w.Height)},
	}
}

func circularWindowCasing(w Window, t float64) *outline.Panel {
	innerR := min(w.Width, w.Height) / 2
	outerR := innerR + t
	c := outerR
	return &outline.Panel{
		Name:    casingName(w.Panel, "window"),
		Base:    geometry.Dim{Width: 2 * outerR, Height: 2 * outerR},
		Outline: outline.Circle(c, c, outerR),
		Cutouts: []outline.Path{outline.Circle(c, c, innerR)},
	}
}

// DoorCasing builds the loose U-frame glued behind a door opening: a top
// bar with tab extensions and two legs running to the open bottom. Arched
// doors get an arch-following frame instead.
func DoorCasing(d Door, thickness float64) *outline.Panel {
	if d.Type == DoorArched {
		return archedDoorCasing(d, thickness)
	}
	return rectangularDoorCasing(d, thickness)
}

func rectangularDoorCasing(d Door, t float64) *outline.Panel {
	ext := casingExtensionRatio * t
	topBar := casingTabRatio * t
	frameW := d.Width + 2*t
	outerW := frameW + 2*ext
	outerH := d.Height + topBar
	innerX := ext + t

	// One closed path: the opening at the bottom joins the outer and
	// inner boundaries into a single U.
	var p outline.Path
	p.MoveTo(geometry.Point{X: ext, Y: outerH})
	p.LineTo(geometry.Point{X: ext, Y: topBar})
	p.LineTo(geometry.Point{X: 0, Y: topBar})
	p.LineTo(geometry.Point{X: 0, Y: 0})
	p.LineTo(geometry.Point{X: outerW, Y: 0})
	p.LineTo(geometry.Point{X: outerW, Y: topBar})
	p.LineTo(geometry.Point{X: outerW - ext, Y: topBar})
	p.LineTo(geometry.Point{X: outerW - ext, Y: outerH})
	p.LineTo(geometry.Point{X: innerX + d.Width, Y: outerH})
	p.LineTo(geometry.Point{X: innerX + d.Width, Y: topBar})
	p.LineTo(geometry.Point{X: innerX, Y: topBar})
	p.LineTo(geometry.Point{X: innerX, Y: outerH})
	p.Close()

	inset := ext / 2
	var scoreOuter outline.Path
	scoreOuter.MoveTo(geometry.Point{X: ext + inset, Y: outerH})
	scoreOuter.LineTo(geometry.Point{X: ext + inset, Y: inset})
	scoreOuter.LineTo(geometry.Point{X: outerW - ext - inset, Y: inset})
	scoreOuter.LineTo(geometry.Point{X: outerW - ext - inset, Y: outerH})
	var scoreInner outline.Path
	scoreInner.MoveTo(geometry.Point{X: innerX - inset, Y: outerH})
	scoreInner.LineTo(geometry.Point{X: innerX - inset, Y: topBar - inset})
	scoreInner.LineTo(geometry.Point{X: innerX + d.Width + inset, Y: topBar - inset})
	scoreInner.LineTo(geometry.Point{X: innerX + d.Width + inset, Y: outerH})

	return &outline.Panel{
		Name:    casingName(d.Panel, "door"),
		Base:    geometry.Dim{Width: outerW, Height: outerH},
		Outline: p,
		Scores:  []outline.Path{scoreOuter, scoreInner},
	}
}

func archedDoorCasing(d Door, t float64) *outline.Panel {
	ext := casingExtensionRatio * t
	outerW := d.Width + 2*t + 2*ext
	outerH := d.Height + t
	innerX := ext + t
	innerY := t
	outerArch := 0.3 * outerH
	innerArch := innerY + 0.3*d.Height

	var p outline.Path
	p.MoveTo(geometry.Point{X: 0, Y: outerH})
	p.LineTo(geometry.Point{X: 0, Y: outerArch})
	p.QuadTo(geometry.Point{X: outerW / 2, Y: 0}, geometry.Point{X: outerW, Y: outerArch})
	p.LineTo(geometry.Point{X: outerW, Y: outerH})
	p.LineTo(geometry.Point{X: innerX + d.Width, Y: outerH})
	p.LineTo(geometry.Point{X: innerX + d.Width, Y: innerArch})
	p.QuadTo(geometry.Point{X: innerX + d.Width/2, Y: innerY}, geometry.Point{X: innerX, Y: innerArch})
	p.LineTo(geometry.Point{X: innerX, Y: outerH})
	p.Close()

	return &outline.Panel{
		Name:    casingName(d.Panel, "door"),
		Base:    geometry.Dim{Width: outerW, Height: outerH},
		Outline: p,
	}
}

// ChimneyCasing builds the collar ring that slides over the chimney body
// where it meets the roof. The inner cutout projects the footprint depth
// onto the slope, so the collar sits flush on the pitched surface.
func ChimneyCasing(c Chimney, gableAngleDeg, t float64) *outline.Panel {
	projected := c.Depth / math.Cos(gableAngleDeg*math.Pi/180)
	outerW := c.Width + 2.3*t
	outerH := projected + 3*t
	innerW := c.Width + 0.3*t
	innerH := projected + t
	return &outline.Panel{
		Name:    string(c.Panel) + "_chimney_casing",
		Base:    geometry.Dim{Width: outerW, Height: outerH},
		Outline: outline.Rect(0, 0, outerW, outerH),
		Cutouts: []outline.Path{
			outline.Rect((outerW-innerW)/2, (outerH-innerH)/2, innerW, innerH),
		},
	}
}

func casingName(panel geometry.PanelName, kind string) string {
	return fmt.Sprintf("%s_%s_casing", panel, kind)
}
