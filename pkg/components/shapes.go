package components

import (
	"github.com/matzehuels/housebox/pkg/geometry"
	"github.com/matzehuels/housebox/pkg/outline"
)

// mullionWidth is the bar left standing between panes of divided windows.
const mullionWidth = 1.0

// WindowPaths returns the cut paths of a window cutout in panel-local
// coordinates. Divided windows (cross pane, multi pane, double hung)
// return the opening plus mullion bar outlines; composite windows
// (colonial set, palladian, gothic pair) return one path per opening.
func WindowPaths(t WindowType, x, y, w, h float64) []outline.Path {
	switch t {
	case WindowArched:
		return []outline.Path{archedPath(x, y, w, h)}
	case WindowCircular:
		d := min(w, h)
		return []outline.Path{outline.Circle(x+w/2, y+h/2, d/2)}
	case WindowDormer:
		return []outline.Path{dormerPath(x, y, w, h)}
	case WindowCrossPane:
		return crossPanePaths(x, y, w, h)
	case WindowMultiPane:
		return multiPanePaths(x, y, w, h)
	case WindowColonialSet:
		return colonialSetPaths(x, y, w, h)
	case WindowPalladian:
		return palladianPaths(x, y, w, h)
	case WindowGothicPair:
		return gothicPairPaths(x, y, w, h)
	case WindowDoubleHung:
		return doubleHungPaths(x, y, w, h)
	default:
		// rectangular, attic, bay, casement
		return []outline.Path{outline.Rect(x, y, w, h)}
	}
}

// DoorPaths returns the cut paths of a door cutout in panel-local
// coordinates.
func DoorPaths(t DoorType, x, y, w, h float64) []outline.Path {
	switch t {
	case DoorArched:
		return []outline.Path{archedPath(x, y, w, h)}
	case DoorDouble:
		half := w/2 - mullionWidth/2
		return []outline.Path{
			outline.Rect(x, y, half, h),
			outline.Rect(x+w/2+mullionWidth/2, y, half, h),
		}
	case DoorDutch:
		half := h/2 - mullionWidth/2
		return []outline.Path{
			outline.Rect(x, y, w, half),
			outline.Rect(x, y+h/2+mullionWidth/2, w, half),
		}
	default:
		return []outline.Path{outline.Rect(x, y, w, h)}
	}
}

// archedPath is a rectangle whose top 30% is a quadratic arch. The control
// point sits on the bounding box top, so the arch apex lands 0.15h short
// of it.
func archedPath(x, y, w, h float64) outline.Path {
	archTop := y + 0.3*h
	var p outline.Path
	p.MoveTo(geometry.Point{X: x, Y: y + h})
	p.LineTo(geometry.Point{X: x + w, Y: y + h})
	p.LineTo(geometry.Point{X: x + w, Y: archTop})
	p.QuadTo(geometry.Point{X: x + w/2, Y: y}, geometry.Point{X: x, Y: archTop})
	p.Close()
	return p
}

// gothicPath is a rectangle whose top 30% is a pointed arch: two quads
// meeting at the apex.
func gothicPath(x, y, w, h float64) outline.Path {
	archTop := y + 0.3*h
	var p outline.Path
	p.MoveTo(geometry.Point{X: x, Y: y + h})
	p.LineTo(geometry.Point{X: x + w, Y: y + h})
	p.LineTo(geometry.Point{X: x + w, Y: archTop})
	p.QuadTo(geometry.Point{X: x + 0.75*w, Y: y}, geometry.Point{X: x + w/2, Y: y})
	p.QuadTo(geometry.Point{X: x + 0.25*w, Y: y}, geometry.Point{X: x, Y: archTop})
	p.Close()
	return p
}

// dormerPath is a rectangle whose top 20% is a straight-sided peak.
func dormerPath(x, y, w, h float64) outline.Path {
	peakBase := y + 0.2*h
	var p outline.Path
	p.MoveTo(geometry.Point{X: x, Y: y + h})
	p.LineTo(geometry.Point{X: x + w, Y: y + h})
	p.LineTo(geometry.Point{X: x + w, Y: peakBase})
	p.LineTo(geometry.Point{X: x + w/2, Y: y})
	p.LineTo(geometry.Point{X: x, Y: peakBase})
	p.Close()
	return p
}

func crossPanePaths(x, y, w, h float64) []outline.Path {
	cx := x + w/2
	cy := y + h/2
	return []outline.Path{
		outline.Rect(x, y, w, h),
		outline.Rect(cx-mullionWidth/2, y, mullionWidth, h),
		outline.Rect(x, cy-mullionWidth/2, w, mullionWidth),
	}
}

func multiPanePaths(x, y, w, h float64) []outline.Path {
	paths := []outline.Path{outline.Rect(x, y, w, h)}
	paneW := w / 3
	for i := 1; i < 3; i++ {
		paths = append(paths, outline.Rect(x+float64(i)*paneW-mullionWidth/2, y, mullionWidth, h))
	}
	paths = append(paths, outline.Rect(x, y+h/2-mullionWidth/2, w, mullionWidth))
	return paths
}

func colonialSetPaths(x, y, w, h float64) []outline.Path {
	slot := w / 3
	spacing := slot * 0.1
	var paths []outline.Path
	for i := 0; i < 3; i++ {
		paths = append(paths, outline.Rect(x+float64(i)*slot+spacing/2, y, slot-spacing, h))
	}
	return paths
}

func palladianPaths(x, y, w, h float64) []outline.Path {
	side := w * 0.2
	central := w * 0.6
	return []outline.Path{
		outline.Rect(x, y, side, h),
		archedPath(x+side, y, central, h),
		outline.Rect(x+side+central, y, side, h),
	}
}

func gothicPairPaths(x, y, w, h float64) []outline.Path {
	const gap = 3.0
	winW := (w - gap) / 2
	return []outline.Path{
		gothicPath(x, y, winW, h),
		gothicPath(x+winW+gap, y, winW, h),
	}
}

func doubleHungPaths(x, y, w, h float64) []outline.Path {
	return []outline.Path{
		outline.Rect(x, y, w, h),
		outline.Rect(x, y+h/2-mullionWidth/2, w, mullionWidth),
	}
}
