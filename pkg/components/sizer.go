package components

import (
	"math"

	"github.com/matzehuels/housebox/pkg/geometry"
)

// Architectural proportion constants.
const (
	goldenRatio       = 1.618
	doorHeightRatio   = 0.8 // door height as fraction of usable wall height
	doorWidthRatio    = 0.4 // door width relative to door height
	windowHeightRatio = 0.3 // window height as fraction of wall height
	windowWidthRatio  = 1.2 // window width relative to window height
	atticWindowScale  = 0.6
)

// Sizer derives aesthetically proportioned component dimensions from the
// house geometry.
type Sizer struct {
	geom *geometry.Derived
}

// NewSizer wires a sizer for one derived geometry snapshot.
func NewSizer(d *geometry.Derived) Sizer {
	return Sizer{geom: d}
}

func (s Sizer) panelDim(panel geometry.PanelName) (geometry.Dim, bool) {
	d, ok := s.geom.PanelDimensions()[panel]
	return d, ok
}

// usableHeight is the wall height components can occupy: gable walls only
// expose their rectangular section below the cap.
func (s Sizer) usableHeight(panel geometry.PanelName) float64 {
	switch panel {
	case geometry.PanelGableWallFront, geometry.PanelGableWallBack:
		return s.geom.Params.Height
	default:
		dim, _ := s.panelDim(panel)
		return dim.Height
	}
}

// DoorSize computes a proportioned door for the panel: 80% of the usable
// wall height, width from the door ratio, both clamped to the panel.
func (s Sizer) DoorSize(panel geometry.PanelName) (w, h float64) {
	dim, ok := s.panelDim(panel)
	if !ok {
		return minDoorWidth, minDoorHeight
	}
	usable := s.usableHeight(panel)

	h = usable * doorHeightRatio
	h = math.Max(minDoorHeight, math.Min(h, usable-10))
	w = h * doorWidthRatio
	w = math.Max(minDoorWidth, math.Min(w, dim.Width-20))
	return w, h
}

// WindowSize computes a proportioned window for the panel and type. Attic
// windows scale off the gable cap instead of the wall; circular windows
// are square; bay windows widen; arched windows gain arch headroom.
func (s Sizer) WindowSize(panel geometry.PanelName, t WindowType) (w, h float64) {
	dim, ok := s.panelDim(panel)
	if !ok {
		return 12, 10
	}

	if t == WindowAttic {
		h = s.geom.GablePeakHeight * 0.4 * atticWindowScale
		w = h * goldenRatio
	} else {
		usable := s.usableHeight(panel)
		h = usable * windowHeightRatio
		w = h * windowWidthRatio
	}

	switch t {
	case WindowCircular:
		w = h
	case WindowBay:
		w *= 1.5
	case WindowArched:
		h *= 1.2
	}

	h = math.Max(minWindowSize, math.Min(h, dim.Height*0.6))
	w = math.Max(minWindowSize, math.Min(w, dim.Width*0.8))
	return w, h
}

// AssemblySize computes the footprint of the composite window types, which
// span several openings and need more wall than a single window.
func (s Sizer) AssemblySize(panel geometry.PanelName, t WindowType) (w, h float64) {
	dim, ok := s.panelDim(panel)
	if !ok {
		return 12, 10
	}
	switch t {
	case WindowColonialSet:
		w = math.Min(dim.Width*0.7, 60)
		h = s.usableHeight(panel) * 0.35
	case WindowPalladian:
		w = math.Min(dim.Width*0.6, 45)
		h = s.usableHeight(panel) * 0.5
	case WindowGothicPair:
		w = math.Min(dim.Width*0.5, 35)
		h = s.usableHeight(panel) * 0.45
	case WindowCrossPane:
		w = math.Min(dim.Width*0.35, 20)
		h = math.Min(s.usableHeight(panel)*0.35, 20)
	case WindowMultiPane:
		w = math.Min(dim.Width*0.45, 30)
		h = math.Min(s.usableHeight(panel)*0.4, 25)
	default:
		// double hung, casement
		w = math.Min(dim.Width*0.4, 25)
		h = s.usableHeight(panel) * 0.35
	}
	w = math.Max(w, 10)
	h = math.Max(h, 8)
	return w, h
}

// PatternScale scales decorative patterns with the panel area; 1.0 for a
// 100×100 panel, clamped to [0.5, 3].
func (s Sizer) PatternScale(panel geometry.PanelName) float64 {
	dim, ok := s.panelDim(panel)
	if !ok {
		return 1
	}
	scale := math.Sqrt(dim.Area() / 10000)
	return math.Max(0.5, math.Min(scale, 3))
}

// assemblyTypes are the window types sized as multi-opening assemblies.
func isAssembly(t WindowType) bool {
	switch t {
	case WindowColonialSet, WindowPalladian, WindowGothicPair,
		WindowDoubleHung, WindowCasement, WindowCrossPane, WindowMultiPane:
		return true
	}
	return false
}
