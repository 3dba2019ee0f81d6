package geometry

// PanelName identifies one of the fixed house box panels.
type PanelName string

// The seven structural panels of a basic house box. Chimney walls and
// casing pieces are supplied by the component catalog and carry generated
// names outside this enumeration.
const (
	PanelFloor          PanelName = "floor"
	PanelSideWallLeft   PanelName = "side_wall_left"
	PanelSideWallRight  PanelName = "side_wall_right"
	PanelGableWallFront PanelName = "gable_wall_front"
	PanelGableWallBack  PanelName = "gable_wall_back"
	PanelRoofLeft       PanelName = "roof_panel_left"
	PanelRoofRight      PanelName = "roof_panel_right"
)

// StructuralPanels lists the panels of a basic house in render order.
func StructuralPanels() []PanelName {
	return []PanelName{
		PanelFloor,
		PanelSideWallLeft, PanelSideWallRight,
		PanelGableWallFront, PanelGableWallBack,
		PanelRoofLeft, PanelRoofRight,
	}
}

// Dim is a width×height bounding box.
type Dim struct {
	Width, Height float64
}

// Area returns the bounding area.
func (d Dim) Area() float64 { return d.Width * d.Height }

// ShapeKind tags the two panel outline shapes that exist.
type ShapeKind int

const (
	// Rectangle is a plain four-edge panel.
	Rectangle ShapeKind = iota
	// HouseProfile is a rectangle plus a triangular cap: five boundary
	// edges, the two top ones being the roof slopes meeting at the ridge.
	HouseProfile
)

// Shape is the tagged outline variant of a panel. CapHeight is meaningful
// only for HouseProfile.
type Shape struct {
	Kind      ShapeKind
	CapHeight float64
}

// PanelDimensions returns the bounding box of every structural panel.
// Gable walls report their full house-profile bounds (cap included).
func (d *Derived) PanelDimensions() map[PanelName]Dim {
	p := d.Params
	return map[PanelName]Dim{
		PanelFloor:          {p.Length, p.Width},
		PanelSideWallLeft:   {p.Length, p.Height},
		PanelSideWallRight:  {p.Length, p.Height},
		PanelGableWallFront: {p.Width, d.TotalGableHeight},
		PanelGableWallBack:  {p.Width, d.TotalGableHeight},
		PanelRoofLeft:       {d.RoofPanelLength, d.RoofPanelLeftWidth},
		PanelRoofRight:      {d.RoofPanelLength, d.RoofPanelRightWidth},
	}
}

// PanelShape returns the outline variant for a structural panel.
func (d *Derived) PanelShape(name PanelName) Shape {
	switch name {
	case PanelGableWallFront, PanelGableWallBack:
		return Shape{Kind: HouseProfile, CapHeight: d.GablePeakHeight}
	default:
		return Shape{Kind: Rectangle}
	}
}

// GableProfilePoints returns the five corners of the house-shaped gable
// outline, clockwise from the top-left in y-down coordinates: the peak sits
// at the smallest y.
//
//	4----peak----1
//	|            |     (wall section below the cap)
//	3------------2
//
// Index order: bottom-left, bottom-right, wall top-right, peak, wall
// top-left. The two segments meeting at the peak are the roof slopes.
func (d *Derived) GableProfilePoints() []Point {
	w := d.Params.Width
	total := d.TotalGableHeight
	capH := d.GablePeakHeight
	return []Point{
		{0, total}, // bottom-left
		{w, total}, // bottom-right
		{w, capH},  // wall top-right
		{w / 2, 0}, // ridge peak
		{0, capH},  // wall top-left
	}
}
