package outline

import (
	"github.com/matzehuels/housebox/pkg/errors"
	"github.com/matzehuels/housebox/pkg/geometry"
	"github.com/matzehuels/housebox/pkg/joints"
)

// Panel is one cuttable piece: a closed boundary outline plus interior
// cutouts and score lines, all in panel-local coordinates with the base
// rectangle's top-left at the origin. Male tabs protrude beyond the base
// rectangle, so the outline bounds can exceed Base and dip below zero.
type Panel struct {
	Name  string
	Base  geometry.Dim
	Shape geometry.Shape

	Outline Path   // closed boundary, jointed
	Cutouts []Path // cut-through interior paths (slots, windows, doors)
	Scores  []Path // etched guide lines, not cut through
}

// Bounds returns the bounding box of the outline including tab protrusion.
func (p *Panel) Bounds() (min, max geometry.Point) {
	return p.Outline.Bounds()
}

// BoundingDim returns the outline's bounding box as a width×height pair.
// Sheet placement works on this, not on Base.
func (p *Panel) BoundingDim() geometry.Dim {
	min, max := p.Bounds()
	return geometry.Dim{Width: max.X - min.X, Height: max.Y - min.Y}
}

// CutLength is the total length the laser travels cutting this panel:
// the boundary plus every interior cutout. Scores are engraved at a
// different power setting and are not included.
func (p *Panel) CutLength() float64 {
	total := p.Outline.Length()
	for _, c := range p.Cutouts {
		total += c.Length()
	}
	return total
}

// ScoreLength is the total length of the panel's score lines.
func (p *Panel) ScoreLength() float64 {
	var total float64
	for _, s := range p.Scores {
		total += s.Length()
	}
	return total
}

// AddCutout attaches an interior cut path after checking that its bounding
// box lies within the panel's base rectangle. Gable panels are checked
// against their full house-profile bounds, which admits the corners beside
// the cap; the component positioner keeps cutouts out of that region.
func (p *Panel) AddCutout(c Path) error {
	if err := p.checkContained(c); err != nil {
		return err
	}
	p.Cutouts = append(p.Cutouts, c)
	return nil
}

// AddScore attaches a score line path. Scores obey the same containment
// rule as cutouts.
func (p *Panel) AddScore(s Path) error {
	if err := p.checkContained(s); err != nil {
		return err
	}
	p.Scores = append(p.Scores, s)
	return nil
}

func (p *Panel) checkContained(c Path) error {
	min, max := c.Bounds()
	if min.X < 0 || min.Y < 0 || max.X > p.Base.Width || max.Y > p.Base.Height {
		return errors.New(errors.ErrCodeCutoutOutOfBounds,
			"cutout [%.2f,%.2f]×[%.2f,%.2f] exceeds panel %s (%.2f×%.2f)",
			min.X, max.X, min.Y, max.Y, p.Name, p.Base.Width, p.Base.Height)
	}
	return nil
}

// Builder renders the structural panels of one house from its derived
// geometry, the polarity table, and the joint planner.
type Builder struct {
	geom    *geometry.Derived
	table   joints.Table
	planner joints.Planner
}

// NewBuilder wires a builder for one derived geometry snapshot.
func NewBuilder(d *geometry.Derived) *Builder {
	return &Builder{
		geom:    d,
		table:   joints.Default(),
		planner: joints.NewPlanner(d.Params),
	}
}

// Structural builds all seven structural panels in render order.
func (b *Builder) Structural() ([]*Panel, error) {
	var panels []*Panel
	for _, name := range geometry.StructuralPanels() {
		p, err := b.Build(name)
		if err != nil {
			return nil, err
		}
		panels = append(panels, p)
	}
	return panels, nil
}

// Build renders one structural panel's jointed outline.
func (b *Builder) Build(name geometry.PanelName) (*Panel, error) {
	switch name {
	case geometry.PanelGableWallFront, geometry.PanelGableWallBack:
		return b.buildGable(name)
	case geometry.PanelRoofLeft, geometry.PanelRoofRight:
		return b.buildRoof(name)
	case geometry.PanelFloor, geometry.PanelSideWallLeft, geometry.PanelSideWallRight:
		return b.buildRect(name)
	default:
		return nil, errors.New(errors.ErrCodeInternal, "unknown structural panel %q", name)
	}
}

// edgeRun is one straight boundary edge awaiting its joint plan.
type edgeRun struct {
	side   joints.EdgeSide
	a, b   geometry.Point
	single bool // plan exactly one centered tab
}

// buildRect renders the floor and the two side walls. The boundary is
// traversed counter-clockwise on screen starting at the bottom-left corner,
// so the outward normal of each edge points away from the panel.
func (b *Builder) buildRect(name geometry.PanelName) (*Panel, error) {
	dim := b.geom.PanelDimensions()[name]
	w, h := dim.Width, dim.Height
	runs := []edgeRun{
		{joints.EdgeBottom, geometry.Point{X: 0, Y: h}, geometry.Point{X: w, Y: h}, false},
		{joints.EdgeRight, geometry.Point{X: w, Y: h}, geometry.Point{X: w, Y: 0}, false},
		{joints.EdgeTop, geometry.Point{X: w, Y: 0}, geometry.Point{X: 0, Y: 0}, false},
		{joints.EdgeLeft, geometry.Point{X: 0, Y: 0}, geometry.Point{X: 0, Y: h}, false},
	}
	return b.assemble(name, dim, runs)
}

// buildGable renders a gable wall: female on the bottom and the two wall
// sides, a single male tab on each roof slope. The slope tabs pass through
// the internal slots of the roof panels.
func (b *Builder) buildGable(name geometry.PanelName) (*Panel, error) {
	dim := b.geom.PanelDimensions()[name]
	pts := b.geom.GableProfilePoints()
	runs := []edgeRun{
		{joints.EdgeBottom, pts[0], pts[1], false},
		{joints.EdgeRight, pts[1], pts[2], false},
		{joints.EdgeRoofRight, pts[2], pts[3], true},
		{joints.EdgeRoofLeft, pts[3], pts[4], true},
		{joints.EdgeLeft, pts[4], pts[0], false},
	}
	return b.assemble(name, dim, runs)
}

// buildRoof renders a roof panel: the ridge edge joints against the other
// roof panel, and two internal slots receive the gable slope tabs. The left
// panel's slots sit one thickness further from the ridge because its ridge
// edge overlaps the right panel's material.
func (b *Builder) buildRoof(name geometry.PanelName) (*Panel, error) {
	dim := b.geom.PanelDimensions()[name]
	w, h := dim.Width, dim.Height
	runs := []edgeRun{
		{joints.EdgeOuter, geometry.Point{X: 0, Y: h}, geometry.Point{X: w, Y: h}, false},
		{joints.EdgeRight, geometry.Point{X: w, Y: h}, geometry.Point{X: w, Y: 0}, false},
		{joints.EdgeGable, geometry.Point{X: w, Y: 0}, geometry.Point{X: 0, Y: 0}, false},
		{joints.EdgeLeft, geometry.Point{X: 0, Y: 0}, geometry.Point{X: 0, Y: h}, false},
	}
	panel, err := b.assemble(name, dim, runs)
	if err != nil {
		return nil, err
	}

	t := b.geom.Params.Thickness
	slotLen, slotWidth := b.planner.CutoutDims()
	centerY := b.geom.BaseRoofWidth / 2
	if name == geometry.PanelRoofLeft {
		centerY += t
	}
	// The gable walls sit 3t in from each panel end, so the slot centers
	// land on the wall midplane at 2.5t.
	for _, centerX := range []float64{2.5 * t, w - 2.5*t} {
		slot := Rect(centerX-slotWidth/2, centerY-slotLen/2, slotWidth, slotLen)
		if err := panel.AddCutout(slot); err != nil {
			return nil, err
		}
	}
	return panel, nil
}

func (b *Builder) assemble(name geometry.PanelName, dim geometry.Dim, runs []edgeRun) (*Panel, error) {
	panel := &Panel{
		Name:  string(name),
		Base:  dim,
		Shape: b.geom.PanelShape(name),
	}
	panel.Outline.MoveTo(runs[0].a)
	for _, run := range runs {
		pol, ok := b.table.PolarityOf(name, run.side)
		if !ok {
			return nil, errors.New(errors.ErrCodeInternal,
				"no polarity for %s/%s", name, run.side)
		}
		var plan joints.Plan
		var err error
		if run.single {
			plan, err = b.planner.PlanSingle(run.a.Dist(run.b), pol)
		} else {
			plan, err = b.planner.Plan(run.a.Dist(run.b), pol)
		}
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err,
				"planning %s edge of %s", run.side, name)
		}
		appendJointedEdge(&panel.Outline, run.a, run.b, plan)
	}
	panel.Outline.Close()
	return panel, nil
}

// appendJointedEdge emits the path of one boundary edge from a to b. Male
// tabs step outward across the edge by the plan depth, female slots step
// inward, and a None plan is a single straight segment. The caller must
// traverse the boundary counter-clockwise on screen so that (-uy, ux) of
// the edge direction is the outward normal.
func appendJointedEdge(p *Path, a, b geometry.Point, plan joints.Plan) {
	if plan.Count == 0 {
		p.LineTo(b)
		return
	}
	length := a.Dist(b)
	ux := (b.X - a.X) / length
	uy := (b.Y - a.Y) / length
	nx, ny := -uy, ux
	depth := plan.TabDepth
	if plan.Polarity == joints.Female {
		depth = -depth
	}
	at := func(d float64, offset bool) geometry.Point {
		pt := geometry.Point{X: a.X + ux*d, Y: a.Y + uy*d}
		if offset {
			pt.X += nx * depth
			pt.Y += ny * depth
		}
		return pt
	}
	pos := 0.0
	for _, span := range plan.Positions {
		if span.Start > pos {
			p.LineTo(at(span.Start, false))
		}
		p.LineTo(at(span.Start, true))
		p.LineTo(at(span.End, true))
		p.LineTo(at(span.End, false))
		pos = span.End
	}
	if pos < length {
		p.LineTo(b)
	}
}
