package components

import (
	"fmt"

	"github.com/matzehuels/housebox/pkg/errors"
	"github.com/matzehuels/housebox/pkg/geometry"
	"github.com/matzehuels/housebox/pkg/outline"
)

// Set is the full component configuration of one house: the decorative
// style plus every placed window, door and chimney. Components enter
// through the Add methods, which validate sizes, margins and overlaps, so
// a Set is always applicable to the structural panels.
type Set struct {
	Style    Style
	Windows  []Window
	Doors    []Door
	Chimneys []Chimney

	geom       *geometry.Derived
	positioner Positioner
	decorator  Decorator
}

// NewSet creates an empty component set for one derived geometry.
func NewSet(d *geometry.Derived, style Style) *Set {
	return &Set{
		Style:      style,
		geom:       d,
		positioner: NewPositioner(d),
		decorator:  NewDecorator(d),
	}
}

// Positioner exposes the placement engine behind this set.
func (s *Set) Positioner() Positioner { return s.positioner }

func (s *Set) placements() []Placement {
	var pls []Placement
	for _, d := range s.Doors {
		pls = append(pls, d.Placement)
	}
	for _, w := range s.Windows {
		pls = append(pls, w.Placement)
	}
	return pls
}

// AddDoor validates and records one door.
func (s *Set) AddDoor(d Door) error {
	if err := d.validate(); err != nil {
		return err
	}
	if err := s.positioner.ValidatePlacement(d.Placement); err != nil {
		return err
	}
	for _, e := range s.placements() {
		if d.Placement.overlaps(e) {
			return errors.New(errors.ErrCodeInvalidConfig,
				"door %s overlaps existing component at %s", d.Placement, e)
		}
	}
	s.Doors = append(s.Doors, d)
	return nil
}

// AddWindow validates and records one window.
func (s *Set) AddWindow(w Window) error {
	if err := w.validate(); err != nil {
		return err
	}
	if err := s.positioner.ValidatePlacement(w.Placement); err != nil {
		return err
	}
	for _, e := range s.placements() {
		if w.Placement.overlaps(e) {
			return errors.New(errors.ErrCodeInvalidConfig,
				"window %s overlaps existing component at %s", w.Placement, e)
		}
	}
	s.Windows = append(s.Windows, w)
	return nil
}

// AddChimney validates and records one chimney.
func (s *Set) AddChimney(c Chimney) error {
	roofWidth := s.geom.RoofPanelLeftWidth
	if c.Panel == geometry.PanelRoofRight {
		roofWidth = s.geom.RoofPanelRightWidth
	}
	if err := c.validate(s.geom.RoofPanelLength, roofWidth); err != nil {
		return err
	}
	s.Chimneys = append(s.Chimneys, c)
	return nil
}

// AddAuto populates the set the way the presets do: one door on the front
// gable wall, windows on every wall avoiding the door, attic windows in
// the gable caps when they fit, and optionally a chimney on the left roof
// panel.
func (s *Set) AddAuto(winType WindowType, doorType DoorType, withChimney bool) error {
	for _, d := range s.positioner.RecommendDoors(geometry.PanelGableWallFront, doorType) {
		if err := s.AddDoor(d); err != nil {
			return err
		}
	}
	walls := []geometry.PanelName{
		geometry.PanelGableWallFront, geometry.PanelGableWallBack,
		geometry.PanelSideWallLeft, geometry.PanelSideWallRight,
	}
	for _, wall := range walls {
		for _, w := range s.positioner.RecommendWindows(wall, winType, s.placements()) {
			if err := s.AddWindow(w); err != nil {
				return err
			}
		}
	}
	if winType != WindowAttic {
		for _, gable := range []geometry.PanelName{geometry.PanelGableWallFront, geometry.PanelGableWallBack} {
			for _, w := range s.positioner.RecommendWindows(gable, WindowAttic, s.placements()) {
				if err := s.AddWindow(w); err != nil {
					return err
				}
			}
		}
	}
	if withChimney {
		c := Chimney{
			Panel:  geometry.PanelRoofLeft,
			Width:  DefaultChimneyWidth,
			Depth:  DefaultChimneyDepth,
			Height: DefaultChimneyHeight,
		}
		c.X = s.geom.RoofPanelLength*0.7 - c.Width/2
		c.Y = s.geom.RoofPanelLeftWidth * 0.25
		if err := s.AddChimney(c); err != nil {
			return err
		}
	}
	return nil
}

// Apply merges the set into the structural panels: window and door
// cutouts, chimney footprint scores, then the decorative style pattern.
func (s *Set) Apply(panels []*outline.Panel) error {
	byName := make(map[geometry.PanelName]*outline.Panel, len(panels))
	for _, p := range panels {
		byName[geometry.PanelName(p.Name)] = p
	}
	for _, w := range s.Windows {
		panel, ok := byName[w.Panel]
		if !ok {
			continue
		}
		for _, path := range WindowPaths(w.Type, w.X, w.Y, w.Width, w.Height) {
			if err := panel.AddCutout(path); err != nil {
				return errors.Wrap(errors.GetCode(err), err, "window %s", w.Placement)
			}
		}
	}
	for _, d := range s.Doors {
		panel, ok := byName[d.Panel]
		if !ok {
			continue
		}
		for _, path := range DoorPaths(d.Type, d.X, d.Y, d.Width, d.Height) {
			if err := panel.AddCutout(path); err != nil {
				return errors.Wrap(errors.GetCode(err), err, "door %s", d.Placement)
			}
		}
	}
	for _, c := range s.Chimneys {
		panel, ok := byName[c.Panel]
		if !ok {
			continue
		}
		if err := panel.AddScore(c.Footprint(s.geom.Params.GableAngle)); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "chimney footprint on %s", c.Panel)
		}
	}
	for _, p := range panels {
		for _, score := range s.decorator.Scores(s.Style, geometry.PanelName(p.Name)) {
			if err := p.AddScore(score); err != nil {
				return errors.Wrap(errors.GetCode(err), err, "%s pattern on %s", s.Style, p.Name)
			}
		}
	}
	return nil
}

// CasingPanels builds the loose pieces the set needs beyond the
// structural panels: window and door casings and the chimney bodies.
func (s *Set) CasingPanels() []*outline.Panel {
	t := s.geom.Params.Thickness
	var panels []*outline.Panel
	for _, w := range s.Windows {
		if c := WindowCasing(w, t); c != nil {
			panels = append(panels, c)
		}
	}
	for _, d := range s.Doors {
		panels = append(panels, DoorCasing(d, t))
	}
	for _, c := range s.Chimneys {
		panels = append(panels, c.BodyPanels(s.geom.Params.GableAngle)...)
		panels = append(panels, ChimneyCasing(c, s.geom.Params.GableAngle, t))
	}
	// Walls with several windows produce several casings of the same base
	// name; number the duplicates so sheet labels stay unique.
	seen := make(map[string]int, len(panels))
	for _, p := range panels {
		seen[p.Name]++
		if n := seen[p.Name]; n > 1 {
			p.Name = fmt.Sprintf("%s_%d", p.Name, n)
		}
	}
	return panels
}

// Count returns the number of placed components.
func (s *Set) Count() int {
	return len(s.Windows) + len(s.Doors) + len(s.Chimneys)
}
