// Package layout packs finished panels onto bounded material sheets.
//
// The sheet width is a hard constraint: a panel wider than the sheet can
// never be cut and fails the run. Height is soft; the layout grows
// downward and reports how many sheets the total height spans.
package layout

import (
	"math"
	"sort"

	"github.com/matzehuels/housebox/pkg/errors"
	"github.com/matzehuels/housebox/pkg/geometry"
	"github.com/matzehuels/housebox/pkg/outline"
)

// Default material sheet, 18×12 inches in mm, landscape.
const (
	DefaultSheetWidth  = 457.2
	DefaultSheetHeight = 304.8
	minSpacing         = 2.0
)

// Placement assigns one panel a spot on a sheet. X and Y locate the
// top-left of the panel's bounding box in sheet coordinates, with Y
// relative to the top of the assigned sheet. Rotation is applied around
// the bounding box center.
type Placement struct {
	Panel    *outline.Panel
	Sheet    int
	X, Y     float64
	Rotation float64
	Width    float64 // bounding box after rotation
	Height   float64
}

// Layout is the immutable result of one packing run.
type Layout struct {
	SheetWidth  float64
	SheetHeight float64
	Spacing     float64
	Placements  []Placement
	Sheets      int
	Width       float64 // aggregate bounds over all sheets
	Height      float64
}

// Options configure a packing run. Zero values take the defaults.
type Options struct {
	SheetWidth  float64
	SheetHeight float64
	Spacing     float64
	Rotated     bool    // roof-line-aligned arrangement
	GableAngle  float64 // degrees, used by the rotated arrangement
}

func (o Options) withDefaults() Options {
	if o.SheetWidth <= 0 {
		o.SheetWidth = DefaultSheetWidth
	}
	if o.SheetHeight <= 0 {
		o.SheetHeight = DefaultSheetHeight
	}
	o.Spacing = math.Max(o.Spacing, minSpacing)
	return o
}

type rect struct {
	x, y, w, h float64
}

// Pack places every panel and returns the finished layout.
func Pack(panels []*outline.Panel, opts Options) (*Layout, error) {
	opts = opts.withDefaults()
	if opts.Rotated {
		return packRotated(panels, opts)
	}
	return packDefault(panels, opts)
}

func packDefault(panels []*outline.Panel, opts Options) (*Layout, error) {
	sorted := append([]*outline.Panel(nil), panels...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].BoundingDim(), sorted[j].BoundingDim()
		if a.Height != b.Height {
			return a.Height > b.Height
		}
		return a.Area() > b.Area()
	})

	l := &Layout{SheetWidth: opts.SheetWidth, SheetHeight: opts.SheetHeight, Spacing: opts.Spacing}
	var placed []rect
	for _, p := range sorted {
		dim := p.BoundingDim()
		if dim.Width > opts.SheetWidth {
			return nil, errors.New(errors.ErrCodePanelTooWide,
				"panel %s needs %.1fmm, sheet is %.1fmm wide", p.Name, dim.Width, opts.SheetWidth)
		}
		x, y := bestPosition(dim.Width, dim.Height, placed, opts.Spacing, opts.SheetWidth)
		placed = append(placed, rect{x, y, dim.Width, dim.Height})
		l.Placements = append(l.Placements, Placement{
			Panel: p, X: x, Y: y, Width: dim.Width, Height: dim.Height,
		})
	}
	l.finish()
	return l, nil
}

// bestPosition scans candidate spots derived from the placed rectangles
// and picks the lowest, then leftmost, valid one. A spot below the whole
// layout at x=0 is always valid, so the scan cannot fail.
func bestPosition(w, h float64, placed []rect, spacing, sheetWidth float64) (float64, float64) {
	if len(placed) == 0 {
		return 0, 0
	}
	candidates := []rect{{x: 0, y: 0}}
	maxY := 0.0
	for _, r := range placed {
		candidates = append(candidates,
			rect{x: r.x + r.w + spacing, y: r.y},
			rect{x: r.x, y: r.y + r.h + spacing},
		)
		maxY = math.Max(maxY, r.y+r.h)
	}
	candidates = append(candidates, rect{x: 0, y: maxY + spacing})

	bestX, bestY := 0.0, math.Inf(1)
	for _, c := range candidates {
		if c.x+w > sheetWidth {
			continue
		}
		if overlapsAny(rect{c.x, c.y, w, h}, placed, spacing) {
			continue
		}
		if c.y < bestY || (c.y == bestY && c.x < bestX) {
			bestX, bestY = c.x, c.y
		}
	}
	return bestX, bestY
}

func overlapsAny(r rect, placed []rect, spacing float64) bool {
	for _, p := range placed {
		if r.x < p.x+p.w+spacing && r.x+r.w+spacing > p.x &&
			r.y < p.y+p.h+spacing && r.y+r.h+spacing > p.y {
			return true
		}
	}
	return false
}

// packRotated lays the structural panels out in the roof-line-aligned
// arrangement: the front gable upside down at the top with the roof
// panels tilted against its slopes, the floor and side walls turned
// sideways in the middle row, the back gable upright below. Panels the
// arrangement does not know (casings, chimney bodies) are packed
// underneath with the default scan.
func packRotated(panels []*outline.Panel, opts Options) (*Layout, error) {
	byName := make(map[geometry.PanelName]*outline.Panel, len(panels))
	var extra []*outline.Panel
	for _, p := range panels {
		name := geometry.PanelName(p.Name)
		switch name {
		case geometry.PanelFloor, geometry.PanelSideWallLeft, geometry.PanelSideWallRight,
			geometry.PanelGableWallFront, geometry.PanelGableWallBack,
			geometry.PanelRoofLeft, geometry.PanelRoofRight:
			byName[name] = p
		default:
			extra = append(extra, p)
		}
	}

	s := opts.Spacing
	roofAngle := 90 - opts.GableAngle
	type spot struct {
		name     geometry.PanelName
		x, y     float64
		rotation float64
	}
	var spots []spot

	gf, ok := byName[geometry.PanelGableWallFront]
	if !ok {
		// Without the structural set there is nothing to align against.
		return packDefault(panels, opts)
	}
	gfDim := gf.BoundingDim()
	spots = append(spots, spot{geometry.PanelGableWallFront, s, s, 180})

	if roof := byName[geometry.PanelRoofLeft]; roof != nil {
		dim := roof.BoundingDim()
		bw, _ := geometry.RotatedBounds(dim.Width, dim.Height, roofAngle)
		spots = append(spots, spot{geometry.PanelRoofLeft, s - bw - s, 2 * s, roofAngle})
	}
	if roof := byName[geometry.PanelRoofRight]; roof != nil {
		spots = append(spots, spot{geometry.PanelRoofRight, s + gfDim.Width + s, 2 * s, -roofAngle})
	}

	floorY := s + gfDim.Height + 3*s
	var floorRot geometry.Dim
	if floor := byName[geometry.PanelFloor]; floor != nil {
		dim := floor.BoundingDim()
		floorRot = geometry.Dim{Width: dim.Height, Height: dim.Width}
		spots = append(spots, spot{geometry.PanelFloor, s, floorY, -90})
	}
	if wall := byName[geometry.PanelSideWallLeft]; wall != nil {
		dim := wall.BoundingDim()
		spots = append(spots, spot{
			geometry.PanelSideWallLeft,
			s - dim.Height - 2*s,
			floorY + floorRot.Height - dim.Width,
			90,
		})
	}
	if wall := byName[geometry.PanelSideWallRight]; wall != nil {
		dim := wall.BoundingDim()
		spots = append(spots, spot{
			geometry.PanelSideWallRight,
			s + floorRot.Width + 2*s,
			floorY + floorRot.Height - dim.Width,
			-90,
		})
	}
	if gb := byName[geometry.PanelGableWallBack]; gb != nil {
		dim := gb.BoundingDim()
		spots = append(spots, spot{
			geometry.PanelGableWallBack,
			s + (floorRot.Width-dim.Width)/2,
			floorY + floorRot.Height + 2*s,
			0,
		})
	}

	// Resolve rotated bounding boxes, then shift the arrangement so it
	// starts at the origin.
	l := &Layout{SheetWidth: opts.SheetWidth, SheetHeight: opts.SheetHeight, Spacing: opts.Spacing}
	minX, minY := math.Inf(1), math.Inf(1)
	var placed []rect
	for _, sp := range spots {
		p := byName[sp.name]
		dim := p.BoundingDim()
		bw, bh := geometry.RotatedBounds(dim.Width, dim.Height, sp.rotation)
		if bw > opts.SheetWidth {
			return nil, errors.New(errors.ErrCodePanelTooWide,
				"panel %s needs %.1fmm rotated, sheet is %.1fmm wide", p.Name, bw, opts.SheetWidth)
		}
		// The rotation pivots on the bounding box center; the box stays
		// centered while its extents change.
		cx := sp.x + dim.Width/2
		cy := sp.y + dim.Height/2
		r := rect{cx - bw/2, cy - bh/2, bw, bh}
		minX = math.Min(minX, r.x)
		minY = math.Min(minY, r.y)
		placed = append(placed, r)
		l.Placements = append(l.Placements, Placement{
			Panel: p, X: r.x, Y: r.y, Rotation: sp.rotation, Width: bw, Height: bh,
		})
	}
	for i := range l.Placements {
		l.Placements[i].X -= minX
		l.Placements[i].Y -= minY
	}
	for i := range placed {
		placed[i].x -= minX
		placed[i].y -= minY
	}

	sort.SliceStable(extra, func(i, j int) bool {
		a, b := extra[i].BoundingDim(), extra[j].BoundingDim()
		if a.Height != b.Height {
			return a.Height > b.Height
		}
		return a.Area() > b.Area()
	})
	for _, p := range extra {
		dim := p.BoundingDim()
		if dim.Width > opts.SheetWidth {
			return nil, errors.New(errors.ErrCodePanelTooWide,
				"panel %s needs %.1fmm, sheet is %.1fmm wide", p.Name, dim.Width, opts.SheetWidth)
		}
		x, y := bestPosition(dim.Width, dim.Height, placed, opts.Spacing, opts.SheetWidth)
		placed = append(placed, rect{x, y, dim.Width, dim.Height})
		l.Placements = append(l.Placements, Placement{
			Panel: p, X: x, Y: y, Width: dim.Width, Height: dim.Height,
		})
	}
	l.finish()
	return l, nil
}

// finish computes aggregate bounds, assigns sheet indices and rebases
// each placement's Y onto its sheet.
func (l *Layout) finish() {
	var maxX, maxY float64
	for _, p := range l.Placements {
		maxX = math.Max(maxX, p.X+p.Width)
		maxY = math.Max(maxY, p.Y+p.Height)
	}
	l.Width = maxX
	l.Height = maxY
	l.Sheets = max(1, int(math.Ceil(maxY/l.SheetHeight)))
	for i := range l.Placements {
		sheet := int(l.Placements[i].Y / l.SheetHeight)
		if sheet >= l.Sheets {
			sheet = l.Sheets - 1
		}
		l.Placements[i].Sheet = sheet
		l.Placements[i].Y -= float64(sheet) * l.SheetHeight
	}
}

// CutLength sums the cut path length over every placed panel.
func (l *Layout) CutLength() float64 {
	var total float64
	for _, p := range l.Placements {
		total += p.Panel.CutLength()
	}
	return total
}
