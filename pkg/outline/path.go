// Package outline builds the cuttable outline of every panel: boundary
// edges with finger joints, internal slot cutouts, and component cutouts.
//
// Paths are sequences of move/line/curve primitives in millimeters, y-down,
// with the origin at the top-left of the owning panel. The serializer turns
// them into SVG path data; nothing in this package knows about markup.
package outline

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/housebox/pkg/geometry"
)

// Op is a path primitive operator.
type Op int

const (
	MoveTo Op = iota
	LineTo
	QuadTo  // quadratic Bézier: P1 control, P2 end
	CubicTo // cubic Bézier: P1, P2 controls, P3 end
	Close
)

// Segment is one path primitive. Unused points are zero.
type Segment struct {
	Op         Op
	P1, P2, P3 geometry.Point
}

// Path is an ordered sequence of primitives forming one or more subpaths.
type Path []Segment

// MoveTo starts a new subpath at p.
func (p *Path) MoveTo(pt geometry.Point) { *p = append(*p, Segment{Op: MoveTo, P1: pt}) }

// LineTo appends a straight segment to pt.
func (p *Path) LineTo(pt geometry.Point) { *p = append(*p, Segment{Op: LineTo, P1: pt}) }

// QuadTo appends a quadratic Bézier with control c ending at pt.
func (p *Path) QuadTo(c, pt geometry.Point) { *p = append(*p, Segment{Op: QuadTo, P1: c, P2: pt}) }

// CubicTo appends a cubic Bézier with controls c1, c2 ending at pt.
func (p *Path) CubicTo(c1, c2, pt geometry.Point) {
	*p = append(*p, Segment{Op: CubicTo, P1: c1, P2: c2, P3: pt})
}

// Close closes the current subpath.
func (p *Path) Close() { *p = append(*p, Segment{Op: Close}) }

// curveSteps is the chord count used to flatten Bézier segments for length
// and bounds computation. Plenty for millimeter-scale cutouts.
const curveSteps = 16

// Length returns the total path length. Lines are exact; curves are
// flattened into chords.
func (p Path) Length() float64 {
	var total float64
	var start, cur geometry.Point
	for _, s := range p {
		switch s.Op {
		case MoveTo:
			start, cur = s.P1, s.P1
		case LineTo:
			total += cur.Dist(s.P1)
			cur = s.P1
		case QuadTo:
			prev := cur
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				pt := quadPoint(cur, s.P1, s.P2, t)
				total += prev.Dist(pt)
				prev = pt
			}
			cur = s.P2
		case CubicTo:
			prev := cur
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				pt := cubicPoint(cur, s.P1, s.P2, s.P3, t)
				total += prev.Dist(pt)
				prev = pt
			}
			cur = s.P3
		case Close:
			total += cur.Dist(start)
			cur = start
		}
	}
	return total
}

// Bounds returns the axis-aligned bounding box of the path. Curve control
// points are included, which over-approximates slightly but is safe for
// containment checks (the true curve lies inside its control hull).
func (p Path) Bounds() (min, max geometry.Point) {
	min = geometry.Point{X: math.Inf(1), Y: math.Inf(1)}
	max = geometry.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	grow := func(pt geometry.Point) {
		min.X = math.Min(min.X, pt.X)
		min.Y = math.Min(min.Y, pt.Y)
		max.X = math.Max(max.X, pt.X)
		max.Y = math.Max(max.Y, pt.Y)
	}
	for _, s := range p {
		switch s.Op {
		case MoveTo, LineTo:
			grow(s.P1)
		case QuadTo:
			grow(s.P1)
			grow(s.P2)
		case CubicTo:
			grow(s.P1)
			grow(s.P2)
			grow(s.P3)
		}
	}
	return min, max
}

// Translate returns a copy of the path shifted by (dx, dy).
func (p Path) Translate(dx, dy float64) Path {
	d := geometry.Point{X: dx, Y: dy}
	out := make(Path, len(p))
	for i, s := range p {
		out[i] = Segment{Op: s.Op, P1: s.P1.Add(d), P2: s.P2.Add(d), P3: s.P3.Add(d)}
		if s.Op == Close {
			out[i] = Segment{Op: Close}
		}
	}
	return out
}

// Data renders the path as SVG path data with 3-decimal coordinates.
func (p Path) Data() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch s.Op {
		case MoveTo:
			fmt.Fprintf(&b, "M %.3f,%.3f", s.P1.X, s.P1.Y)
		case LineTo:
			fmt.Fprintf(&b, "L %.3f,%.3f", s.P1.X, s.P1.Y)
		case QuadTo:
			fmt.Fprintf(&b, "Q %.3f,%.3f %.3f,%.3f", s.P1.X, s.P1.Y, s.P2.X, s.P2.Y)
		case CubicTo:
			fmt.Fprintf(&b, "C %.3f,%.3f %.3f,%.3f %.3f,%.3f",
				s.P1.X, s.P1.Y, s.P2.X, s.P2.Y, s.P3.X, s.P3.Y)
		case Close:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

// Rect returns a closed rectangle subpath with top-left corner at (x, y).
func Rect(x, y, w, h float64) Path {
	var p Path
	p.MoveTo(geometry.Point{X: x, Y: y})
	p.LineTo(geometry.Point{X: x + w, Y: y})
	p.LineTo(geometry.Point{X: x + w, Y: y + h})
	p.LineTo(geometry.Point{X: x, Y: y + h})
	p.Close()
	return p
}

// kappa is the control point offset ratio approximating a quarter circle
// with one cubic Bézier.
const kappa = 0.552284749831

// Circle returns a closed circle subpath built from four cubic Béziers,
// starting at the top point and winding clockwise in screen coordinates.
func Circle(cx, cy, r float64) Path {
	k := r * kappa
	var p Path
	p.MoveTo(geometry.Point{X: cx, Y: cy - r})
	p.CubicTo(geometry.Point{X: cx + k, Y: cy - r}, geometry.Point{X: cx + r, Y: cy - k}, geometry.Point{X: cx + r, Y: cy})
	p.CubicTo(geometry.Point{X: cx + r, Y: cy + k}, geometry.Point{X: cx + k, Y: cy + r}, geometry.Point{X: cx, Y: cy + r})
	p.CubicTo(geometry.Point{X: cx - k, Y: cy + r}, geometry.Point{X: cx - r, Y: cy + k}, geometry.Point{X: cx - r, Y: cy})
	p.CubicTo(geometry.Point{X: cx - r, Y: cy - k}, geometry.Point{X: cx - k, Y: cy - r}, geometry.Point{X: cx, Y: cy - r})
	p.Close()
	return p
}

func quadPoint(p0, c, p1 geometry.Point, t float64) geometry.Point {
	u := 1 - t
	return geometry.Point{
		X: u*u*p0.X + 2*u*t*c.X + t*t*p1.X,
		Y: u*u*p0.Y + 2*u*t*c.Y + t*t*p1.Y,
	}
}

func cubicPoint(p0, c1, c2, p1 geometry.Point, t float64) geometry.Point {
	u := 1 - t
	return geometry.Point{
		X: u*u*u*p0.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*p1.X,
		Y: u*u*u*p0.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*p1.Y,
	}
}
