package components

import (
	"github.com/matzehuels/housebox/pkg/geometry"
	"github.com/matzehuels/housebox/pkg/outline"
)

// Decorator generates the score-line patterns of a decorative style for
// one panel. Patterns are engraved, never cut, and scale with the panel
// area so a large house does not end up with doll-sized bricks.
type Decorator struct {
	geom  *geometry.Derived
	sizer Sizer
}

// NewDecorator wires a decorator for one derived geometry snapshot.
func NewDecorator(d *geometry.Derived) Decorator {
	return Decorator{geom: d, sizer: NewSizer(d)}
}

// Scores returns the decorative score paths for a panel under the given
// style. Wall panels carry the facade pattern; roof panels only take
// patterns from styles that decorate roofs. Floors stay plain.
func (dec Decorator) Scores(style Style, panel geometry.PanelName) []outline.Path {
	dim, ok := dec.geom.PanelDimensions()[panel]
	if !ok || panel == geometry.PanelFloor {
		return nil
	}
	roof := panel == geometry.PanelRoofLeft || panel == geometry.PanelRoofRight
	scale := dec.sizer.PatternScale(panel)
	margin := dec.geom.Params.Thickness + 2

	switch style {
	case StyleFachwerkhaus:
		if roof {
			return nil
		}
		return dec.timberFrame(dim, scale, margin)
	case StyleFarmhouse:
		if roof {
			return nil
		}
		return verticalBoards(dim, scale, margin)
	case StyleColonial:
		if roof {
			return nil
		}
		return clapboard(dim, scale, margin)
	case StyleBrick:
		if roof {
			return nil
		}
		return brickCourses(dim, scale, margin)
	case StyleVictorian:
		if roof {
			return nil
		}
		return cornerBrackets(dim, scale, margin)
	case StyleTudor:
		if roof {
			return nil
		}
		paths := dec.timberFrame(dim, scale, margin)
		return append(paths, tudorArch(dim, scale))
	case StyleCraftsman:
		if roof {
			return nil
		}
		return craftsmanLines(dim, scale, margin)
	case StyleGingerbread:
		if roof {
			return scallops(dim, scale, margin)
		}
		if panel == geometry.PanelGableWallFront || panel == geometry.PanelGableWallBack {
			return []outline.Path{gableStar(dim, dec.geom.GablePeakHeight, scale)}
		}
		return heartAndSwirl(dim, scale)
	default:
		return nil
	}
}

func scoreLine(x1, y1, x2, y2 float64) outline.Path {
	var p outline.Path
	p.MoveTo(geometry.Point{X: x1, Y: y1})
	p.LineTo(geometry.Point{X: x2, Y: y2})
	return p
}

// timberFrame draws half-timbering: a horizontal beam at the golden
// section, vertical posts below it, and alternating diagonal braces
// between the posts.
func (dec Decorator) timberFrame(dim geometry.Dim, scale, margin float64) []outline.Path {
	beamY := dim.Height * 0.382
	bottom := dim.Height - margin
	paths := []outline.Path{scoreLine(margin, beamY, dim.Width-margin, beamY)}

	posts := []float64{0.25, 0.5, 0.75}
	for _, f := range posts {
		x := dim.Width * f
		paths = append(paths, scoreLine(x, beamY, x, bottom))
	}
	// Braces between consecutive posts, direction alternating per bay.
	xs := []float64{margin}
	for _, f := range posts {
		xs = append(xs, dim.Width*f)
	}
	xs = append(xs, dim.Width-margin)
	for i := 0; i+1 < len(xs); i++ {
		if i%2 == 0 {
			paths = append(paths, scoreLine(xs[i], bottom, xs[i+1], beamY))
		} else {
			paths = append(paths, scoreLine(xs[i], beamY, xs[i+1], bottom))
		}
	}
	return paths
}

// verticalBoards draws board-and-batten siding lines.
func verticalBoards(dim geometry.Dim, scale, margin float64) []outline.Path {
	spacing := max(12*scale, 8)
	var paths []outline.Path
	for x := margin + spacing; x < dim.Width-margin; x += spacing {
		paths = append(paths, scoreLine(x, margin, x, dim.Height-margin))
	}
	return paths
}

// clapboard draws horizontal siding lines.
func clapboard(dim geometry.Dim, scale, margin float64) []outline.Path {
	spacing := max(6*scale, 4)
	var paths []outline.Path
	for y := margin + spacing; y < dim.Height-margin; y += spacing {
		paths = append(paths, scoreLine(margin, y, dim.Width-margin, y))
	}
	return paths
}

// brickCourses draws running-bond brickwork: course lines plus head
// joints offset half a brick on alternate courses.
func brickCourses(dim geometry.Dim, scale, margin float64) []outline.Path {
	courseH := max(4*scale, 3)
	brickW := 2 * courseH
	var paths []outline.Path
	course := 0
	for y := margin + courseH; y < dim.Height-margin; y += courseH {
		paths = append(paths, scoreLine(margin, y, dim.Width-margin, y))
		offset := 0.0
		if course%2 == 1 {
			offset = brickW / 2
		}
		for x := margin + offset + brickW; x < dim.Width-margin; x += brickW {
			paths = append(paths, scoreLine(x, y-courseH, x, y))
		}
		course++
	}
	return paths
}

// cornerBrackets draws a quarter-arc bracket in each panel corner.
func cornerBrackets(dim geometry.Dim, scale, margin float64) []outline.Path {
	s := 8 * scale
	w, h := dim.Width, dim.Height
	bracket := func(cx, cy, ax, ay, bx, by float64) outline.Path {
		var p outline.Path
		p.MoveTo(geometry.Point{X: ax, Y: ay})
		p.QuadTo(geometry.Point{X: cx, Y: cy}, geometry.Point{X: bx, Y: by})
		return p
	}
	return []outline.Path{
		bracket(margin, margin, margin+s, margin, margin, margin+s),
		bracket(w-margin, margin, w-margin-s, margin, w-margin, margin+s),
		bracket(margin, h-margin, margin+s, h-margin, margin, h-margin-s),
		bracket(w-margin, h-margin, w-margin-s, h-margin, w-margin, h-margin-s),
	}
}

// tudorArch is the decorative arch drawn over the center bay.
func tudorArch(dim geometry.Dim, scale float64) outline.Path {
	beamY := dim.Height * 0.382
	var p outline.Path
	p.MoveTo(geometry.Point{X: dim.Width * 0.35, Y: beamY})
	p.QuadTo(geometry.Point{X: dim.Width * 0.5, Y: beamY - 10*scale},
		geometry.Point{X: dim.Width * 0.65, Y: beamY})
	return p
}

// craftsmanLines draws the column lines at the third points plus thin
// accent lines along the vertical edges.
func craftsmanLines(dim geometry.Dim, scale, margin float64) []outline.Path {
	accent := 2 * scale
	return []outline.Path{
		scoreLine(dim.Width/3, margin, dim.Width/3, dim.Height-margin),
		scoreLine(2*dim.Width/3, margin, 2*dim.Width/3, dim.Height-margin),
		scoreLine(margin+accent, margin, margin+accent, dim.Height-margin),
		scoreLine(dim.Width-margin-accent, margin, dim.Width-margin-accent, dim.Height-margin),
	}
}

// scallops draws the trim row along the lower roof edge.
func scallops(dim geometry.Dim, scale, margin float64) []outline.Path {
	r := 5 * scale
	m := margin + r
	y := dim.Height - m
	var paths []outline.Path
	for x := m; x+2*r <= dim.Width-m; x += 2 * r {
		var p outline.Path
		p.MoveTo(geometry.Point{X: x, Y: y})
		p.QuadTo(geometry.Point{X: x + r, Y: y + 1.4*r}, geometry.Point{X: x + 2*r, Y: y})
		paths = append(paths, p)
	}
	return paths
}

// gableStar is the diamond ornament centered in the gable cap.
func gableStar(dim geometry.Dim, capHeight, scale float64) outline.Path {
	cx := dim.Width / 2
	cy := capHeight * 0.45
	r := min(5*scale, capHeight*0.25)
	var p outline.Path
	p.MoveTo(geometry.Point{X: cx, Y: cy - r})
	p.LineTo(geometry.Point{X: cx + r, Y: cy})
	p.LineTo(geometry.Point{X: cx, Y: cy + r})
	p.LineTo(geometry.Point{X: cx - r, Y: cy})
	p.Close()
	return p
}

// heartAndSwirl is the side-wall ornament: a heart under the eaves with
// a swirl trailing off it.
func heartAndSwirl(dim geometry.Dim, scale float64) []outline.Path {
	cx := dim.Width / 2
	cy := dim.Height * 0.25
	s := 4 * scale

	var heart outline.Path
	heart.MoveTo(geometry.Point{X: cx, Y: cy + s})
	heart.CubicTo(geometry.Point{X: cx - 1.6*s, Y: cy - 0.4*s},
		geometry.Point{X: cx - 0.8*s, Y: cy - 1.2*s},
		geometry.Point{X: cx, Y: cy - 0.4*s})
	heart.CubicTo(geometry.Point{X: cx + 0.8*s, Y: cy - 1.2*s},
		geometry.Point{X: cx + 1.6*s, Y: cy - 0.4*s},
		geometry.Point{X: cx, Y: cy + s})
	heart.Close()

	var swirl outline.Path
	swirl.MoveTo(geometry.Point{X: cx - 2.5*s, Y: cy + 2*s})
	swirl.CubicTo(geometry.Point{X: cx - s, Y: cy + 3*s},
		geometry.Point{X: cx + s, Y: cy + 3*s},
		geometry.Point{X: cx + 2.5*s, Y: cy + 2*s})

	return []outline.Path{heart, swirl}
}
