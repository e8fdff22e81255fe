package kmap

// Options tunes candidate generation.
type Options struct {
	// CorrectDepthHeightGuard gates the height-extended two-level shapes
	// (1x4x2, 2x4x2) on height == 4 && h == 0. When false they use the same
	// width == 4 && w == 0 guard as the width-extended shapes, which only
	// yields full-height two-level columns anchored in column 0.
	CorrectDepthHeightGuard bool
}

// DefaultOptions returns the options used by Solve and New.
func DefaultOptions() Options {
	return Options{CorrectDepthHeightGuard: false}
}

// Expand sweeps every cell of g through the shape catalogue and returns the
// candidate terms, none of which is contained in another.
func Expand(g *Grid, opts Options) []Term {
	var candidates []Term
	for d := 0; d < g.levels; d++ {
		for h := 0; h < g.height; h++ {
			for w := 0; w < g.width; w++ {
				candidates = append(candidates, g.expandAnchor(Coord{W: w, H: h, D: d}, 1, opts)...)
			}
		}
	}
	if g.levels == 2 {
		for h := 0; h < g.height; h++ {
			for w := 0; w < g.width; w++ {
				candidates = append(candidates, g.expandAnchor(Coord{W: w, H: h}, 2, opts)...)
			}
		}
	}
	return FilterMaximal(candidates)
}

// expandAnchor collects the accepted boxes of the given depth anchored at a,
// filtering after each group of shapes.
func (g *Grid) expandAnchor(a Coord, depth int, opts Options) []Term {
	set := g.accepted(nil, a, []Shape{{W: 1, H: 1, D: depth}})
	groups := [][]Shape{
		g.widthShapes(a, depth),
		g.heightShapes(a, depth, opts),
		g.squareShapes(a, depth),
	}
	for _, shapes := range groups {
		set = FilterMaximal(g.accepted(set, a, shapes))
	}
	return set
}

func (g *Grid) accepted(set []Term, a Coord, shapes []Shape) []Term {
	for _, s := range shapes {
		if g.Accepts(a, s) {
			set = append(set, g.Construct(a, s))
		}
	}
	return set
}

func (g *Grid) widthShapes(a Coord, depth int) []Shape {
	shapes := []Shape{{W: 2, H: 1, D: depth}}
	if g.width == 4 && a.W == 0 {
		shapes = append(shapes, Shape{W: 4, H: 1, D: depth}, Shape{W: 4, H: 2, D: depth})
	}
	return shapes
}

func (g *Grid) heightShapes(a Coord, depth int, opts Options) []Shape {
	shapes := []Shape{{W: 1, H: 2, D: depth}}
	guard := g.height == 4 && a.H == 0
	if depth == 2 && !opts.CorrectDepthHeightGuard {
		guard = g.width == 4 && a.W == 0
	}
	if guard {
		shapes = append(shapes, Shape{W: 1, H: 4, D: depth}, Shape{W: 2, H: 4, D: depth})
	}
	return shapes
}

func (g *Grid) squareShapes(a Coord, depth int) []Shape {
	shapes := []Shape{{W: 2, H: 2, D: depth}}
	if g.width == 4 && g.height == 4 && a.W == 0 && a.H == 0 {
		shapes = append(shapes, Shape{W: 4, H: 4, D: depth})
	}
	return shapes
}
