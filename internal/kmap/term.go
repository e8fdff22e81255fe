package kmap

import "strings"

// Shape is the extent of a box along each axis.
type Shape struct {
	W, H, D int
}

// Term is one product term, held as the explicit set of cells it covers.
// Cells keeps construction order; equality and containment are set-wise.
type Term struct {
	Cells []Coord
	set   cellSet
}

// Len returns the number of distinct cells in the term.
func (t Term) Len() int {
	return t.set.len()
}

// Equal reports whether both terms cover exactly the same cells.
func (t Term) Equal(o Term) bool {
	return t.set == o.set
}

// Covers reports whether c belongs to the term on grid g.
func (t Term) Covers(g *Grid, c Coord) bool {
	return t.set.has(g.index(c))
}

func (t Term) String() string {
	parts := make([]string, len(t.Cells))
	for i, c := range t.Cells {
		parts[i] = c.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// NewTerm builds a term from explicit coordinates, dropping duplicates.
func (g *Grid) NewTerm(cells ...Coord) Term {
	var t Term
	for _, c := range cells {
		t = t.with(g, c)
	}
	return t
}

func (t Term) with(g *Grid, c Coord) Term {
	i := g.index(c)
	if t.set.has(i) {
		return t
	}
	t.Cells = append(t.Cells, c)
	t.set = t.set.add(i)
	return t
}

// Accepts reports whether the toroidally wrapped box of shape s anchored at
// anchor holds no False cell and at least one True cell. The scan stops at
// the first False cell.
func (g *Grid) Accepts(anchor Coord, s Shape) bool {
	if anchor.D+s.D > g.levels {
		return false
	}
	hasTrue := false
	for dd := 0; dd < s.D; dd++ {
		for dh := 0; dh < s.H; dh++ {
			for dw := 0; dw < s.W; dw++ {
				switch g.At(g.offset(anchor, dw, dh, dd)) {
				case False:
					return false
				case True:
					hasTrue = true
				}
			}
		}
	}
	return hasTrue
}

// Construct enumerates the toroidally wrapped box of shape s anchored at
// anchor. It does not check cell values; call Accepts first.
func (g *Grid) Construct(anchor Coord, s Shape) Term {
	var t Term
	for dd := 0; dd < s.D; dd++ {
		for dh := 0; dh < s.H; dh++ {
			for dw := 0; dw < s.W; dw++ {
				t = t.with(g, g.offset(anchor, dw, dh, dd))
			}
		}
	}
	return t
}

// union returns the cells covered by any of terms.
func union(terms []Term) cellSet {
	var s cellSet
	for _, t := range terms {
		s |= t.set
	}
	return s
}

// coverOf lists the cells of s in grid index order.
func (g *Grid) coverOf(s cellSet) []Coord {
	idx := s.indices()
	out := make([]Coord, len(idx))
	for i, n := range idx {
		out[i] = g.coord(n)
	}
	return out
}
