package kmap

import "fmt"

// Literal is the role of one variable in a product term.
type Literal uint8

const (
	// Fixed0 means the variable appears complemented.
	Fixed0 Literal = iota
	// Fixed1 means the variable appears uncomplemented.
	Fixed1
	// Free means the variable changes across the term and drops out.
	Free
)

func (l Literal) String() string {
	switch l {
	case Fixed0:
		return "0"
	case Fixed1:
		return "1"
	default:
		return "-"
	}
}

// VarName returns the display name of variable k (A, B, C, ...).
func VarName(k int) string {
	return string(rune('A' + k))
}

func gray(n int) int {
	return n ^ (n >> 1)
}

func fromGray(n int) int {
	for s := n >> 1; s != 0; s >>= 1 {
		n ^= s
	}
	return n
}

// Minterm returns the minterm number of c. Variables are ordered level,
// then height, then width, each axis Gray coded with its MSB first.
func (g *Grid) Minterm(c Coord) int {
	g.index(c)
	s := g.split
	return c.D<<(s.Height+s.Width) | gray(c.H)<<s.Width | gray(c.W)
}

// CoordOf is the inverse of Minterm.
func (g *Grid) CoordOf(m int) (Coord, error) {
	if m < 0 || m >= 1<<g.vars {
		return Coord{}, fmt.Errorf("%w: %d not in [0,%d)", ErrMinterm, m, 1<<g.vars)
	}
	s := g.split
	return Coord{
		W: fromGray(m & (1<<s.Width - 1)),
		H: fromGray(m >> s.Width & (1<<s.Height - 1)),
		D: m >> (s.Width + s.Height),
	}, nil
}

// Assignment returns the value of every variable at c, most significant first.
func (g *Grid) Assignment(c Coord) []bool {
	m := g.Minterm(c)
	out := make([]bool, g.vars)
	for k := range out {
		out[k] = m&(1<<(g.vars-1-k)) != 0
	}
	return out
}

// Literals derives the literal pattern of t by comparing each variable's
// value across all cells of the term.
func (t Term) Literals(g *Grid) []Literal {
	out := make([]Literal, g.vars)
	if len(t.Cells) == 0 {
		return out
	}
	first := g.Assignment(t.Cells[0])
	for k, v := range first {
		if v {
			out[k] = Fixed1
		}
	}
	for _, c := range t.Cells[1:] {
		for k, v := range g.Assignment(c) {
			if v != first[k] {
				out[k] = Free
			}
		}
	}
	return out
}
