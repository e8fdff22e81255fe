package kmap

import "fmt"

// Value is the content of one grid cell.
type Value uint8

const (
	False Value = iota
	True
	DontCare
)

func (v Value) String() string {
	switch v {
	case False:
		return "0"
	case True:
		return "1"
	case DontCare:
		return "X"
	default:
		return "?"
	}
}

// Coord addresses one cell by column (W), row (H) and level (D).
type Coord struct {
	W, H, D int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.W, c.H, c.D)
}

// Split records how many variables each axis carries.
type Split struct {
	Width, Height, Level int
}

// Total returns the number of variables across all axes.
func (s Split) Total() int {
	return s.Width + s.Height + s.Level
}

type layout struct {
	width, height, levels int
	split                 Split
}

// layouts is indexed by variable count.
var layouts = map[int]layout{
	2: {width: 2, height: 2, levels: 1, split: Split{Width: 1, Height: 1}},
	3: {width: 4, height: 2, levels: 1, split: Split{Width: 2, Height: 1}},
	4: {width: 4, height: 4, levels: 1, split: Split{Width: 2, Height: 2}},
	5: {width: 4, height: 4, levels: 2, split: Split{Width: 2, Height: 2, Level: 1}},
}

// Grid is the cell matrix of a Karnaugh map. Width and height indices wrap
// around; the level axis does not.
type Grid struct {
	vars     int
	width    int
	height   int
	levels   int
	split    Split
	dontCare bool
	cells    []Value
}

// NewGrid allocates a grid for numVars variables with every cell False.
func NewGrid(numVars int, dontCare bool) (*Grid, error) {
	l, ok := layouts[numVars]
	if !ok {
		return nil, fmt.Errorf("%w: got %d", ErrVariableCount, numVars)
	}
	return &Grid{
		vars:     numVars,
		width:    l.width,
		height:   l.height,
		levels:   l.levels,
		split:    l.split,
		dontCare: dontCare,
		cells:    make([]Value, l.width*l.height*l.levels),
	}, nil
}

func (g *Grid) Vars() int { return g.vars }
func (g *Grid) Width() int { return g.width }
func (g *Grid) Height() int { return g.height }
func (g *Grid) Levels() int { return g.levels }
func (g *Grid) Split() Split { return g.split }
func (g *Grid) DontCareAllowed() bool { return g.dontCare }

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// index panics on coordinates outside the grid; callers only ever pass
// coordinates produced by the grid itself.
func (g *Grid) index(c Coord) int {
	if c.W < 0 || c.W >= g.width || c.H < 0 || c.H >= g.height || c.D < 0 || c.D >= g.levels {
		panic(fmt.Sprintf("kmap: coordinate %s outside %dx%dx%d grid", c, g.width, g.height, g.levels))
	}
	return (c.D*g.height+c.H)*g.width + c.W
}

// coord is the inverse of index.
func (g *Grid) coord(i int) Coord {
	return Coord{
		W: i % g.width,
		H: (i / g.width) % g.height,
		D: i / (g.width * g.height),
	}
}

// At returns the value stored at c.
func (g *Grid) At(c Coord) Value {
	return g.cells[g.index(c)]
}

// Set stores v at c.
func (g *Grid) Set(c Coord, v Value) error {
	switch v {
	case False, True:
	case DontCare:
		if !g.dontCare {
			return ErrDontCareDisabled
		}
	default:
		return fmt.Errorf("%w: %d", ErrValue, v)
	}
	g.cells[g.index(c)] = v
	return nil
}

// Toggle advances the cell at c through False -> True -> DontCare -> False,
// skipping DontCare when don't-cares are disabled. A DontCare cell found
// while they are disabled becomes False.
func (g *Grid) Toggle(c Coord) Value {
	i := g.index(c)
	switch g.cells[i] {
	case False:
		g.cells[i] = True
	case True:
		if g.dontCare {
			g.cells[i] = DontCare
		} else {
			g.cells[i] = False
		}
	default:
		g.cells[i] = False
	}
	return g.cells[i]
}

// Coords lists every coordinate in grid index order: level, then row, then column.
func (g *Grid) Coords() []Coord {
	out := make([]Coord, len(g.cells))
	for i := range g.cells {
		out[i] = g.coord(i)
	}
	return out
}

// offset moves c by (dw, dh, dd), wrapping on width and height only.
func (g *Grid) offset(c Coord, dw, dh, dd int) Coord {
	return Coord{
		W: (c.W + dw) % g.width,
		H: (c.H + dh) % g.height,
		D: c.D + dd,
	}
}

// valueSet returns the cells holding v as a bitset over grid indices.
func (g *Grid) valueSet(v Value) cellSet {
	var s cellSet
	for i, cv := range g.cells {
		if cv == v {
			s = s.add(i)
		}
	}
	return s
}
