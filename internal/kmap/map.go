package kmap

// Map is the stateful view a front end drives: one grid, a don't-care flag
// and solver options. Every Solve starts from scratch.
type Map struct {
	grid *Grid
	opts Options
}

// New returns a map for numVars variables with don't-cares disabled.
func New(numVars int) (*Map, error) {
	g, err := NewGrid(numVars, false)
	if err != nil {
		return nil, err
	}
	return &Map{grid: g, opts: DefaultOptions()}, nil
}

// Reset reallocates the grid for numVars variables, clearing every cell.
// The don't-care flag is kept.
func (m *Map) Reset(numVars int) error {
	g, err := NewGrid(numVars, m.grid.dontCare)
	if err != nil {
		return err
	}
	m.grid = g
	return nil
}

// SetDontCareAllowed switches don't-care support, clearing the grid when
// the flag changes.
func (m *Map) SetDontCareAllowed(allowed bool) {
	if m.grid.dontCare == allowed {
		return
	}
	g, _ := NewGrid(m.grid.vars, allowed)
	m.grid = g
}

// SetOptions replaces the solver options.
func (m *Map) SetOptions(opts Options) {
	m.opts = opts
}

// Toggle cycles the value of one cell and returns the new value.
func (m *Map) Toggle(c Coord) Value {
	return m.grid.Toggle(c)
}

// Set writes one cell.
func (m *Map) Set(c Coord, v Value) error {
	return m.grid.Set(c, v)
}

// Value returns the content of one cell.
func (m *Map) Value(c Coord) Value {
	return m.grid.At(c)
}

// Solve recomputes the minimized cover of the current grid.
func (m *Map) Solve() Result {
	return SolveWith(m.grid, m.opts)
}

// Grid exposes the underlying grid for read access.
func (m *Map) Grid() *Grid { return m.grid }
func (m *Map) Vars() int { return m.grid.vars }
func (m *Map) Width() int { return m.grid.width }
func (m *Map) Height() int { return m.grid.height }
func (m *Map) Levels() int { return m.grid.levels }
func (m *Map) Split() Split { return m.grid.split }
