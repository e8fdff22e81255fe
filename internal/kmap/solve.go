package kmap

// Result is the outcome of one minimization run.
type Result struct {
	// Terms is the irredundant cover, in candidate order.
	Terms []Term
	// Cover lists every covered cell in grid index order.
	Cover []Coord
}

// Empty reports whether the function is the constant 0.
func (r Result) Empty() bool {
	return len(r.Terms) == 0
}

// Solve minimizes g with DefaultOptions.
func Solve(g *Grid) Result {
	return SolveWith(g, DefaultOptions())
}

// SolveWith expands g into candidate terms and reduces them to an
// irredundant cover. All state is local to the call.
func SolveWith(g *Grid, opts Options) Result {
	terms, cover := Reduce(g, Expand(g, opts))
	return Result{Terms: terms, Cover: cover}
}
