// Package verify cross-checks a minimized cover against its Karnaugh map
// with a SAT solver.
//
// The products of the cover are encoded over one solver variable per map
// variable. A cover is correct when no False minterm satisfies any product
// and every True minterm satisfies at least one. Don't-care minterms are
// unconstrained.
package verify

import (
	"errors"
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/gnoswap-labs/kmap/internal/kmap"
)

const satisfiable = 1

var (
	// ErrCoversFalseCell indicates a product is true on a False minterm.
	ErrCoversFalseCell = errors.New("verify: cover includes a false cell")
	// ErrMissesTrueCell indicates a True minterm outside every product.
	ErrMissesTrueCell = errors.New("verify: cover misses a true cell")
)

// product is the fixed literals of one term.
type product []z.Lit

func products(g *kmap.Grid, terms []kmap.Term) []product {
	out := make([]product, len(terms))
	for i, t := range terms {
		for k, l := range t.Literals(g) {
			switch l {
			case kmap.Fixed0:
				out[i] = append(out[i], varLit(k, false))
			case kmap.Fixed1:
				out[i] = append(out[i], varLit(k, true))
			}
		}
	}
	return out
}

func varLit(k int, value bool) z.Lit {
	v := z.Var(k + 1)
	if value {
		return v.Pos()
	}
	return v.Neg()
}

// mintermLits fixes every variable to its value at c.
func mintermLits(g *kmap.Grid, c kmap.Coord) []z.Lit {
	assignment := g.Assignment(c)
	out := make([]z.Lit, len(assignment))
	for k, v := range assignment {
		out[k] = varLit(k, v)
	}
	return out
}

// Check returns nil when terms implement the function held by g.
func Check(g *kmap.Grid, terms []kmap.Term) error {
	ps := products(g, terms)
	if err := checkOffSet(g, ps); err != nil {
		return err
	}
	return checkOnSet(g, ps)
}

// checkOffSet asks for an assignment that satisfies some product and equals
// some False minterm.
func checkOffSet(g *kmap.Grid, ps []product) error {
	var offSet []kmap.Coord
	for _, c := range g.Coords() {
		if g.At(c) == kmap.False {
			offSet = append(offSet, c)
		}
	}
	if len(ps) == 0 || len(offSet) == 0 {
		return nil
	}

	s := gini.NewV(g.Vars() + len(ps) + len(offSet))
	next := z.Var(g.Vars() + 1)
	selectors := make([]z.Lit, 0, len(ps))
	for _, p := range ps {
		sel := next.Pos()
		next++
		selectors = append(selectors, sel)
		for _, m := range p {
			addClause(s, sel.Not(), m)
		}
	}
	addClause(s, selectors...)

	selectors = selectors[:0]
	for _, c := range offSet {
		sel := next.Pos()
		next++
		selectors = append(selectors, sel)
		for _, m := range mintermLits(g, c) {
			addClause(s, sel.Not(), m)
		}
	}
	addClause(s, selectors...)

	if s.Solve() != satisfiable {
		return nil
	}
	return fmt.Errorf("%w: minterm %d", ErrCoversFalseCell, modelMinterm(s, g.Vars()))
}

// checkOnSet asks, for each True minterm, whether every product can be false.
func checkOnSet(g *kmap.Grid, ps []product) error {
	s := gini.NewV(g.Vars())
	for _, p := range ps {
		if len(p) == 0 {
			// constant 1 covers everything
			return nil
		}
		negated := make([]z.Lit, len(p))
		for i, m := range p {
			negated[i] = m.Not()
		}
		addClause(s, negated...)
	}

	for _, c := range g.Coords() {
		if g.At(c) != kmap.True {
			continue
		}
		s.Assume(mintermLits(g, c)...)
		if s.Solve() == satisfiable {
			return fmt.Errorf("%w: minterm %d at %s", ErrMissesTrueCell, g.Minterm(c), c)
		}
	}
	return nil
}

func addClause(s *gini.Gini, ms ...z.Lit) {
	for _, m := range ms {
		s.Add(m)
	}
	s.Add(z.LitNull)
}

func modelMinterm(s *gini.Gini, vars int) int {
	m := 0
	for k := 0; k < vars; k++ {
		m <<= 1
		if s.Value(varLit(k, true)) {
			m |= 1
		}
	}
	return m
}
