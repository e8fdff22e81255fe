package formatter

import (
	"strings"

	"github.com/gnoswap-labs/kmap/internal/kmap"
)

// Product renders one term as a product of literals, e.g. A'BD.
// A term with no fixed variable renders as 1.
func Product(g *kmap.Grid, t kmap.Term) string {
	var b strings.Builder
	for k, l := range t.Literals(g) {
		switch l {
		case kmap.Fixed1:
			b.WriteString(kmap.VarName(k))
		case kmap.Fixed0:
			b.WriteString(kmap.VarName(k) + "'")
		}
	}
	if b.Len() == 0 {
		return "1"
	}
	return b.String()
}

// Expression renders a sum of products. An empty term list renders as 0.
func Expression(g *kmap.Grid, terms []kmap.Term) string {
	if len(terms) == 0 {
		return "0"
	}
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = Product(g, t)
	}
	return strings.Join(parts, " + ")
}

// axisVars returns the variable names carried by the level, height and
// width axes respectively.
func axisVars(g *kmap.Grid) (level, height, width string) {
	s := g.Split()
	var names []string
	for k := 0; k < g.Vars(); k++ {
		names = append(names, kmap.VarName(k))
	}
	level = strings.Join(names[:s.Level], "")
	height = strings.Join(names[s.Level:s.Level+s.Height], "")
	width = strings.Join(names[s.Level+s.Height:], "")
	return level, height, width
}

// axisLabel is the Gray-coded variable values of index i on an axis
// carrying n variables.
func axisLabel(i, n int) string {
	code := i ^ (i >> 1)
	var b strings.Builder
	for bit := n - 1; bit >= 0; bit-- {
		if code&(1<<bit) != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
