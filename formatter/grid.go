package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/gnoswap-labs/kmap/internal/kmap"
)

var (
	headerStyle = color.New(color.FgHiBlue, color.Bold)
	labelStyle  = color.New(color.FgCyan)
	falseStyle  = color.New(color.FgWhite)
	exprStyle   = color.New(color.FgGreen, color.Bold)

	// termStyles colors covered cells by the first term covering them.
	termStyles = []*color.Color{
		color.New(color.FgRed, color.Bold),
		color.New(color.FgYellow, color.Bold),
		color.New(color.FgMagenta, color.Bold),
		color.New(color.FgGreen, color.Bold),
		color.New(color.FgHiCyan, color.Bold),
		color.New(color.FgHiRed, color.Bold),
		color.New(color.FgHiYellow, color.Bold),
		color.New(color.FgHiMagenta, color.Bold),
	}
)

func termStyle(i int) *color.Color {
	return termStyles[i%len(termStyles)]
}

// FormatMap renders the grid with covered cells colored by term, followed by
// the term list and the minimized expression.
func FormatMap(g *kmap.Grid, res kmap.Result) string {
	var b strings.Builder
	owner := cellOwners(res.Terms)
	levelVars, heightVars, widthVars := axisVars(g)
	s := g.Split()

	rowHead := heightVars + `\` + widthVars
	pad := max(len(rowHead), s.Height)
	for d := 0; d < g.Levels(); d++ {
		if g.Levels() > 1 {
			b.WriteString(headerStyle.Sprintf("%s = %d\n", levelVars, d))
		}
		b.WriteString(headerStyle.Sprintf("%-*s", pad, rowHead))
		for w := 0; w < g.Width(); w++ {
			b.WriteString(labelStyle.Sprintf(" %*s", max(s.Width, 1), axisLabel(w, s.Width)))
		}
		b.WriteString("\n")
		for h := 0; h < g.Height(); h++ {
			b.WriteString(labelStyle.Sprintf("%*s", pad, axisLabel(h, s.Height)))
			for w := 0; w < g.Width(); w++ {
				c := kmap.Coord{W: w, H: h, D: d}
				style := falseStyle
				if i, ok := owner[c]; ok {
					style = termStyle(i)
				}
				b.WriteString(" " + style.Sprintf("%*s", max(s.Width, 1), g.At(c).String()))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	for i, t := range res.Terms {
		b.WriteString(termStyle(i).Sprintf("[%d] %s", i+1, Product(g, t)))
		fmt.Fprintf(&b, "  %s\n", t)
	}
	b.WriteString(exprStyle.Sprint("f = ") + Expression(g, res.Terms) + "\n")
	return b.String()
}

func cellOwners(terms []kmap.Term) map[kmap.Coord]int {
	owner := make(map[kmap.Coord]int)
	for i, t := range terms {
		for _, c := range t.Cells {
			if _, ok := owner[c]; !ok {
				owner[c] = i
			}
		}
	}
	return owner
}
