package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/gnoswap-labs/kmap/internal/kmap"
)

// latexColors is cycled through for the term outlines.
var latexColors = []string{
	"red", "blue", "green!60!black", "orange", "violet", "cyan", "magenta", "brown", "teal", "olive",
}

const latexTemplate = `% generated by kmap
\begin{tikzpicture}[x=1cm, y=1cm]
{{- range .Levels}}
  % level {{.Index}}{{if .Label}} ({{.Label}}){{end}}
  \draw[step=1, gray] ({{num .X}},0) grid ({{num .XEnd}},{{num $.Bottom}});
  \node[anchor=south east] at ({{num .X}},0) {${{$.HeightVars}} \backslash {{$.WidthVars}}$};
{{- range .Cols}}
  \node[anchor=south] at ({{num .X}},0) {\texttt{ {{- .Text -}} }};
{{- end}}
{{- range .Rows}}
  \node[anchor=east] at ({{num .X}},{{num .Y}}) {\texttt{ {{- .Text -}} }};
{{- end}}
{{- range .Cells}}
  \node at ({{num .X}},{{num .Y}}) { {{- .Text -}} };
{{- end}}
{{- end}}
{{- range .Boxes}}
  \draw[{{.Color}}, thick, rounded corners=3pt] ({{num .X0}},{{num .Y0}}) rectangle ({{num .X1}},{{num .Y1}});{{if .Wrap}} % wrap{{end}}
{{- end}}
\end{tikzpicture}

$f = {{.Expression}}$
`

type latexLabel struct {
	X, Y float64
	Text string
}

type latexLevel struct {
	Index   int
	Label   string
	X, XEnd float64
	Cols    []latexLabel
	Rows    []latexLabel
	Cells   []latexLabel
}

type latexBox struct {
	Color          string
	X0, Y0, X1, Y1 float64
	Wrap           bool
}

type latexData struct {
	HeightVars string
	WidthVars  string
	Bottom     float64
	Levels     []latexLevel
	Boxes      []latexBox
	Expression string
}

// LaTeX renders the map, one outline per term fragment, and the minimized
// expression as a TikZ picture.
func LaTeX(g *kmap.Grid, res kmap.Result) (string, error) {
	levelVars, heightVars, widthVars := axisVars(g)
	s := g.Split()
	data := latexData{
		HeightVars: heightVars,
		WidthVars:  widthVars,
		Bottom:     -float64(g.Height()),
		Expression: latexExpression(g, res.Terms),
	}

	for d := 0; d < g.Levels(); d++ {
		x := levelOffset(g, d)
		lvl := latexLevel{Index: d, X: x, XEnd: x + float64(g.Width())}
		if s.Level > 0 {
			lvl.Label = fmt.Sprintf("$%s = %d$", levelVars, d)
		}
		for w := 0; w < g.Width(); w++ {
			lvl.Cols = append(lvl.Cols, latexLabel{X: x + float64(w) + 0.5, Text: axisLabel(w, s.Width)})
		}
		for h := 0; h < g.Height(); h++ {
			lvl.Rows = append(lvl.Rows, latexLabel{X: x, Y: -float64(h) - 0.5, Text: axisLabel(h, s.Height)})
			for w := 0; w < g.Width(); w++ {
				v := g.At(kmap.Coord{W: w, H: h, D: d})
				lvl.Cells = append(lvl.Cells, latexLabel{
					X:    x + float64(w) + 0.5,
					Y:    -float64(h) - 0.5,
					Text: v.String(),
				})
			}
		}
		data.Levels = append(data.Levels, lvl)
	}

	for i, t := range res.Terms {
		frags := t.Fragments(g)
		inset := 0.08 + 0.04*float64(i%4)
		for _, f := range frags {
			for d := f.D; d < f.D+f.SizeD; d++ {
				x := levelOffset(g, d)
				data.Boxes = append(data.Boxes, latexBox{
					Color: latexColors[i%len(latexColors)],
					X0:    x + float64(f.W) + inset,
					Y0:    -float64(f.H) - inset,
					X1:    x + float64(f.W+f.SizeW) - inset,
					Y1:    -float64(f.H+f.SizeH) + inset,
					Wrap:  len(frags) > 1,
				})
			}
		}
	}

	funcs := template.FuncMap{"num": num}
	tmpl, err := template.New("latex").Funcs(funcs).Parse(latexTemplate)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering latex: %w", err)
	}
	return buf.String(), nil
}

// levelOffset places the levels side by side with one empty column between.
func levelOffset(g *kmap.Grid, d int) float64 {
	return float64(d * (g.Width() + 1))
}

func latexExpression(g *kmap.Grid, terms []kmap.Term) string {
	if len(terms) == 0 {
		return "0"
	}
	parts := make([]string, len(terms))
	for i, t := range terms {
		var b strings.Builder
		for k, l := range t.Literals(g) {
			switch l {
			case kmap.Fixed1:
				b.WriteString(kmap.VarName(k))
			case kmap.Fixed0:
				b.WriteString(`\overline{` + kmap.VarName(k) + `}`)
			}
		}
		if b.Len() == 0 {
			b.WriteString("1")
		}
		parts[i] = b.String()
	}
	return strings.Join(parts, " + ")
}

func num(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", f), "0"), ".")
}
