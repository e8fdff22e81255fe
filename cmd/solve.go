package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/kmap/formatter"
	"github.com/gnoswap-labs/kmap/internal/kmap"
)

var (
	solveJsonOutput bool
	noColor         bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Minimize a map and print its cover",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
		_, m, err := loadMap(args, inline)
		if err != nil {
			logger.Fatal("Failed to load map", zap.Error(err))
		}
		if err := printSolution(os.Stdout, m, solveJsonOutput); err != nil {
			logger.Fatal("Failed to print solution", zap.Error(err))
		}
	},
}

func init() {
	solveCmd.Flags().BoolVar(&solveJsonOutput, "json", false, "Output the solution in JSON format")
	solveCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

type jsonTerm struct {
	Product  string       `json:"product"`
	Literals string       `json:"literals"`
	Cells    []kmap.Coord `json:"cells"`
	Minterms []int        `json:"minterms"`
}

type jsonSolution struct {
	Vars       int          `json:"vars"`
	Expression string       `json:"expression"`
	Terms      []jsonTerm   `json:"terms"`
	Cover      []kmap.Coord `json:"cover"`
}

func solution(m *kmap.Map) jsonSolution {
	g := m.Grid()
	res := m.Solve()
	out := jsonSolution{
		Vars:       m.Vars(),
		Expression: formatter.Expression(g, res.Terms),
		Terms:      make([]jsonTerm, 0, len(res.Terms)),
		Cover:      res.Cover,
	}
	for _, t := range res.Terms {
		jt := jsonTerm{Product: formatter.Product(g, t), Cells: t.Cells}
		for _, l := range t.Literals(g) {
			jt.Literals += l.String()
		}
		for _, c := range t.Cells {
			jt.Minterms = append(jt.Minterms, g.Minterm(c))
		}
		out.Terms = append(out.Terms, jt)
	}
	return out
}

func printSolution(w io.Writer, m *kmap.Map, asJson bool) error {
	if asJson {
		d, err := json.MarshalIndent(solution(m), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(d))
		return err
	}
	_, err := fmt.Fprint(w, formatter.FormatMap(m.Grid(), m.Solve()))
	return err
}
