package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/kmap/formatter"
	"github.com/gnoswap-labs/kmap/internal/verify"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [file]",
	Short: "Solve a map and check the cover with a SAT solver",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, m, err := loadMap(args, inline)
		if err != nil {
			logger.Fatal("Failed to load map", zap.Error(err))
		}
		res := m.Solve()
		expr := formatter.Expression(m.Grid(), res.Terms)
		if err := verify.Check(m.Grid(), res.Terms); err != nil {
			logger.Error("Cover does not implement the map", zap.String("expression", expr), zap.Error(err))
			os.Exit(1)
		}
		fmt.Printf("verified: f = %s\n", expr)
	},
}
