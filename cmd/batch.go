package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/kmap/batch"
)

var batchCmd = &cobra.Command{
	Use:   "batch [paths...]",
	Short: "Solve and verify every map file under the given paths",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if failed := runBatch(ctx, logger, os.Stdout, args); failed > 0 {
			os.Exit(1)
		}
	},
}

// runBatch prints one line per map file and returns the number of failures.
func runBatch(ctx context.Context, logger *zap.Logger, w io.Writer, paths []string) int {
	failed := 0
	for _, path := range paths {
		outcomes, err := batch.ProcessPath(ctx, logger, os.Stderr, path, batch.SolveFile)
		if err != nil {
			logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			failed++
			continue
		}
		for _, o := range outcomes {
			if o.Err != nil {
				fmt.Fprintf(w, "%s: error: %v\n", o.Path, o.Err)
				failed++
				continue
			}
			fmt.Fprintf(w, "%s: f = %s\n", o.Path, o.Expression)
		}
	}
	return failed
}
