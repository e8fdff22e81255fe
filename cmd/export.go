package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/kmap/formatter"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the solved map as a TikZ picture",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, m, err := loadMap(args, inline)
		if err != nil {
			logger.Fatal("Failed to load map", zap.Error(err))
		}
		doc, err := formatter.LaTeX(m.Grid(), m.Solve())
		if err != nil {
			logger.Fatal("Failed to render LaTeX", zap.Error(err))
		}
		if exportOutput == "" {
			fmt.Print(doc)
			return
		}
		if err := os.WriteFile(exportOutput, []byte(doc), 0o644); err != nil {
			logger.Fatal("Failed to write LaTeX", zap.String("path", exportOutput), zap.Error(err))
		}
		fmt.Printf("LaTeX file created: %s\n", exportOutput)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output path for the .tex file")
}
