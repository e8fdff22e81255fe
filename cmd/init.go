package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/kmap/config"
)

// initCmd: kmap init
var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write a sample map file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		path, err := initMapFile(path)
		if err != nil {
			logger.Error("Error initializing map file", zap.Error(err))
			return
		}
		fmt.Printf("Map file created/updated: %s\n", path)
	},
}

func initMapFile(path string) (string, error) {
	if path == "" {
		path = "kmap.yaml"
	}
	return path, config.Save(path, config.Sample())
}
