package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnoswap-labs/kmap/config"
	"github.com/gnoswap-labs/kmap/internal/kmap"
)

// mapFlags describe a map on the command line instead of in a file.
type mapFlags struct {
	vars       int
	ones       string
	dontCares  string
	dontCare   bool
	fixedGuard bool
}

var inline mapFlags

func addMapFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().IntVar(&inline.vars, "vars", 0, "Number of variables (2-5) when no file is given")
	cmd.PersistentFlags().StringVar(&inline.ones, "ones", "", "Comma-separated minterms that are 1")
	cmd.PersistentFlags().StringVar(&inline.dontCares, "dont-cares", "", "Comma-separated don't-care minterms")
	cmd.PersistentFlags().BoolVar(&inline.dontCare, "dont-care", false, "Allow don't-care cells")
	cmd.PersistentFlags().BoolVar(&inline.fixedGuard, "fixed-guard", false, "Gate 2-level full-height shapes on the row instead of the column")
}

// loadMap builds the map from a file argument or, without one, from flags.
func loadMap(args []string, flags mapFlags) (config.File, *kmap.Map, error) {
	var (
		f   config.File
		err error
	)
	if len(args) > 0 {
		f, err = config.Load(args[0])
		if err != nil {
			return f, nil, err
		}
		f.FixedGuard = f.FixedGuard || flags.fixedGuard
	} else {
		f, err = flags.file()
		if err != nil {
			return f, nil, err
		}
	}
	m, err := f.Build()
	return f, m, err
}

func (fl mapFlags) file() (config.File, error) {
	ones, err := parseMinterms(fl.ones)
	if err != nil {
		return config.File{}, fmt.Errorf("--ones: %w", err)
	}
	dcs, err := parseMinterms(fl.dontCares)
	if err != nil {
		return config.File{}, fmt.Errorf("--dont-cares: %w", err)
	}
	return config.File{
		Vars:       fl.vars,
		DontCare:   fl.dontCare || len(dcs) > 0,
		Ones:       ones,
		DontCares:  dcs,
		FixedGuard: fl.fixedGuard,
	}, nil
}

func parseMinterms(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
