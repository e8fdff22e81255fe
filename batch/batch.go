// Package batch solves every map file under a path.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/kmap/config"
	"github.com/gnoswap-labs/kmap/formatter"
	"github.com/gnoswap-labs/kmap/internal/verify"
)

// Outcome is the result of solving one file.
type Outcome struct {
	Path       string
	Name       string
	Expression string
	Terms      int
	Err        error
}

// Processor turns one map file into an outcome.
type Processor func(path string) (Outcome, error)

// SolveFile loads, solves and verifies the map at path.
func SolveFile(path string) (Outcome, error) {
	f, err := config.Load(path)
	if err != nil {
		return Outcome{}, err
	}
	m, err := f.Build()
	if err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", path, err)
	}
	res := m.Solve()
	if err := verify.Check(m.Grid(), res.Terms); err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", path, err)
	}
	return Outcome{
		Path:       path,
		Name:       f.Name,
		Expression: formatter.Expression(m.Grid(), res.Terms),
		Terms:      len(res.Terms),
	}, nil
}

// ProcessPath runs processor on path, or on every map file below it when it
// is a directory. Outcomes are sorted by path; a failed file is reported in
// its Outcome.Err and does not stop the others.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	out io.Writer,
	path string,
	processor Processor,
) ([]Outcome, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}
	if !info.IsDir() {
		o, err := processor(path)
		if err != nil {
			return nil, err
		}
		return []Outcome{o}, nil
	}

	var files []string
	err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fileInfo.IsDir() && hasDesiredExtension(filePath) {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	outcomes := make([]Outcome, len(files))
	done := make(chan struct{}, len(files))

	// limit the number of workers
	sem := make(chan struct{}, runtime.NumCPU())

	started := 0
	for i, filePath := range files {
		if err := ctx.Err(); err != nil {
			for ; started > 0; started-- {
				<-done
			}
			return nil, err
		}
		sem <- struct{}{}
		started++
		go func(i int, fp string) {
			defer func() {
				<-sem
				done <- struct{}{}
			}()
			o, err := processor(fp)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
				}
				o = Outcome{Path: fp, Err: err}
			}
			outcomes[i] = o
			_ = bar.Add(1)
		}(i, filePath)
	}
	for ; started > 0; started-- {
		<-done
	}
	_ = bar.Finish()

	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].Path < outcomes[j].Path })
	return outcomes, nil
}

var desiredExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
}

func hasDesiredExtension(path string) bool {
	return desiredExtensions[filepath.Ext(path)]
}
