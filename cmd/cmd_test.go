package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/kmap/config"
)

func TestParseMinterms(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		want    []int
		wantErr bool
	}{
		{"", nil, false},
		{"  ", nil, false},
		{"3", []int{3}, false},
		{"0, 2,5 ,7", []int{0, 2, 5, 7}, false},
		{"1,x", nil, true},
	}
	for _, tt := range tests {
		got, err := parseMinterms(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestLoadMapFromFlags(t *testing.T) {
	t.Parallel()
	f, m, err := loadMap(nil, mapFlags{vars: 3, ones: "0,2", dontCares: "1"})
	require.NoError(t, err)
	assert.True(t, f.DontCare, "don't-cares imply the flag")
	assert.Equal(t, 3, m.Vars())

	_, _, err = loadMap(nil, mapFlags{vars: 3, ones: "0,a"})
	assert.ErrorContains(t, err, "--ones")
}

func TestLoadMapFromFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "map.yaml")
	_, err := initMapFile(path)
	require.NoError(t, err)

	f, m, err := loadMap([]string{path}, mapFlags{fixedGuard: true})
	require.NoError(t, err)
	assert.Equal(t, config.Sample().Ones, f.Ones)
	assert.True(t, f.FixedGuard)
	assert.Equal(t, 4, m.Vars())
}

func TestPrintSolutionJson(t *testing.T) {
	t.Parallel()
	_, m, err := loadMap(nil, mapFlags{vars: 3, ones: "0,2"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printSolution(&buf, m, true))

	var got jsonSolution
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "A'C'", got.Expression)
	require.Len(t, got.Terms, 1)
	assert.Equal(t, "0-0", got.Terms[0].Literals)
	assert.ElementsMatch(t, []int{0, 2}, got.Terms[0].Minterms)
	assert.Len(t, got.Cover, 2)
}

func TestPrintSolutionText(t *testing.T) {
	color.NoColor = true
	_, m, err := loadMap(nil, mapFlags{vars: 2, ones: "0,1,2,3"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printSolution(&buf, m, false))
	assert.Contains(t, buf.String(), "f = 1\n")
}

func TestRunBatch(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, config.Save(filepath.Join(dir, "ok.yaml"), config.File{Vars: 3, Ones: []int{0, 2}}))
	require.NoError(t, config.Save(filepath.Join(dir, "bad.yaml"), config.File{Vars: 3, Ones: []int{99}}))

	var buf bytes.Buffer
	failed := runBatch(context.Background(), zap.NewNop(), &buf, []string{dir, filepath.Join(dir, "missing")})
	assert.Equal(t, 2, failed)
	assert.Contains(t, buf.String(), "ok.yaml: f = A'C'")
	assert.Contains(t, buf.String(), "bad.yaml: error:")
}
