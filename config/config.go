// Package config reads and writes Karnaugh map description files.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/kmap/internal/kmap"
)

var (
	// ErrOverlap indicates a minterm listed both as one and as don't-care.
	ErrOverlap = errors.New("config: minterm listed as both one and don't-care")
	// ErrDontCareDisabled indicates don't-care minterms in a file with dont_care off.
	ErrDontCareDisabled = errors.New("config: dont_cares given but dont_care is false")
)

// File is the YAML form of one map. FixedGuard selects
// kmap.Options.CorrectDepthHeightGuard.
type File struct {
	Name       string `yaml:"name,omitempty"`
	Vars       int    `yaml:"vars"`
	DontCare   bool   `yaml:"dont_care"`
	Ones       []int  `yaml:"ones"`
	DontCares  []int  `yaml:"dont_cares,omitempty"`
	FixedGuard bool   `yaml:"fixed_guard,omitempty"`
}

// Sample is written by `kmap init`.
func Sample() File {
	return File{
		Name:      "example",
		Vars:      4,
		DontCare:  true,
		Ones:      []int{0, 2, 5, 7, 8, 10, 13, 15},
		DontCares: []int{1},
	}
}

// Load parses the map file at path.
func Load(path string) (File, error) {
	var f File

	r, err := os.Open(path)
	if err != nil {
		return f, err
	}
	defer r.Close()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return f, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

// Save writes f to path as YAML.
func Save(path string, f File) error {
	d, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0o644)
}

// Build creates a map holding the function described by f.
func (f File) Build() (*kmap.Map, error) {
	m, err := kmap.New(f.Vars)
	if err != nil {
		return nil, err
	}
	m.SetDontCareAllowed(f.DontCare)
	m.SetOptions(kmap.Options{CorrectDepthHeightGuard: f.FixedGuard})

	if len(f.DontCares) > 0 && !f.DontCare {
		return nil, ErrDontCareDisabled
	}
	ones := make(map[int]bool, len(f.Ones))
	for _, n := range f.Ones {
		ones[n] = true
		if err := set(m, n, kmap.True); err != nil {
			return nil, err
		}
	}
	for _, n := range f.DontCares {
		if ones[n] {
			return nil, fmt.Errorf("%w: %d", ErrOverlap, n)
		}
		if err := set(m, n, kmap.DontCare); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func set(m *kmap.Map, minterm int, v kmap.Value) error {
	c, err := m.Grid().CoordOf(minterm)
	if err != nil {
		return err
	}
	return m.Set(c, v)
}
