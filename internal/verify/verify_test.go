package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/kmap/internal/kmap"
)

func grid(t *testing.T, vars int, dontCare bool, ones, dcs []int) *kmap.Grid {
	t.Helper()
	g, err := kmap.NewGrid(vars, dontCare)
	require.NoError(t, err)
	set := func(ms []int, v kmap.Value) {
		for _, m := range ms {
			c, err := g.CoordOf(m)
			require.NoError(t, err)
			require.NoError(t, g.Set(c, v))
		}
	}
	set(ones, kmap.True)
	set(dcs, kmap.DontCare)
	return g
}

func TestCheckAcceptsSolverOutput(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		vars     int
		dontCare bool
		ones     []int
		dcs      []int
	}{
		{"empty", 3, false, nil, nil},
		{"full", 4, false, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, nil},
		{"single", 2, false, []int{3}, nil},
		{"consensus", 3, false, []int{0, 1, 5, 7}, nil},
		{"dont cares", 4, true, []int{1, 3, 7, 11, 15}, []int{0, 2, 5}},
		{"five vars", 5, false, []int{0, 2, 5, 7, 8, 10, 13, 15, 16, 18, 29, 31}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := grid(t, tt.vars, tt.dontCare, tt.ones, tt.dcs)
			res := kmap.Solve(g)
			assert.NoError(t, Check(g, res.Terms))
		})
	}
}

func TestCheckRejectsFalseCell(t *testing.T) {
	t.Parallel()
	g := grid(t, 3, false, []int{0}, nil)
	// pair of minterms 0 and 1, where 1 is False
	wide := g.NewTerm(kmap.Coord{W: 0}, kmap.Coord{W: 1})

	err := Check(g, []kmap.Term{wide})
	assert.ErrorIs(t, err, ErrCoversFalseCell)
	assert.Contains(t, err.Error(), "minterm 1")
}

func TestCheckRejectsMissingTrueCell(t *testing.T) {
	t.Parallel()
	g := grid(t, 3, false, []int{0, 6}, nil)
	only := g.NewTerm(kmap.Coord{W: 0})

	err := Check(g, []kmap.Term{only})
	assert.ErrorIs(t, err, ErrMissesTrueCell)
	assert.Contains(t, err.Error(), "minterm 6")

	assert.ErrorIs(t, Check(g, nil), ErrMissesTrueCell)
}

func TestCheckIgnoresDontCares(t *testing.T) {
	t.Parallel()
	g := grid(t, 2, true, []int{0}, []int{1})
	pair := g.NewTerm(kmap.Coord{W: 0}, kmap.Coord{W: 1})
	assert.NoError(t, Check(g, []kmap.Term{pair}))
}
