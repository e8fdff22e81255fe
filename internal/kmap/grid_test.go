package kmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridDimensions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		vars                  int
		width, height, levels int
		split                 Split
	}{
		{2, 2, 2, 1, Split{Width: 1, Height: 1}},
		{3, 4, 2, 1, Split{Width: 2, Height: 1}},
		{4, 4, 4, 1, Split{Width: 2, Height: 2}},
		{5, 4, 4, 2, Split{Width: 2, Height: 2, Level: 1}},
	}
	for _, tt := range tests {
		g, err := NewGrid(tt.vars, false)
		require.NoError(t, err)
		assert.Equal(t, tt.width, g.Width())
		assert.Equal(t, tt.height, g.Height())
		assert.Equal(t, tt.levels, g.Levels())
		assert.Equal(t, tt.split, g.Split())
		assert.Equal(t, tt.vars, g.Split().Total())
		assert.Equal(t, 1<<tt.vars, g.Len())
		for _, c := range g.Coords() {
			assert.Equal(t, False, g.At(c))
		}
	}
}

func TestNewGridRejectsVariableCount(t *testing.T) {
	t.Parallel()
	for _, n := range []int{-1, 0, 1, 6, 10} {
		_, err := NewGrid(n, false)
		assert.ErrorIs(t, err, ErrVariableCount, "vars=%d", n)
	}
}

func TestToggleCycle(t *testing.T) {
	t.Parallel()
	c := Coord{W: 1, H: 1}

	g, err := NewGrid(3, false)
	require.NoError(t, err)
	assert.Equal(t, True, g.Toggle(c))
	assert.Equal(t, False, g.Toggle(c))

	g, err = NewGrid(3, true)
	require.NoError(t, err)
	assert.Equal(t, True, g.Toggle(c))
	assert.Equal(t, DontCare, g.Toggle(c))
	assert.Equal(t, False, g.Toggle(c))
}

func TestToggleForcesStaleDontCare(t *testing.T) {
	t.Parallel()
	g, err := NewGrid(2, true)
	require.NoError(t, err)
	c := Coord{W: 0, H: 1}
	require.NoError(t, g.Set(c, DontCare))

	g.dontCare = false
	assert.Equal(t, False, g.Toggle(c))
}

func TestSetValidation(t *testing.T) {
	t.Parallel()
	g, err := NewGrid(4, false)
	require.NoError(t, err)

	assert.ErrorIs(t, g.Set(Coord{}, DontCare), ErrDontCareDisabled)
	assert.ErrorIs(t, g.Set(Coord{}, Value(7)), ErrValue)
	require.NoError(t, g.Set(Coord{W: 3, H: 3}, True))
	assert.Equal(t, True, g.At(Coord{W: 3, H: 3}))
}

func TestOutOfRangePanics(t *testing.T) {
	t.Parallel()
	g, err := NewGrid(3, false)
	require.NoError(t, err)
	assert.Panics(t, func() { g.At(Coord{W: 4}) })
	assert.Panics(t, func() { g.Toggle(Coord{H: 2}) })
	assert.Panics(t, func() { g.At(Coord{D: 1}) })
}

func TestMintermRoundTrip(t *testing.T) {
	t.Parallel()
	for n := 2; n <= 5; n++ {
		g, err := NewGrid(n, false)
		require.NoError(t, err)
		seen := make(map[int]bool)
		for _, c := range g.Coords() {
			m := g.Minterm(c)
			assert.False(t, seen[m], "duplicate minterm %d", m)
			seen[m] = true
			back, err := g.CoordOf(m)
			require.NoError(t, err)
			assert.Equal(t, c, back)
		}
		_, err = g.CoordOf(1 << n)
		assert.ErrorIs(t, err, ErrMinterm)
	}
}

func TestMintermGrayOrder(t *testing.T) {
	t.Parallel()
	g, err := NewGrid(4, false)
	require.NoError(t, err)

	// columns and rows read 00 01 11 10
	want := [][]int{
		{0, 1, 3, 2},
		{4, 5, 7, 6},
		{12, 13, 15, 14},
		{8, 9, 11, 10},
	}
	for h, row := range want {
		for w, m := range row {
			assert.Equal(t, m, g.Minterm(Coord{W: w, H: h}), "(%d,%d)", w, h)
		}
	}
}

func TestAdjacentCellsDifferInOneVariable(t *testing.T) {
	t.Parallel()
	g, err := NewGrid(5, false)
	require.NoError(t, err)
	for _, c := range g.Coords() {
		right := g.offset(c, 1, 0, 0)
		down := g.offset(c, 0, 1, 0)
		for _, n := range []Coord{right, down} {
			diff := g.Minterm(c) ^ g.Minterm(n)
			assert.Equal(t, 1, popcount(diff), "%s vs %s", c, n)
		}
	}
}

func popcount(n int) int {
	count := 0
	for ; n != 0; n &= n - 1 {
		count++
	}
	return count
}
