package kmap

import "math/bits"

// cellSet is a set of grid indices. Grids never exceed 32 cells.
type cellSet uint64

func (s cellSet) add(i int) cellSet {
	return s | 1<<uint(i)
}

func (s cellSet) has(i int) bool {
	return s&(1<<uint(i)) != 0
}

// subsetOf reports whether every member of s is in o.
func (s cellSet) subsetOf(o cellSet) bool {
	return s&^o == 0
}

func (s cellSet) len() int {
	return bits.OnesCount64(uint64(s))
}

// indices lists the members in ascending order.
func (s cellSet) indices() []int {
	out := make([]int, 0, s.len())
	for s != 0 {
		i := bits.TrailingZeros64(uint64(s))
		out = append(out, i)
		s &^= 1 << uint(i)
	}
	return out
}
