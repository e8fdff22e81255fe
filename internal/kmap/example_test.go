package kmap_test

import (
	"fmt"

	"github.com/gnoswap-labs/kmap/internal/kmap"
)

func ExampleMap_Solve() {
	m, err := kmap.New(3)
	if err != nil {
		panic(err)
	}
	// top row, columns 3 and 0 are adjacent across the edge
	m.Toggle(kmap.Coord{W: 3, H: 0})
	m.Toggle(kmap.Coord{W: 0, H: 0})

	res := m.Solve()
	for _, t := range res.Terms {
		fmt.Println(t.Literals(m.Grid()))
	}
	fmt.Println(res.Cover)
	// Output:
	// [0 - 0]
	// [(0,0,0) (3,0,0)]
}
