package kmap

// Fragment is a non-wrapping rectangular piece of a term.
type Fragment struct {
	W, H, D             int
	SizeW, SizeH, SizeD int
}

type run struct {
	start, size int
}

// Fragments splits t into the rectangles it occupies on the unwrapped grid.
// A term crossing a toroidal edge yields one fragment per side.
func (t Term) Fragments(g *Grid) []Fragment {
	cols := make([]bool, g.width)
	rows := make([]bool, g.height)
	levels := make([]bool, g.levels)
	for _, c := range t.Cells {
		cols[c.W] = true
		rows[c.H] = true
		levels[c.D] = true
	}

	var out []Fragment
	for _, dr := range runs(levels) {
		for _, hr := range runs(rows) {
			for _, wr := range runs(cols) {
				out = append(out, Fragment{
					W: wr.start, H: hr.start, D: dr.start,
					SizeW: wr.size, SizeH: hr.size, SizeD: dr.size,
				})
			}
		}
	}
	return out
}

func runs(marks []bool) []run {
	var out []run
	for i := 0; i < len(marks); i++ {
		if !marks[i] {
			continue
		}
		r := run{start: i}
		for i < len(marks) && marks[i] {
			r.size++
			i++
		}
		out = append(out, r)
	}
	return out
}
