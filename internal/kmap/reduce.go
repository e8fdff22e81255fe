package kmap

// Reduce drops redundant terms until a full pass removes nothing.
//
// Terms are tested in ascending index order against the list as it stands;
// a removal takes effect immediately and the pass continues at the next
// index, so the element that shifted into the removed slot waits for the
// next pass. A term is redundant when the cover without it is unchanged,
// or, with don't-cares allowed, still holds every True cell.
func Reduce(g *Grid, candidates []Term) ([]Term, []Coord) {
	terms := append([]Term(nil), candidates...)
	cover := union(terms)
	required := g.valueSet(True)

	for changed := true; changed; {
		changed = false
		for i := 0; i < len(terms); i++ {
			trial := without(terms, i)
			trialCover := union(trial)
			switch {
			case cover.subsetOf(trialCover):
			case g.dontCare && required.subsetOf(trialCover):
			default:
				continue
			}
			terms, cover, changed = trial, trialCover, true
		}
	}
	return terms, g.coverOf(cover)
}

func without(terms []Term, i int) []Term {
	out := make([]Term, 0, len(terms)-1)
	out = append(out, terms[:i]...)
	return append(out, terms[i+1:]...)
}
