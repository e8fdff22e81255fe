package kmap

// Contains reports whether every cell of a also belongs to b.
func Contains(a, b Term) bool {
	return a.set.subsetOf(b.set)
}

// FilterMaximal keeps, in their original order, the terms not contained in
// another term that is either strictly larger, or of equal size and earlier
// in the list. The equal-size rule keeps the first of two identical terms.
func FilterMaximal(terms []Term) []Term {
	out := make([]Term, 0, len(terms))
	for i, t := range terms {
		if !subsumed(terms, i, t) {
			out = append(out, t)
		}
	}
	return out
}

func subsumed(terms []Term, i int, t Term) bool {
	for j, o := range terms {
		if j == i || !Contains(t, o) {
			continue
		}
		if o.Len() > t.Len() || j < i {
			return true
		}
	}
	return false
}
