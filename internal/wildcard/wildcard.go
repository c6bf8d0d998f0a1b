// Package wildcard computes most-specific-first precedence order over
// the wildcard masks of an n-slot sparse key. tensor's 3-slot
// transition/observation keys and reward's 4-slot SASZ keys both
// probe the same shape of problem — "which positions may be treated
// as the wildcard Any, tried in most-specific-first order" — so the
// mask arithmetic lives here once instead of being re-derived per
// arity (spec.md §9's shared-precedence-rule guidance).
package wildcard

import "sort"

// Mask is one candidate lookup mask: Wild[i] is true when slot i is
// treated as wildcarded for this probe.
type Mask struct {
	Wild     []bool
	Popcount int
	weight   int
}

// Precedence returns the 2^n candidate masks for an n-slot key, sorted
// most-specific first: fewer wildcarded positions sort before more,
// and among equally-specific masks position 0 stays concrete longest
// (earlier-position-concrete wins ties), matching spec.md §4.3's
// "most-specific first" rule. Computed fresh per call; callers that
// probe repeatedly should cache the result at package init, as both
// tensor and reward already do.
func Precedence(n int) []Mask {
	total := 1 << uint(n)
	masks := make([]Mask, 0, total)
	for m := 0; m < total; m++ {
		wild := make([]bool, n)
		popcount := 0
		for bit := 0; bit < n; bit++ {
			w := m&(1<<uint(n-1-bit)) != 0
			wild[bit] = w
			if w {
				popcount++
			}
		}
		masks = append(masks, Mask{Wild: wild, Popcount: popcount, weight: m})
	}
	sort.SliceStable(masks, func(i, j int) bool {
		if masks[i].Popcount != masks[j].Popcount {
			return masks[i].Popcount < masks[j].Popcount
		}
		return masks[i].weight < masks[j].weight
	})

	return masks
}
