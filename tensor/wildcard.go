package tensor

import "github.com/katalvlaran/lvlath-decision/internal/wildcard"

// Slot is one position of a sparse-map key: either a concrete entity
// hash, or Any (the reserved wildcard, spec.md §9's "Key::Any" design
// note — no sentinel singleton entity is ever allocated).
type Slot struct {
	Any  bool
	Hash uint32
}

// Concrete returns a Slot bound to the given hash.
func Concrete(hash uint32) Slot { return Slot{Hash: hash} }

// Any3 returns a Slot matching any entity ("*" in the problem-file
// grammar).
func Any3() Slot { return Slot{Any: true} }

// key3 is the internal comparable map key for a 3-slot sparse tensor.
// Wildcarded positions are represented by wild=true rather than by a
// magic hash value, so real entity hashes never collide with "any".
type key3 struct {
	a, b, c       uint32
	wa, wb, wc    bool
}

func newKey3(a, b, c Slot) key3 {
	return key3{a: a.Hash, b: b.Hash, c: c.Hash, wa: a.Any, wb: b.Any, wc: c.Any}
}

// mask3 describes one of the 8 candidate lookup masks for a concrete
// 3-tuple query: which positions to treat as wildcarded when probing
// the sparse map.
type mask3 struct {
	wa, wb, wc bool
	popcount   int
}

// precedenceMasks is the fixed, precomputed list of all 8 masks for a
// 3-slot key, sorted most-specific first. Computed once at package
// init from the shared wildcard.Precedence helper; lookups only ever
// read this slice.
var precedenceMasks = buildPrecedenceMasks()

func buildPrecedenceMasks() []mask3 {
	generic := wildcard.Precedence(3)
	masks := make([]mask3, len(generic))
	for i, g := range generic {
		masks[i] = mask3{wa: g.Wild[0], wb: g.Wild[1], wc: g.Wild[2], popcount: g.Popcount}
	}

	return masks
}

// resolveSparse3 looks up (a,b,c) in m, trying every wildcard mask in
// most-specific-first precedence order (spec.md §4.3). Returns the
// first defined entry, or (0, false) if none match — callers treat a
// false result as probability 0, matching "undefined = 0" semantics.
func resolveSparse3(m map[key3]float64, a, b, c uint32) (float64, bool) {
	for _, msk := range precedenceMasks {
		k := key3{a: a, b: b, c: c, wa: msk.wa, wb: msk.wb, wc: msk.wc}
		if msk.wa {
			k.a = 0
		}
		if msk.wb {
			k.b = 0
		}
		if msk.wc {
			k.c = 0
		}
		if v, ok := m[k]; ok {
			return v, true
		}
	}

	return 0, false
}

// setSparse3 stores v at the key formed from the given slots (each of
// which may be concrete or Any).
func setSparse3(m map[key3]float64, a, b, c Slot, v float64) {
	m[newKey3(a, b, c)] = v
}
