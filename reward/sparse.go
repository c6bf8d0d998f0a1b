package reward

import "github.com/katalvlaran/lvlath-decision/internal/wildcard"

// key4 and the precedence-mask machinery below share the mask
// arithmetic of tensor.resolveSparse3 via internal/wildcard,
// generalized from 3 to 4 slots for the SASZ sparse variant; SAS, SA,
// and S sparse variants reuse the same 4-slot resolver with the
// unused trailing slots always wildcarded, so a single precedence
// implementation serves every reward arity (this is the one shared
// code path spec.md §9 calls for, replacing librbr's
// separately-bugged per-arity wildcard probing).
type key4 struct {
	v          [4]uint32
	wild       [4]bool
}

func newKey4(slots [4]Slot) key4 {
	var k key4
	for i, s := range slots {
		k.v[i] = s.Hash
		k.wild[i] = s.Any
	}
	return k
}

// Slot is one position of a sparse reward key: either a concrete
// entity hash, or Any (the wildcard), mirroring tensor.Slot.
type Slot struct {
	Any  bool
	Hash uint32
}

// Concrete returns a Slot bound to the given hash.
func Concrete(h uint32) Slot { return Slot{Hash: h} }

// Any4 returns a Slot matching any entity in that position.
func Any4() Slot { return Slot{Any: true} }

type mask4 struct {
	wild     [4]bool
	popcount int
}

var precedenceMasks4 = buildPrecedenceMasks4()

func buildPrecedenceMasks4() []mask4 {
	generic := wildcard.Precedence(4)
	masks := make([]mask4, len(generic))
	for i, g := range generic {
		var msk mask4
		copy(msk.wild[:], g.Wild)
		msk.popcount = g.Popcount
		masks[i] = msk
	}

	return masks
}

func resolveSparse4(m map[key4]float64, vals [4]uint32) (float64, bool) {
	for _, msk := range precedenceMasks4 {
		var k key4
		for i := 0; i < 4; i++ {
			k.wild[i] = msk.wild[i]
			if !msk.wild[i] {
				k.v[i] = vals[i]
			}
		}
		if v, ok := m[k]; ok {
			return v, true
		}
	}
	return 0, false
}

func setSparse4(m map[key4]float64, slots [4]Slot, v float64) {
	m[newKey4(slots)] = v
}
