package belief

import (
	"github.com/katalvlaran/lvlath-decision/tensor"
)

// Belief is a probability distribution over states, stored sparsely:
// entries absent from the map carry implicit probability 0. This
// mirrors tensor's sparse representation — a belief over a
// million-state factored domain need not materialize every entry.
type Belief struct {
	mass map[uint32]float64
}

// New returns an empty belief (all mass implicitly 0; callers must Set
// at least one entry and Normalize before using it as a distribution).
func New() Belief {
	return Belief{mass: make(map[uint32]float64)}
}

// Set assigns b(s) = p directly, bypassing normalization.
func (b Belief) Set(s uint32, p float64) {
	b.mass[s] = p
}

// Get returns b(s), or 0 if s is absent.
func (b Belief) Get(s uint32) float64 {
	return b.mass[s]
}

// Len reports how many states carry explicit (possibly zero) mass. A
// Belief returned by New() with nothing Set on it has Len() == 0.
func (b Belief) Len() int {
	return len(b.mass)
}

// Clone returns an independent copy: mutating the clone never affects
// the receiver.
func (b Belief) Clone() Belief {
	cp := make(map[uint32]float64, len(b.mass))
	for s, p := range b.mass {
		cp[s] = p
	}
	return Belief{mass: cp}
}

// Normalize scales every entry so the belief sums to 1. Returns
// ErrUnnormalizableBelief if the total mass is zero.
func (b Belief) Normalize() error {
	var sum float64
	for _, p := range b.mass {
		sum += p
	}
	if sum == 0 {
		return ErrUnnormalizableBelief
	}
	for s, p := range b.mass {
		b.mass[s] = p / sum
	}
	return nil
}

// RenormalizeAfterUpdate is Normalize under the name spec.md uses for
// the post-Bellman-filter step; renormalizing an already-normalized
// belief is idempotent.
func (b Belief) RenormalizeAfterUpdate() error {
	return b.Normalize()
}

// Dense materializes the belief as a dense vector aligned to the given
// state ordering, for algorithms (PBVI's simplex sampling, alpha-vector
// dot products) that need table-order alignment rather than sparse
// lookups.
func (b Belief) Dense(states []uint32) []float64 {
	out := make([]float64, len(states))
	for i, s := range states {
		out[i] = b.Get(s)
	}
	return out
}

// FromDense builds a Belief from a dense vector aligned to states.
func FromDense(states []uint32, dense []float64) Belief {
	b := New()
	for i, s := range states {
		if i >= len(dense) {
			break
		}
		if dense[i] != 0 {
			b.Set(s, dense[i])
		}
	}
	return b
}

// Update performs the Bayes filter belief update:
//
//	b'(s') = eta * O(a,s',z) * sum_s T(s,a,s') b(s)
//
// normalized over the given state set so the result sums to 1. Returns
// ErrImpossibleObservation if the unnormalized posterior is entirely
// zero (z has probability 0 from b under a).
func (b Belief) Update(a, z uint32, T tensor.Transition, O tensor.Observation, states []uint32) (Belief, error) {
	next := New()
	var total float64
	for _, sp := range states {
		var predicted float64
		for s, p := range b.mass {
			if p == 0 {
				continue
			}
			predicted += T.Get(s, a, sp) * p
		}
		if predicted == 0 {
			continue
		}
		weighted := O.Get(a, sp, z) * predicted
		if weighted == 0 {
			continue
		}
		next.Set(sp, weighted)
		total += weighted
	}
	if total == 0 {
		return Belief{}, ErrImpossibleObservation
	}
	if err := next.Normalize(); err != nil {
		return Belief{}, err
	}
	return next, nil
}
