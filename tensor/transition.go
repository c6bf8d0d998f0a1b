package tensor

// Transition is the uniform public contract shared by the dense and
// sparse/wildcard representations of T(s,a,s'): Get/Set operate on
// concrete entity hashes; Successors enumerates next-states with
// strictly positive probability; Shape reports declared dimensions
// (sparse tables report (-1,-1): they have no fixed shape).
//
// Implementations: DenseTransition, SparseTransition.
type Transition interface {
	// Get returns T(s,a,s'), resolving wildcards for sparse tables.
	// Unknown keys return 0 rather than an error (spec.md §4.3).
	Get(s, a, sp uint32) float64

	// Set stores p at (s,a,s'), clamped into [0,1]. Dense tables
	// return ErrBadIndex if any index exceeds the declared shape.
	Set(s, a, sp uint32, p float64) error

	// Successors returns every sp in states with Get(s,a,sp) > 0.
	// states is the full State hash universe in table order; sparse
	// tables need it to know what to enumerate, dense tables ignore
	// it if non-nil and ignore it entirely if nil (using its own
	// declared range instead).
	Successors(s, a uint32, states []uint32) []uint32

	// Shape reports (numStates, numActions) for dense tables, or
	// (-1,-1) for sparse tables.
	Shape() (numStates, numActions int)
}

// DenseTransition is the array-backed representation of T(s,a,s').
// s, a, sp must be indexed-entity hashes in [0,dim).
type DenseTransition struct {
	d *dense3 // dims: (state, action, state')
}

// NewDenseTransition allocates a zero-initialized dense transition
// tensor for nStates states and nActions actions.
func NewDenseTransition(nStates, nActions int) (*DenseTransition, error) {
	d, err := newDense3(nStates, nActions, nStates)
	if err != nil {
		return nil, err
	}
	return &DenseTransition{d: d}, nil
}

func (t *DenseTransition) Get(s, a, sp uint32) float64 {
	v, err := t.d.get(int(s), int(a), int(sp))
	if err != nil {
		return 0
	}
	return v
}

func (t *DenseTransition) Set(s, a, sp uint32, p float64) error {
	return t.d.set(int(s), int(a), int(sp), p)
}

func (t *DenseTransition) Successors(s, a uint32, _ []uint32) []uint32 {
	var out []uint32
	for sp := 0; sp < t.d.dimC; sp++ {
		if v, err := t.d.get(int(s), int(a), sp); err == nil && v > 0 {
			out = append(out, uint32(sp))
		}
	}
	return out
}

func (t *DenseTransition) Shape() (int, int) { return t.d.dimA, t.d.dimB }

// SparseTransition is the wildcard-map representation of T(s,a,s').
// Use SetWildcard to populate entries keyed by a mix of concrete
// entities and Any3() wildcards.
type SparseTransition struct {
	m map[key3]float64
}

// NewSparseTransition returns an empty sparse transition tensor.
func NewSparseTransition() *SparseTransition {
	return &SparseTransition{m: make(map[key3]float64)}
}

func (t *SparseTransition) Get(s, a, sp uint32) float64 {
	v, _ := resolveSparse3(t.m, s, a, sp)
	return v
}

// Set stores a concrete (non-wildcard) entry, clamped into [0,1].
func (t *SparseTransition) Set(s, a, sp uint32, p float64) error {
	setSparse3(t.m, Concrete(s), Concrete(a), Concrete(sp), clampProb(p))
	return nil
}

// SetWildcard stores p at a key that may mix concrete slots and Any3()
// wildcards, clamped into [0,1].
func (t *SparseTransition) SetWildcard(s, a, sp Slot, p float64) {
	setSparse3(t.m, s, a, sp, clampProb(p))
}

func (t *SparseTransition) Successors(s, a uint32, states []uint32) []uint32 {
	var out []uint32
	for _, sp := range states {
		if v, _ := resolveSparse3(t.m, s, a, sp); v > 0 {
			out = append(out, sp)
		}
	}
	return out
}

func (t *SparseTransition) Shape() (int, int) { return -1, -1 }
