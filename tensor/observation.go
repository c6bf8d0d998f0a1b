package tensor

// Observation is the uniform public contract shared by the dense and
// sparse/wildcard representations of O(a,s',z) — structurally
// identical to Transition, but keyed (action, next-state, observation).
//
// Implementations: DenseObservation, SparseObservation.
type Observation interface {
	// Get returns O(a,sp,z), resolving wildcards for sparse tables.
	Get(a, sp, z uint32) float64

	// Set stores p at (a,sp,z), clamped into [0,1].
	Set(a, sp, z uint32, p float64) error

	// PossibleObservations returns every z in observations with
	// Get(a,sp,z) > 0.
	PossibleObservations(a, sp uint32, observations []uint32) []uint32

	// Shape reports (numActions, numStates, numObservations) for
	// dense tables, or (-1,-1,-1) for sparse tables.
	Shape() (numActions, numStates, numObservations int)
}

// DenseObservation is the array-backed representation of O(a,s',z).
type DenseObservation struct {
	d *dense3 // dims: (action, state', observation)
}

// NewDenseObservation allocates a zero-initialized dense observation
// tensor for nActions actions, nStates next-states, nObs observations.
func NewDenseObservation(nActions, nStates, nObs int) (*DenseObservation, error) {
	d, err := newDense3(nActions, nStates, nObs)
	if err != nil {
		return nil, err
	}
	return &DenseObservation{d: d}, nil
}

func (o *DenseObservation) Get(a, sp, z uint32) float64 {
	v, err := o.d.get(int(a), int(sp), int(z))
	if err != nil {
		return 0
	}
	return v
}

func (o *DenseObservation) Set(a, sp, z uint32, p float64) error {
	return o.d.set(int(a), int(sp), int(z), p)
}

func (o *DenseObservation) PossibleObservations(a, sp uint32, _ []uint32) []uint32 {
	var out []uint32
	for z := 0; z < o.d.dimC; z++ {
		if v, err := o.d.get(int(a), int(sp), z); err == nil && v > 0 {
			out = append(out, uint32(z))
		}
	}
	return out
}

func (o *DenseObservation) Shape() (int, int, int) { return o.d.dimA, o.d.dimB, o.d.dimC }

// SparseObservation is the wildcard-map representation of O(a,s',z).
type SparseObservation struct {
	m map[key3]float64
}

// NewSparseObservation returns an empty sparse observation tensor.
func NewSparseObservation() *SparseObservation {
	return &SparseObservation{m: make(map[key3]float64)}
}

func (o *SparseObservation) Get(a, sp, z uint32) float64 {
	v, _ := resolveSparse3(o.m, a, sp, z)
	return v
}

func (o *SparseObservation) Set(a, sp, z uint32, p float64) error {
	setSparse3(o.m, Concrete(a), Concrete(sp), Concrete(z), clampProb(p))
	return nil
}

// SetWildcard stores p at a key that may mix concrete slots and Any3()
// wildcards, clamped into [0,1].
func (o *SparseObservation) SetWildcard(a, sp, z Slot, p float64) {
	setSparse3(o.m, a, sp, z, clampProb(p))
}

func (o *SparseObservation) PossibleObservations(a, sp uint32, observations []uint32) []uint32 {
	var out []uint32
	for _, z := range observations {
		if v, _ := resolveSparse3(o.m, a, sp, z); v > 0 {
			out = append(out, z)
		}
	}
	return out
}

func (o *SparseObservation) Shape() (int, int, int) { return -1, -1, -1 }
