package reward

// --- S: state-only reward --------------------------------------------------

// DenseS is the dense-array S-arity reward: R(s).
type DenseS struct {
	minMaxTracker
	d *denseN
}

// NewDenseS allocates a zero-initialized DenseS over nStates states.
func NewDenseS(nStates int) (*DenseS, error) {
	d, err := newDenseN(nStates)
	if err != nil {
		return nil, err
	}
	return &DenseS{d: d}, nil
}

func (r *DenseS) Arity() Arity { return S }
func (r *DenseS) Get(s, _, _, _ uint32) float64 {
	v, err := r.d.get(int(s))
	if err != nil {
		return 0
	}
	return v
}

// Set assigns R(s) = v.
func (r *DenseS) Set(s uint32, v float64) error {
	if err := r.d.set(v, int(s)); err != nil {
		return err
	}
	r.observe(v)
	return nil
}

// SparseS is the sparse-wildcard S-arity reward.
type SparseS struct {
	minMaxTracker
	m map[key4]float64
}

// NewSparseS returns an empty SparseS.
func NewSparseS() *SparseS { return &SparseS{m: make(map[key4]float64)} }

func (r *SparseS) Arity() Arity { return S }
func (r *SparseS) Get(s, _, _, _ uint32) float64 {
	v, _ := resolveSparse4(r.m, [4]uint32{s, 0, 0, 0})
	return v
}

// Set assigns R(s) = v for a concrete or wildcarded s.
func (r *SparseS) Set(s Slot, v float64) {
	setSparse4(r.m, [4]Slot{s, Any4(), Any4(), Any4()}, v)
	r.observe(v)
}

// --- SA: state-action reward ------------------------------------------------

// DenseSA is the dense-array SA-arity reward: R(s,a).
type DenseSA struct {
	minMaxTracker
	d *denseN
}

// NewDenseSA allocates a zero-initialized DenseSA.
func NewDenseSA(nStates, nActions int) (*DenseSA, error) {
	d, err := newDenseN(nStates, nActions)
	if err != nil {
		return nil, err
	}
	return &DenseSA{d: d}, nil
}

func (r *DenseSA) Arity() Arity { return SA }
func (r *DenseSA) Get(s, a, _, _ uint32) float64 {
	v, err := r.d.get(int(s), int(a))
	if err != nil {
		return 0
	}
	return v
}

// Set assigns R(s,a) = v.
func (r *DenseSA) Set(s, a uint32, v float64) error {
	if err := r.d.set(v, int(s), int(a)); err != nil {
		return err
	}
	r.observe(v)
	return nil
}

// SparseSA is the sparse-wildcard SA-arity reward.
type SparseSA struct {
	minMaxTracker
	m map[key4]float64
}

// NewSparseSA returns an empty SparseSA.
func NewSparseSA() *SparseSA { return &SparseSA{m: make(map[key4]float64)} }

func (r *SparseSA) Arity() Arity { return SA }
func (r *SparseSA) Get(s, a, _, _ uint32) float64 {
	v, _ := resolveSparse4(r.m, [4]uint32{s, a, 0, 0})
	return v
}

// Set assigns R(s,a) = v for concrete or wildcarded s,a.
func (r *SparseSA) Set(s, a Slot, v float64) {
	setSparse4(r.m, [4]Slot{s, a, Any4(), Any4()}, v)
	r.observe(v)
}

// --- SAS: state-action-state reward -----------------------------------------

// DenseSAS is the dense-array SAS-arity reward: R(s,a,s').
type DenseSAS struct {
	minMaxTracker
	d *denseN
}

// NewDenseSAS allocates a zero-initialized DenseSAS.
func NewDenseSAS(nStates, nActions int) (*DenseSAS, error) {
	d, err := newDenseN(nStates, nActions, nStates)
	if err != nil {
		return nil, err
	}
	return &DenseSAS{d: d}, nil
}

func (r *DenseSAS) Arity() Arity { return SAS }
func (r *DenseSAS) Get(s, a, sp, _ uint32) float64 {
	v, err := r.d.get(int(s), int(a), int(sp))
	if err != nil {
		return 0
	}
	return v
}

// Set assigns R(s,a,s') = v.
func (r *DenseSAS) Set(s, a, sp uint32, v float64) error {
	if err := r.d.set(v, int(s), int(a), int(sp)); err != nil {
		return err
	}
	r.observe(v)
	return nil
}

// SparseSAS is the sparse-wildcard SAS-arity reward.
type SparseSAS struct {
	minMaxTracker
	m map[key4]float64
}

// NewSparseSAS returns an empty SparseSAS.
func NewSparseSAS() *SparseSAS { return &SparseSAS{m: make(map[key4]float64)} }

func (r *SparseSAS) Arity() Arity { return SAS }
func (r *SparseSAS) Get(s, a, sp, _ uint32) float64 {
	v, _ := resolveSparse4(r.m, [4]uint32{s, a, sp, 0})
	return v
}

// Set assigns R(s,a,s') = v for concrete or wildcarded slots.
func (r *SparseSAS) Set(s, a, sp Slot, v float64) {
	setSparse4(r.m, [4]Slot{s, a, sp, Any4()}, v)
	r.observe(v)
}

// --- SASZ: full-arity reward -------------------------------------------------

// DenseSASZ is the dense-array SASZ-arity reward: R(s,a,s',z).
type DenseSASZ struct {
	minMaxTracker
	d *denseN
}

// NewDenseSASZ allocates a zero-initialized DenseSASZ.
func NewDenseSASZ(nStates, nActions, nObs int) (*DenseSASZ, error) {
	d, err := newDenseN(nStates, nActions, nStates, nObs)
	if err != nil {
		return nil, err
	}
	return &DenseSASZ{d: d}, nil
}

func (r *DenseSASZ) Arity() Arity { return SASZ }
func (r *DenseSASZ) Get(s, a, sp, z uint32) float64 {
	v, err := r.d.get(int(s), int(a), int(sp), int(z))
	if err != nil {
		return 0
	}
	return v
}

// Set assigns R(s,a,s',z) = v.
func (r *DenseSASZ) Set(s, a, sp, z uint32, v float64) error {
	if err := r.d.set(v, int(s), int(a), int(sp), int(z)); err != nil {
		return err
	}
	r.observe(v)
	return nil
}

// SparseSASZ is the sparse-wildcard SASZ-arity reward.
type SparseSASZ struct {
	minMaxTracker
	m map[key4]float64
}

// NewSparseSASZ returns an empty SparseSASZ.
func NewSparseSASZ() *SparseSASZ { return &SparseSASZ{m: make(map[key4]float64)} }

func (r *SparseSASZ) Arity() Arity { return SASZ }
func (r *SparseSASZ) Get(s, a, sp, z uint32) float64 {
	v, _ := resolveSparse4(r.m, [4]uint32{s, a, sp, z})
	return v
}

// Set assigns R(s,a,s',z) = v for concrete or wildcarded slots.
func (r *SparseSASZ) Set(s, a, sp, z Slot, v float64) {
	setSparse4(r.m, [4]Slot{s, a, sp, z}, v)
	r.observe(v)
}
