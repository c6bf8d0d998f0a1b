package reward

// Factored is an ordered vector of SASZ-arity reward components,
// R1..Rk, evaluated independently — used as the building block for
// FactoredWeighted. Constructing a Factored with a non-SASZ component
// is a contract violation (ErrRewardArityMismatch): spec.md §3 defines
// factored components as "each of type SASZ".
type Factored struct {
	components []Reward
}

// NewFactored validates that every component has SASZ arity and
// returns a Factored wrapping them in order.
func NewFactored(components ...Reward) (*Factored, error) {
	for _, c := range components {
		if c.Arity() != SASZ {
			return nil, ErrRewardArityMismatch
		}
	}
	return &Factored{components: append([]Reward(nil), components...)}, nil
}

// Components returns the ordered component rewards.
func (f *Factored) Components() []Reward { return f.components }

// FactoredWeighted evaluates as the weighted sum of its components:
// R(s,a,s',z) = sum_i w_i * R_i(s,a,s',z). Min/Max are the
// corresponding weighted sums of each component's Min/Max (spec.md
// §4.4: "analogous for max").
type FactoredWeighted struct {
	factored *Factored
	weights  []float64
}

// NewFactoredWeighted constructs a FactoredWeighted reward. Returns
// ErrWeightDimensionMismatch if len(weights) != len(components).
func NewFactoredWeighted(components []Reward, weights []float64) (*FactoredWeighted, error) {
	f, err := NewFactored(components...)
	if err != nil {
		return nil, err
	}
	if len(weights) != len(f.components) {
		return nil, ErrWeightDimensionMismatch
	}
	return &FactoredWeighted{factored: f, weights: append([]float64(nil), weights...)}, nil
}

func (fw *FactoredWeighted) Arity() Arity { return SASZ }

func (fw *FactoredWeighted) Get(s, a, sp, z uint32) float64 {
	var sum float64
	for i, c := range fw.factored.components {
		sum += fw.weights[i] * c.Get(s, a, sp, z)
	}
	return sum
}

func (fw *FactoredWeighted) Min() float64 {
	var sum float64
	for i, c := range fw.factored.components {
		sum += fw.weights[i] * c.Min()
	}
	return sum
}

func (fw *FactoredWeighted) Max() float64 {
	var sum float64
	for i, c := range fw.factored.components {
		sum += fw.weights[i] * c.Max()
	}
	return sum
}

// Weights returns the weight vector w.
func (fw *FactoredWeighted) Weights() []float64 { return fw.weights }
