package policy

import (
	"github.com/katalvlaran/lvlath-decision/alpha"
	"github.com/katalvlaran/lvlath-decision/belief"
)

// POMDP is a horizon-indexed ordered set of alpha vectors Gamma_t. At
// execution, the chosen action at horizon t and belief b is that of
// argmax_{alpha in Gamma_t} <alpha, b>, ties broken by lowest action
// hash to keep execution deterministic across identical runs.
type POMDP struct {
	gamma [][]*alpha.Vector
}

// NewPOMDP returns a POMDP policy with room for the given number of
// horizon steps (use 1 for infinite horizon, where only the final
// Gamma is committed).
func NewPOMDP(steps int) *POMDP {
	if steps < 1 {
		steps = 1
	}
	return &POMDP{gamma: make([][]*alpha.Vector, steps)}
}

// Commit stores the alpha-vector set computed for horizon t, taking
// ownership of the slice.
func (p *POMDP) Commit(t int, set []*alpha.Vector) {
	p.gamma[t] = set
}

// AlphaVectors returns the committed set at horizon t.
func (p *POMDP) AlphaVectors(t int) ([]*alpha.Vector, error) {
	if t < 0 || t >= len(p.gamma) {
		return nil, ErrUndefinedHorizon
	}
	if p.gamma[t] == nil {
		return nil, ErrUndefinedHorizon
	}
	return p.gamma[t], nil
}

// Action returns the action prescribed at horizon t for belief b: the
// action tagged on the alpha vector maximizing <alpha, b>.
func (p *POMDP) Action(t int, b belief.Belief) (uint32, error) {
	set, err := p.AlphaVectors(t)
	if err != nil {
		return 0, err
	}
	if len(set) == 0 {
		return 0, ErrEmptyAlphaSet
	}

	bestValue := set[0].Dot(b)
	bestAction, _ := set[0].Action()
	for _, av := range set[1:] {
		v := av.Dot(b)
		act, _ := av.Action()
		if v > bestValue || (v == bestValue && act < bestAction) {
			bestValue = v
			bestAction = act
		}
	}
	return bestAction, nil
}

// Horizons reports how many horizon slots this policy holds.
func (p *POMDP) Horizons() int {
	return len(p.gamma)
}
