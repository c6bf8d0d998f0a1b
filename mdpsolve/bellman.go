package mdpsolve

import (
	"math"

	"github.com/katalvlaran/lvlath-decision/entity"
	"github.com/katalvlaran/lvlath-decision/reward"
	"github.com/katalvlaran/lvlath-decision/tensor"
)

// bestActionValue computes, for a single state s, the Bellman optimum
// over actions: Q(s,a) = sum_sp T(s,a,sp) * (R(s,a,sp) + gamma*V[sp]).
// Only the lookahead term is discounted, never the immediate reward.
// It returns the argmax action's hash and its Q value. Ties keep the
// first action encountered in table order, matching the teacher
// solver's strict-greater-than comparison.
func bestActionValue(
	s uint32,
	actions []entity.Action,
	states []entity.State,
	T tensor.Transition,
	R reward.Reward,
	v map[uint32]float64,
	gamma float64,
) (uint32, float64) {
	var bestAction uint32
	bestQ := math.Inf(-1)

	for _, a := range actions {
		var q float64
		for _, sp := range states {
			q += T.Get(s, a.Hash(), sp.Hash()) * (R.Get(s, a.Hash(), sp.Hash(), 0) + gamma*v[sp.Hash()])
		}

		if q > bestQ {
			bestQ = q
			bestAction = a.Hash()
		}
	}
	return bestAction, bestQ
}
