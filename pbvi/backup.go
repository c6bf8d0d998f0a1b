package pbvi

import (
	"github.com/katalvlaran/lvlath-decision/alpha"
	"github.com/katalvlaran/lvlath-decision/belief"
	"github.com/katalvlaran/lvlath-decision/entity"
	"github.com/katalvlaran/lvlath-decision/reward"
	"github.com/katalvlaran/lvlath-decision/tensor"
)

// gammaAStar builds the single immediate-reward alpha vector for
// action a, shared by every belief-point backup for that action:
//
//	Gamma_{a,*}(s) = sum_sp T(s,a,sp) * sum_z O(a,sp,z) * R(s,a,sp,z)
func gammaAStar(
	states []entity.State,
	observations []entity.Observation,
	T tensor.Transition,
	O tensor.Observation,
	R reward.Reward,
	a entity.Action,
) *alpha.Vector {
	av := alpha.NewWithAction(a.Hash())
	for _, s := range states {
		var immediate float64
		for _, sp := range states {
			var inner float64
			for _, z := range observations {
				inner += O.Get(a.Hash(), sp.Hash(), z.Hash()) * R.Get(s.Hash(), a.Hash(), sp.Hash(), z.Hash())
			}
			immediate += T.Get(s.Hash(), a.Hash(), sp.Hash()) * inner
		}
		av.Set(s.Hash(), immediate)
	}
	return av
}

// beliefPointBackup computes the single alpha-vector that belief-point
// backup (spec.md §4.8) produces for belief b under action a:
//
//	alpha_{b,a}(s) = Gamma_{a,*}(s) + sum_z projection maximizing <alpha', b>
//
// where, for each observation z, the previous horizon's alpha that
// maximizes value at b is projected through T, O, and the discount,
// and the projections are summed (not cross-summed) directly into the
// immediate-reward vector. The result is tagged with a.
func beliefPointBackup(
	states []entity.State,
	observations []entity.Observation,
	T tensor.Transition,
	O tensor.Observation,
	discount float64,
	aStar *alpha.Vector,
	prevGamma []*alpha.Vector,
	a entity.Action,
	b belief.Belief,
) *alpha.Vector {
	out := aStar.Clone()
	out.SetAction(a.Hash())

	for _, z := range observations {
		var best *alpha.Vector
		var bestVal float64
		for _, prevAlpha := range prevGamma {
			projected := alpha.New()
			for _, s := range states {
				var value float64
				for _, sp := range states {
					value += T.Get(s.Hash(), a.Hash(), sp.Hash()) * O.Get(a.Hash(), sp.Hash(), z.Hash()) * prevAlpha.Get(sp.Hash())
				}
				projected.Set(s.Hash(), value*discount)
			}
			val := projected.Dot(b)
			if best == nil || val > bestVal {
				best = projected
				bestVal = val
			}
		}
		if best != nil {
			out = out.Add(best)
			out.SetAction(a.Hash())
		}
	}
	return out
}

// bestAlphaForBelief evaluates beliefPointBackup for every action and
// keeps the value-maximizing result, breaking ties toward the first
// action encountered in actions' order (entity.Table.All's insertion
// order, which callers fix once at model-construction time, so results
// stay reproducible across runs).
func bestAlphaForBelief(
	states []entity.State,
	actions []entity.Action,
	observations []entity.Observation,
	T tensor.Transition,
	O tensor.Observation,
	discount float64,
	aStar map[uint32]*alpha.Vector,
	prevGamma []*alpha.Vector,
	b belief.Belief,
) *alpha.Vector {
	var best *alpha.Vector
	var bestVal float64
	for _, a := range actions {
		candidate := beliefPointBackup(states, observations, T, O, discount, aStar[a.Hash()], prevGamma, a, b)
		val := candidate.Dot(b)
		if best == nil || val > bestVal {
			best = candidate
			bestVal = val
		}
	}
	return best
}
