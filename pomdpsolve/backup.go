package pomdpsolve

import (
	"github.com/katalvlaran/lvlath-decision/alpha"
	"github.com/katalvlaran/lvlath-decision/entity"
	"github.com/katalvlaran/lvlath-decision/reward"
	"github.com/katalvlaran/lvlath-decision/tensor"
)

// createGammaAStar builds the single immediate-reward alpha vector for
// action a:
//
//	Gamma_{a,*}(s) = sum_sp T(s,a,sp) * sum_z O(a,sp,z) * R(s,a,sp,z)
func createGammaAStar(
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

// bellmanUpdateCrossSum computes Gamma_a for action a from the
// previous horizon's Gamma^{t-1}, per spec.md §4.8's exact cross-sum
// backup: for each observation z, project every alpha in the previous
// Gamma through T and O and discount by gamma, then fold the resulting
// sets together with the immediate-reward vector via cross-sum.
func bellmanUpdateCrossSum(
	states []entity.State,
	observations []entity.Observation,
	T tensor.Transition,
	O tensor.Observation,
	discount float64,
	gammaAStar []*alpha.Vector,
	prevGamma []*alpha.Vector,
	a entity.Action,
) []*alpha.Vector {
	gammaA := make([]*alpha.Vector, len(gammaAStar))
	for i, v := range gammaAStar {
		gammaA[i] = v.Clone()
	}

	for _, z := range observations {
		gammaAOmega := make([]*alpha.Vector, 0, len(prevGamma))
		for _, prevAlpha := range prevGamma {
			projected := alpha.New()
			for _, s := range states {
				var value float64
				for _, sp := range states {
					value += T.Get(s.Hash(), a.Hash(), sp.Hash()) * O.Get(a.Hash(), sp.Hash(), z.Hash()) * prevAlpha.Get(sp.Hash())
				}
				value *= discount
				projected.Set(s.Hash(), value)
			}
			gammaAOmega = append(gammaAOmega, projected)
		}

		gammaA = alpha.CrossSum(gammaA, gammaAOmega)
	}

	for _, v := range gammaA {
		v.SetAction(a.Hash())
	}
	return gammaA
}
