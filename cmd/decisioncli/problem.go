package main

import (
	"github.com/katalvlaran/lvlath-decision/belief"
	"github.com/katalvlaran/lvlath-decision/entity"
	"github.com/katalvlaran/lvlath-decision/horizon"
	"github.com/katalvlaran/lvlath-decision/model"
	"github.com/katalvlaran/lvlath-decision/reward"
	"github.com/katalvlaran/lvlath-decision/tensor"
)

// Parsing the Cassandra-style .pomdp/.dpomdp problem-file grammar
// (spec.md §6) is explicitly out of this library's core scope, so this
// wrapper solves a pair of small built-in demo problems instead,
// exercising the same model/solver/policy plumbing a real parser would
// feed. buildMDPDemo and buildPOMDPDemo mirror mdpsolve and
// pomdpsolve's own test scenarios.

// buildMDPDemo is the two-state, two-action MDP: a1 from s0 moves
// toward s1 with reward, a0 idles; s1 is absorbing.
func buildMDPDemo(steps uint32, discount float64) (*model.MDP, []entity.State, error) {
	const s0h, s1h = 0, 1
	const a0h, a1h = 0, 1

	allocS := entity.NewIndexAllocator()
	s0, err := entity.NewIndexedState(allocS, "s0")
	if err != nil {
		return nil, nil, err
	}
	s1, err := entity.NewIndexedState(allocS, "s1")
	if err != nil {
		return nil, nil, err
	}
	states := entity.NewTable[entity.State]()
	if err := states.Add(s0); err != nil {
		return nil, nil, err
	}
	if err := states.Add(s1); err != nil {
		return nil, nil, err
	}
	states.Seal()

	allocA := entity.NewIndexAllocator()
	a0, err := entity.NewIndexedAction(allocA, "a0")
	if err != nil {
		return nil, nil, err
	}
	a1, err := entity.NewIndexedAction(allocA, "a1")
	if err != nil {
		return nil, nil, err
	}
	actions := entity.NewTable[entity.Action]()
	if err := actions.Add(a0); err != nil {
		return nil, nil, err
	}
	if err := actions.Add(a1); err != nil {
		return nil, nil, err
	}
	actions.Seal()

	tr, err := tensor.NewDenseTransition(2, 2)
	if err != nil {
		return nil, nil, err
	}
	if err := tr.Set(s0h, a0h, s0h, 0.8); err != nil {
		return nil, nil, err
	}
	if err := tr.Set(s0h, a0h, s1h, 0.2); err != nil {
		return nil, nil, err
	}
	if err := tr.Set(s0h, a1h, s0h, 0.2); err != nil {
		return nil, nil, err
	}
	if err := tr.Set(s0h, a1h, s1h, 0.8); err != nil {
		return nil, nil, err
	}
	if err := tr.Set(s1h, a0h, s1h, 1.0); err != nil {
		return nil, nil, err
	}
	if err := tr.Set(s1h, a1h, s1h, 1.0); err != nil {
		return nil, nil, err
	}

	r, err := reward.NewDenseSAS(2, 2)
	if err != nil {
		return nil, nil, err
	}
	if err := r.Set(s0h, a1h, s1h, 1.0); err != nil {
		return nil, nil, err
	}

	h := horizon.Finite(steps, discount)
	if steps == 0 {
		h = horizon.Infinite(discount)
	}

	m, err := model.NewMDP(
		model.WithMDPStates(states),
		model.WithMDPActions(actions),
		model.WithMDPTransition(tr),
		model.WithMDPReward(r),
		model.WithMDPHorizon(h),
	)
	if err != nil {
		return nil, nil, err
	}
	return m, states.All(), nil
}

// buildPOMDPDemo is the classic tiger problem: listen for -1 with
// 0.85 accuracy, or open one of two doors for +10/-100.
func buildPOMDPDemo(steps uint32, discount float64) (*model.POMDP, []entity.State, belief.Belief, error) {
	const left, right = 0, 1
	const listen, openLeft, openRight = 0, 1, 2
	const hearLeft, hearRight = 0, 1

	allocS := entity.NewIndexAllocator()
	sLeft, err := entity.NewIndexedState(allocS, "tiger-left")
	if err != nil {
		return nil, nil, belief.Belief{}, err
	}
	sRight, err := entity.NewIndexedState(allocS, "tiger-right")
	if err != nil {
		return nil, nil, belief.Belief{}, err
	}
	states := entity.NewTable[entity.State]()
	if err := states.Add(sLeft); err != nil {
		return nil, nil, belief.Belief{}, err
	}
	if err := states.Add(sRight); err != nil {
		return nil, nil, belief.Belief{}, err
	}
	states.Seal()

	allocA := entity.NewIndexAllocator()
	aListen, err := entity.NewIndexedAction(allocA, "listen")
	if err != nil {
		return nil, nil, belief.Belief{}, err
	}
	aOpenLeft, err := entity.NewIndexedAction(allocA, "open-left")
	if err != nil {
		return nil, nil, belief.Belief{}, err
	}
	aOpenRight, err := entity.NewIndexedAction(allocA, "open-right")
	if err != nil {
		return nil, nil, belief.Belief{}, err
	}
	actions := entity.NewTable[entity.Action]()
	if err := actions.Add(aListen); err != nil {
		return nil, nil, belief.Belief{}, err
	}
	if err := actions.Add(aOpenLeft); err != nil {
		return nil, nil, belief.Belief{}, err
	}
	if err := actions.Add(aOpenRight); err != nil {
		return nil, nil, belief.Belief{}, err
	}
	actions.Seal()

	allocZ := entity.NewIndexAllocator()
	zLeft, err := entity.NewIndexedObservation(allocZ, "hear-left")
	if err != nil {
		return nil, nil, belief.Belief{}, err
	}
	zRight, err := entity.NewIndexedObservation(allocZ, "hear-right")
	if err != nil {
		return nil, nil, belief.Belief{}, err
	}
	observations := entity.NewTable[entity.Observation]()
	if err := observations.Add(zLeft); err != nil {
		return nil, nil, belief.Belief{}, err
	}
	if err := observations.Add(zRight); err != nil {
		return nil, nil, belief.Belief{}, err
	}
	observations.Seal()

	tr, err := tensor.NewDenseTransition(2, 3)
	if err != nil {
		return nil, nil, belief.Belief{}, err
	}
	for _, s := range []uint32{left, right} {
		for _, a := range []uint32{listen, openLeft, openRight} {
			if err := tr.Set(s, a, s, 1.0); err != nil {
				return nil, nil, belief.Belief{}, err
			}
		}
	}

	obs, err := tensor.NewDenseObservation(3, 2, 2)
	if err != nil {
		return nil, nil, belief.Belief{}, err
	}
	if err := obs.Set(listen, left, hearLeft, 0.85); err != nil {
		return nil, nil, belief.Belief{}, err
	}
	if err := obs.Set(listen, left, hearRight, 0.15); err != nil {
		return nil, nil, belief.Belief{}, err
	}
	if err := obs.Set(listen, right, hearLeft, 0.15); err != nil {
		return nil, nil, belief.Belief{}, err
	}
	if err := obs.Set(listen, right, hearRight, 0.85); err != nil {
		return nil, nil, belief.Belief{}, err
	}
	for _, a := range []uint32{openLeft, openRight} {
		for _, s := range []uint32{left, right} {
			if err := obs.Set(a, s, hearLeft, 0.5); err != nil {
				return nil, nil, belief.Belief{}, err
			}
			if err := obs.Set(a, s, hearRight, 0.5); err != nil {
				return nil, nil, belief.Belief{}, err
			}
		}
	}

	r, err := reward.NewDenseSASZ(2, 3, 2)
	if err != nil {
		return nil, nil, belief.Belief{}, err
	}
	for _, sp := range []uint32{left, right} {
		for _, z := range []uint32{hearLeft, hearRight} {
			if err := r.Set(left, listen, sp, z, -1.0); err != nil {
				return nil, nil, belief.Belief{}, err
			}
			if err := r.Set(right, listen, sp, z, -1.0); err != nil {
				return nil, nil, belief.Belief{}, err
			}
			if err := r.Set(left, openLeft, sp, z, -100.0); err != nil {
				return nil, nil, belief.Belief{}, err
			}
			if err := r.Set(right, openLeft, sp, z, 10.0); err != nil {
				return nil, nil, belief.Belief{}, err
			}
			if err := r.Set(left, openRight, sp, z, 10.0); err != nil {
				return nil, nil, belief.Belief{}, err
			}
			if err := r.Set(right, openRight, sp, z, -100.0); err != nil {
				return nil, nil, belief.Belief{}, err
			}
		}
	}

	b0 := belief.New()
	b0.Set(left, 0.5)
	b0.Set(right, 0.5)

	h := horizon.Finite(steps, discount)
	if steps == 0 {
		h = horizon.Infinite(discount)
	}

	m, err := model.NewPOMDP(
		model.WithPOMDPStates(states),
		model.WithPOMDPActions(actions),
		model.WithPOMDPObservations(observations),
		model.WithPOMDPTransition(tr),
		model.WithPOMDPObservationFn(obs),
		model.WithPOMDPReward(r),
		model.WithPOMDPInitialBelief(b0),
		model.WithPOMDPHorizon(h),
	)
	if err != nil {
		return nil, nil, belief.Belief{}, err
	}
	return m, states.All(), b0, nil
}
