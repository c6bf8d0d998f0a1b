package model_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-decision/belief"
	"github.com/katalvlaran/lvlath-decision/entity"
	"github.com/katalvlaran/lvlath-decision/horizon"
	"github.com/katalvlaran/lvlath-decision/model"
	"github.com/katalvlaran/lvlath-decision/reward"
	"github.com/katalvlaran/lvlath-decision/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoStateTables(t *testing.T) (*entity.Table[entity.State], *entity.Table[entity.Action]) {
	t.Helper()
	alloc := entity.NewIndexAllocator()

	states := entity.NewTable[entity.State]()
	s0, err := entity.NewIndexedState(alloc, "s0")
	require.NoError(t, err)
	s1, err := entity.NewIndexedState(alloc, "s1")
	require.NoError(t, err)
	require.NoError(t, states.Add(s0))
	require.NoError(t, states.Add(s1))
	states.Seal()

	actions := entity.NewTable[entity.Action]()
	allocA := entity.NewIndexAllocator()
	a0, err := entity.NewIndexedAction(allocA, "a0")
	require.NoError(t, err)
	require.NoError(t, actions.Add(a0))
	actions.Seal()

	return states, actions
}

func TestNewMDP_RejectsMissingComponents(t *testing.T) {
	_, err := model.NewMDP()
	assert.ErrorIs(t, err, model.ErrMissingStates)
}

func TestNewMDP_ValidModel(t *testing.T) {
	states, actions := twoStateTables(t)

	tr, err := tensor.NewDenseTransition(2, 1)
	require.NoError(t, err)

	r, err := reward.NewDenseSA(2, 1)
	require.NoError(t, err)

	m, err := model.NewMDP(
		model.WithMDPStates(states),
		model.WithMDPActions(actions),
		model.WithMDPTransition(tr),
		model.WithMDPReward(r),
		model.WithMDPHorizon(horizon.Finite(10, 0.9)),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, m.States.Len())
}

func TestNewMDP_AcceptsSubUnitInfiniteHorizonDiscount(t *testing.T) {
	states, actions := twoStateTables(t)
	tr, err := tensor.NewDenseTransition(2, 1)
	require.NoError(t, err)
	r, err := reward.NewDenseSA(2, 1)
	require.NoError(t, err)

	_, err = model.NewMDP(
		model.WithMDPStates(states),
		model.WithMDPActions(actions),
		model.WithMDPTransition(tr),
		model.WithMDPReward(r),
		model.WithMDPHorizon(horizon.Infinite(0.9999999)),
	)
	require.NoError(t, err)
}

func TestNewMDP_RejectsNonConvergentInfiniteHorizon(t *testing.T) {
	states, actions := twoStateTables(t)
	tr, err := tensor.NewDenseTransition(2, 1)
	require.NoError(t, err)
	r, err := reward.NewDenseSA(2, 1)
	require.NoError(t, err)

	_, err = model.NewMDP(
		model.WithMDPStates(states),
		model.WithMDPActions(actions),
		model.WithMDPTransition(tr),
		model.WithMDPReward(r),
		model.WithMDPHorizon(horizon.Infinite(1.0)),
	)
	require.ErrorIs(t, err, model.ErrInvalidDiscount)
}

func TestNewPOMDP_RejectsMissingInitialBelief(t *testing.T) {
	states, actions := twoStateTables(t)
	z := entity.NewTable[entity.Observation]()
	allocZ := entity.NewIndexAllocator()
	obs, err := entity.NewIndexedObservation(allocZ, "z0")
	require.NoError(t, err)
	require.NoError(t, z.Add(obs))
	z.Seal()

	tr, err := tensor.NewDenseTransition(2, 1)
	require.NoError(t, err)
	of, err := tensor.NewDenseObservation(1, 2, 1)
	require.NoError(t, err)
	r, err := reward.NewDenseSASZ(2, 1, 1)
	require.NoError(t, err)

	_, err = model.NewPOMDP(
		model.WithPOMDPStates(states),
		model.WithPOMDPActions(actions),
		model.WithPOMDPObservations(z),
		model.WithPOMDPTransition(tr),
		model.WithPOMDPObservationFn(of),
		model.WithPOMDPReward(r),
		model.WithPOMDPHorizon(horizon.Finite(5, 0.95)),
	)
	assert.ErrorIs(t, err, model.ErrMissingInitialBelief)
}

func TestNewPOMDP_ValidModel(t *testing.T) {
	states, actions := twoStateTables(t)
	z := entity.NewTable[entity.Observation]()
	allocZ := entity.NewIndexAllocator()
	obs, err := entity.NewIndexedObservation(allocZ, "z0")
	require.NoError(t, err)
	require.NoError(t, z.Add(obs))
	z.Seal()

	tr, err := tensor.NewDenseTransition(2, 1)
	require.NoError(t, err)
	of, err := tensor.NewDenseObservation(1, 2, 1)
	require.NoError(t, err)
	r, err := reward.NewDenseSASZ(2, 1, 1)
	require.NoError(t, err)

	b0 := belief.New()
	b0.Set(0, 1.0)

	p, err := model.NewPOMDP(
		model.WithPOMDPStates(states),
		model.WithPOMDPActions(actions),
		model.WithPOMDPObservations(z),
		model.WithPOMDPTransition(tr),
		model.WithPOMDPObservationFn(of),
		model.WithPOMDPReward(r),
		model.WithPOMDPInitialBelief(b0),
		model.WithPOMDPHorizon(horizon.Finite(5, 0.95)),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Observations.Len())
}
