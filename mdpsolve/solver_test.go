package mdpsolve_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-decision/entity"
	"github.com/katalvlaran/lvlath-decision/horizon"
	"github.com/katalvlaran/lvlath-decision/mdpsolve"
	"github.com/katalvlaran/lvlath-decision/model"
	"github.com/katalvlaran/lvlath-decision/reward"
	"github.com/katalvlaran/lvlath-decision/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarioA_TwoStateMDP reproduces the two-state finite-horizon
// MDP: from s0, action a1 transitions to s1 with probability 0.8 and
// earns reward 1 on that transition; action a0 never earns a reward.
// s1 is absorbing under both actions with zero reward. The optimal
// policy always selects a1 from s0.
func TestScenarioA_TwoStateMDP(t *testing.T) {
	alloc := entity.NewIndexAllocator()
	s0, err := entity.NewIndexedState(alloc, "s0")
	require.NoError(t, err)
	s1, err := entity.NewIndexedState(alloc, "s1")
	require.NoError(t, err)

	states := entity.NewTable[entity.State]()
	require.NoError(t, states.Add(s0))
	require.NoError(t, states.Add(s1))
	states.Seal()

	allocA := entity.NewIndexAllocator()
	a0, err := entity.NewIndexedAction(allocA, "a0")
	require.NoError(t, err)
	a1, err := entity.NewIndexedAction(allocA, "a1")
	require.NoError(t, err)

	actions := entity.NewTable[entity.Action]()
	require.NoError(t, actions.Add(a0))
	require.NoError(t, actions.Add(a1))
	actions.Seal()

	tr, err := tensor.NewDenseTransition(2, 2)
	require.NoError(t, err)
	require.NoError(t, tr.Set(s0.Hash(), a0.Hash(), s0.Hash(), 0.8))
	require.NoError(t, tr.Set(s0.Hash(), a0.Hash(), s1.Hash(), 0.2))
	require.NoError(t, tr.Set(s0.Hash(), a1.Hash(), s0.Hash(), 0.2))
	require.NoError(t, tr.Set(s0.Hash(), a1.Hash(), s1.Hash(), 0.8))
	require.NoError(t, tr.Set(s1.Hash(), a0.Hash(), s1.Hash(), 1.0))
	require.NoError(t, tr.Set(s1.Hash(), a1.Hash(), s1.Hash(), 1.0))

	r, err := reward.NewDenseSAS(2, 2)
	require.NoError(t, err)
	require.NoError(t, r.Set(s0.Hash(), a1.Hash(), s1.Hash(), 1.0))

	m, err := model.NewMDP(
		model.WithMDPStates(states),
		model.WithMDPActions(actions),
		model.WithMDPTransition(tr),
		model.WithMDPReward(r),
		model.WithMDPHorizon(horizon.Finite(3, 1.0)),
	)
	require.NoError(t, err)

	p, err := mdpsolve.New().Solve(m)
	require.NoError(t, err)

	for t2 := 0; t2 < 3; t2++ {
		act, err := p.Action(t2, s0.Hash())
		require.NoError(t, err)
		assert.Equal(t, a1.Hash(), act, "expected a1 from s0 at horizon step %d", t2)
	}
}

func TestSolve_InfiniteHorizonConverges(t *testing.T) {
	alloc := entity.NewIndexAllocator()
	s0, err := entity.NewIndexedState(alloc, "s0")
	require.NoError(t, err)

	states := entity.NewTable[entity.State]()
	require.NoError(t, states.Add(s0))
	states.Seal()

	allocA := entity.NewIndexAllocator()
	a0, err := entity.NewIndexedAction(allocA, "a0")
	require.NoError(t, err)

	actions := entity.NewTable[entity.Action]()
	require.NoError(t, actions.Add(a0))
	actions.Seal()

	tr, err := tensor.NewDenseTransition(1, 1)
	require.NoError(t, err)
	require.NoError(t, tr.Set(s0.Hash(), a0.Hash(), s0.Hash(), 1.0))

	r, err := reward.NewDenseSAS(1, 1)
	require.NoError(t, err)
	require.NoError(t, r.Set(s0.Hash(), a0.Hash(), s0.Hash(), 1.0))

	m, err := model.NewMDP(
		model.WithMDPStates(states),
		model.WithMDPActions(actions),
		model.WithMDPTransition(tr),
		model.WithMDPReward(r),
		model.WithMDPHorizon(horizon.Infinite(0.5)),
	)
	require.NoError(t, err)

	solver := mdpsolve.New()
	p, err := solver.Solve(m)
	require.NoError(t, err)
	assert.Greater(t, solver.Iterations(), 0)

	act, err := p.Action(0, s0.Hash())
	require.NoError(t, err)
	assert.Equal(t, a0.Hash(), act)
}
