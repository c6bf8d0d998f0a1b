package reward_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-decision/reward"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenseS_GetSetAndMinMax(t *testing.T) {
	r, err := reward.NewDenseS(3)
	require.NoError(t, err)

	require.NoError(t, r.Set(0, -1.0))
	require.NoError(t, r.Set(1, 2.0))

	assert.Equal(t, -1.0, r.Get(0, 0, 0, 0))
	assert.Equal(t, 2.0, r.Get(1, 0, 0, 0))
	assert.Equal(t, reward.S, r.Arity())
	assert.Equal(t, -1.0, r.Min())
	assert.Equal(t, 2.0, r.Max())
}

func TestDenseS_BadIndex(t *testing.T) {
	r, err := reward.NewDenseS(2)
	require.NoError(t, err)
	assert.ErrorIs(t, r.Set(5, 1.0), reward.ErrBadIndex)
}

func TestDenseSAS_InvalidDimensions(t *testing.T) {
	_, err := reward.NewDenseSAS(0, 2)
	assert.ErrorIs(t, err, reward.ErrInvalidDimensions)
}

func TestSparseSASZ_WildcardPrecedence(t *testing.T) {
	r := reward.NewSparseSASZ()

	const s1, a1, z1 = 1, 1, 1
	r.Set(reward.Concrete(s1), reward.Any4(), reward.Concrete(s1), reward.Any4(), 3.0)
	r.Set(reward.Any4(), reward.Concrete(a1), reward.Concrete(s1), reward.Any4(), 5.0)

	got := r.Get(s1, a1, s1, z1)
	assert.InDelta(t, 3.0, got, 1e-12)
}

func TestSparseSA_UndefinedReturnsZero(t *testing.T) {
	r := reward.NewSparseSA()
	assert.Equal(t, 0.0, r.Get(9, 9, 0, 0))
}

func TestDenseSA_GetIgnoresUnusedArity(t *testing.T) {
	r, err := reward.NewDenseSA(2, 2)
	require.NoError(t, err)
	require.NoError(t, r.Set(0, 1, 4.0))

	assert.Equal(t, 4.0, r.Get(0, 1, 999, 999))
}
