package alpha_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-decision/alpha"
	"github.com/katalvlaran/lvlath-decision/belief"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector_DotProduct(t *testing.T) {
	v := alpha.New()
	v.Set(0, 2.0)
	v.Set(1, 3.0)

	b := belief.New()
	b.Set(0, 0.25)
	b.Set(1, 0.75)

	assert.InDelta(t, 2.0*0.25+3.0*0.75, v.Dot(b), 1e-12)
}

// TestScenarioD_CrossSum reproduces spec.md §8 Scenario D: crossing a
// 2-vector set with a 3-vector set yields 6 vectors, each the
// elementwise sum of one vector from each side.
func TestScenarioD_CrossSum(t *testing.T) {
	a1 := alpha.NewWithAction(7)
	a1.Set(0, 1.0)
	a2 := alpha.NewWithAction(7)
	a2.Set(0, 2.0)

	b1 := alpha.New()
	b1.Set(0, 10.0)
	b2 := alpha.New()
	b2.Set(0, 20.0)
	b3 := alpha.New()
	b3.Set(0, 30.0)

	out := alpha.CrossSum([]*alpha.Vector{a1, a2}, []*alpha.Vector{b1, b2, b3})
	require.Len(t, out, 6)

	sums := make([]float64, 0, 6)
	for _, v := range out {
		sums = append(sums, v.Get(0))
		act, ok := v.Action()
		require.True(t, ok)
		assert.Equal(t, uint32(7), act)
	}
	assert.ElementsMatch(t, []float64{11, 21, 31, 12, 22, 32}, sums)
}

func TestCrossSum_EmptyOperandReturnsCopyOfOther(t *testing.T) {
	v := alpha.New()
	v.Set(0, 5.0)

	out := alpha.CrossSum(nil, []*alpha.Vector{v})
	require.Len(t, out, 1)
	assert.Equal(t, 5.0, out[0].Get(0))
	assert.NotSame(t, v, out[0])
}

// TestScenarioE_DominancePruning reproduces spec.md §8 Scenario E: a
// vector that is pointwise dominated by another across every state in
// the set is removed, while non-dominated vectors survive.
func TestScenarioE_DominancePruning(t *testing.T) {
	dominant := alpha.New()
	dominant.Set(0, 5.0)
	dominant.Set(1, 5.0)

	dominated := alpha.New()
	dominated.Set(0, 1.0)
	dominated.Set(1, 1.0)

	crossing := alpha.New()
	crossing.Set(0, 10.0)
	crossing.Set(1, 0.0)

	out, err := alpha.Prune([]*alpha.Vector{dominant, dominated, crossing}, []uint32{0, 1})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Contains(t, out, dominant)
	assert.Contains(t, out, crossing)
	assert.NotContains(t, out, dominated)
}

func TestPrune_EmptyGammaErrors(t *testing.T) {
	_, err := alpha.Prune(nil, []uint32{0})
	assert.ErrorIs(t, err, alpha.ErrEmptyGamma)
}

func TestVector_SubtractClearsToZeroOnIdentical(t *testing.T) {
	v := alpha.New()
	v.Set(0, 4.0)
	diff := v.Subtract(v.Clone())
	assert.Equal(t, 0.0, diff.Get(0))
	_, ok := diff.Action()
	assert.False(t, ok)
}
