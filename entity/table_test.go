package entity_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlath-decision/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_AddGetLen(t *testing.T) {
	tbl := entity.NewTable[entity.State]()

	s0, err := entity.NewNamedState("healthy")
	require.NoError(t, err)
	s1, err := entity.NewNamedState("sick")
	require.NoError(t, err)

	require.NoError(t, tbl.Add(s0))
	require.NoError(t, tbl.Add(s1))
	assert.Equal(t, 2, tbl.Len())

	got, ok := tbl.GetByHash(s0.Hash())
	require.True(t, ok)
	assert.Equal(t, "healthy", got.Label())
}

func TestTable_DuplicateHash(t *testing.T) {
	tbl := entity.NewTable[entity.State]()
	s0, _ := entity.NewNamedState("a")
	require.NoError(t, tbl.Add(s0))

	err := tbl.Add(s0)
	assert.True(t, errors.Is(err, entity.ErrDuplicateHash))
}

func TestTable_RemoveUnknown(t *testing.T) {
	tbl := entity.NewTable[entity.State]()
	err := tbl.Remove(12345)
	assert.True(t, errors.Is(err, entity.ErrUnknownEntity))
}

func TestTable_SealBlocksAdd(t *testing.T) {
	tbl := entity.NewTable[entity.State]()
	s0, _ := entity.NewNamedState("a")
	require.NoError(t, tbl.Add(s0))

	tbl.Seal()
	assert.True(t, tbl.Sealed())

	s1, _ := entity.NewNamedState("b")
	err := tbl.Add(s1)
	assert.True(t, errors.Is(err, entity.ErrTableSealed))

	err = tbl.Remove(s0.Hash())
	assert.True(t, errors.Is(err, entity.ErrTableSealed))
}

func TestTable_InsertionOrderPreserved(t *testing.T) {
	tbl := entity.NewTable[entity.Action]()
	labels := []string{"listen", "open-left", "open-right"}
	for _, l := range labels {
		a, err := entity.NewNamedAction(l)
		require.NoError(t, err)
		require.NoError(t, tbl.Add(a))
	}

	all := tbl.All()
	require.Len(t, all, 3)
	for i, l := range labels {
		assert.Equal(t, l, all[i].Label())
	}
}

func TestIndexedEntities_MonotonicAndResettable(t *testing.T) {
	alloc := entity.NewIndexAllocator()
	s0, err := entity.NewIndexedState(alloc, "s0")
	require.NoError(t, err)
	s1, err := entity.NewIndexedState(alloc, "s1")
	require.NoError(t, err)

	assert.Equal(t, uint32(0), s0.Hash())
	assert.Equal(t, uint32(1), s1.Hash())

	alloc.Reset()
	s2, err := entity.NewIndexedState(alloc, "s2")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), s2.Hash())
}

func TestJointState_FoldIsOrderSensitive(t *testing.T) {
	a, _ := entity.NewNamedState("a")
	b, _ := entity.NewNamedState("b")

	ab, err := entity.NewJointState(a, b)
	require.NoError(t, err)
	ba, err := entity.NewJointState(b, a)
	require.NoError(t, err)

	assert.NotEqual(t, ab.Hash(), ba.Hash())
	assert.Equal(t, "a|b", ab.Label())
}

func TestNewNamedState_EmptyLabel(t *testing.T) {
	_, err := entity.NewNamedState("")
	assert.True(t, errors.Is(err, entity.ErrEmptyLabel))
}

func TestNewJointState_EmptySubs(t *testing.T) {
	_, err := entity.NewJointState()
	assert.True(t, errors.Is(err, entity.ErrEmptyJoint))
}
