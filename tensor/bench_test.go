package tensor_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-decision/tensor"
)

func BenchmarkDenseTransition_GetSet(b *testing.B) {
	tr, err := tensor.NewDenseTransition(50, 10)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := uint32(i % 50)
		a := uint32(i % 10)
		sp := uint32((i + 1) % 50)
		_ = tr.Set(s, a, sp, 0.5)
		_ = tr.Get(s, a, sp)
	}
}

func BenchmarkSparseTransition_WildcardGet(b *testing.B) {
	tr := tensor.NewSparseTransition()
	tr.SetWildcard(tensor.Any3(), tensor.Any3(), tensor.Any3(), 0.1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.Get(uint32(i), uint32(i), uint32(i))
	}
}
