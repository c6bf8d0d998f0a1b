package tensor_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-decision/tensor"
)

// ExampleSparseTransition demonstrates wildcard precedence: the most
// specific matching key wins.
func ExampleSparseTransition() {
	tr := tensor.NewSparseTransition()
	tr.SetWildcard(tensor.Any3(), tensor.Any3(), tensor.Any3(), 0.0)
	tr.SetWildcard(tensor.Concrete(0), tensor.Concrete(0), tensor.Any3(), 1.0)
	tr.SetWildcard(tensor.Concrete(0), tensor.Concrete(0), tensor.Concrete(0), 0.8)

	fmt.Println(tr.Get(0, 0, 0))
	fmt.Println(tr.Get(0, 0, 1))
	fmt.Println(tr.Get(5, 5, 5))
	// Output:
	// 0.8
	// 1
	// 0
}
