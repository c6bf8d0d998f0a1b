package alpha_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-decision/alpha"
	"github.com/katalvlaran/lvlath-decision/belief"
)

// ExampleVector_Dot shows evaluating a belief under an alpha vector.
func ExampleVector_Dot() {
	v := alpha.New()
	v.Set(0, 4.0)
	v.Set(1, -2.0)

	b := belief.New()
	b.Set(0, 0.5)
	b.Set(1, 0.5)

	fmt.Println(v.Dot(b))
	// Output:
	// 1
}
