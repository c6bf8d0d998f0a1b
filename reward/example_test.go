package reward_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-decision/reward"
)

// ExampleFactoredWeighted demonstrates combining two SASZ-arity reward
// components into a single weighted reward.
func ExampleFactoredWeighted() {
	cost, _ := reward.NewDenseSASZ(1, 1, 1)
	_ = cost.Set(0, 0, 0, 0, -1.0)

	goalBonus, _ := reward.NewDenseSASZ(1, 1, 1)
	_ = goalBonus.Set(0, 0, 0, 0, 20.0)

	fw, _ := reward.NewFactoredWeighted(
		[]reward.Reward{cost, goalBonus},
		[]float64{1.0, 0.5},
	)

	fmt.Println(fw.Get(0, 0, 0, 0))
	// Output:
	// 9
}
