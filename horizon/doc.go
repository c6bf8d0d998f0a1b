// Package horizon models planning depth as a tagged union of a finite
// step count or an infinite discounted horizon, and provides the
// shared infinite-horizon iteration estimator (spec.md §4.5) consumed
// by both pomdpsolve and pbvi.
package horizon
