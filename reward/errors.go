// Package: lvlath-decision/reward
package reward

import "errors"

// ErrRewardArityMismatch is returned by NewFactored when a component
// reward's Arity() is not SASZ.
var ErrRewardArityMismatch = errors.New("reward: arity mismatch")

// ErrWeightDimensionMismatch indicates a Factored/FactoredWeighted
// reward was constructed with len(weights) != len(components).
var ErrWeightDimensionMismatch = errors.New("reward: weight count does not match component count")

// ErrInvalidDimensions indicates a dense reward variant was
// constructed with a non-positive dimension.
var ErrInvalidDimensions = errors.New("reward: dimensions must be > 0")

// ErrBadIndex indicates a dense reward Get/Set used an out-of-range
// index.
var ErrBadIndex = errors.New("reward: index out of range")
