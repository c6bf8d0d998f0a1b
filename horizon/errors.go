// Package: lvlath-decision/horizon
package horizon

import "errors"

// ErrInvalidDiscount names a discount factor outside [0,1]. Finite and
// Infinite clamp their discount into [0,1], and no function in this
// package returns this error.
var ErrInvalidDiscount = errors.New("horizon: discount factor must be in [0,1]")

// ErrInfiniteRequiresSubUnitDiscount is returned by EstimateIterations
// when gamma >= 1, for which the iteration estimate never converges.
// Infinite(gamma) itself only clamps gamma and returns no error.
var ErrInfiniteRequiresSubUnitDiscount = errors.New("horizon: infinite horizon requires discount < 1")

// ErrFiniteRequiresPositiveSteps names a finite horizon of zero steps.
// Finite(0, gamma) returns Infinite(gamma) instead, as a horizon of 0
// denotes Infinite per the input-file convention (spec.md §6), so no
// function in this package returns this error.
var ErrFiniteRequiresPositiveSteps = errors.New("horizon: finite horizon requires at least one step")
