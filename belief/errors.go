// Package: lvlath-decision/belief
package belief

import "errors"

// ErrUnnormalizableBelief indicates normalize/renormalize was called on
// a belief whose probability mass sums to zero.
var ErrUnnormalizableBelief = errors.New("belief: cannot normalize a zero-mass belief")

// ErrImpossibleObservation indicates Update produced a zero-mass
// posterior: the given observation has probability 0 under the model
// from the given belief and action.
var ErrImpossibleObservation = errors.New("belief: observation has zero probability from this belief/action")
