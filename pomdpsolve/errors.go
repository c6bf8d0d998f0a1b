// Package: lvlath-decision/pomdpsolve
package pomdpsolve

import "errors"

// ErrInvalidModel indicates Solve was given a POMDP that failed
// model.Validate.
var ErrInvalidModel = errors.New("pomdpsolve: invalid model")
