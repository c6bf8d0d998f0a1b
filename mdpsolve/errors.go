// Package: lvlath-decision/mdpsolve
package mdpsolve

import "errors"

// ErrInvalidModel indicates Solve was given an MDP that failed
// model.Validate (missing component, or gamma >= 1 on infinite
// horizon).
var ErrInvalidModel = errors.New("mdpsolve: invalid model")
