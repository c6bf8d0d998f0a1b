// Package: lvlath-decision/policy
package policy

import "errors"

// ErrUndefinedHorizon indicates Action/AlphaVectors was called for a
// horizon step that was never committed.
var ErrUndefinedHorizon = errors.New("policy: no policy defined at this horizon")

// ErrEmptyAlphaSet indicates Action was called against a committed but
// empty alpha-vector set.
var ErrEmptyAlphaSet = errors.New("policy: alpha-vector set at this horizon is empty")
