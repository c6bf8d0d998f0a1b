// Package: lvlath-decision/pbvi
package pbvi

import "errors"

// ErrInvalidModel indicates Solve was given a POMDP that failed
// model.Validate.
var ErrInvalidModel = errors.New("pbvi: invalid model")

// ErrEmptyBeliefSet indicates Solve found no belief points: none were
// seeded into the solver and the model's initial belief B0 is empty
// too (Solve falls back to B0 when no points were seeded).
var ErrEmptyBeliefSet = errors.New("pbvi: empty initial belief set")

// ErrNotSupported indicates the GreedyErrorReduction expansion rule was
// invoked; it is declared by the expansion-rule enumeration but
// deliberately left unimplemented.
var ErrNotSupported = errors.New("pbvi: expansion rule not supported")
