// Package: lvlath-decision/model
package model

import "errors"

// ErrMissingStates indicates a model was built without a state table.
var ErrMissingStates = errors.New("model: states table is required")

// ErrMissingActions indicates a model was built without an action table.
var ErrMissingActions = errors.New("model: actions table is required")

// ErrMissingObservations indicates a POMDP-class model was built
// without an observation table.
var ErrMissingObservations = errors.New("model: observations table is required for a POMDP")

// ErrMissingTransition indicates a model was built without a
// transition function.
var ErrMissingTransition = errors.New("model: transition function is required")

// ErrMissingObservationFn indicates a POMDP-class model was built
// without an observation function.
var ErrMissingObservationFn = errors.New("model: observation function is required for a POMDP")

// ErrMissingReward indicates a model was built without a reward
// function.
var ErrMissingReward = errors.New("model: reward function is required")

// ErrMissingInitialBelief indicates a POMDP-class model was built
// without an initial belief.
var ErrMissingInitialBelief = errors.New("model: initial belief is required for a POMDP")

// ErrInvalidDiscount indicates an infinite-horizon model was built
// with a discount factor >= 1, which never converges.
var ErrInvalidDiscount = errors.New("model: infinite horizon requires a discount factor in [0,1)")
