// Package: lvlath-decision/decpomdp
package decpomdp

import "errors"

// ErrMissingAgents indicates a DecPOMDP was built without an agent
// roster.
var ErrMissingAgents = errors.New("decpomdp: missing agents")

// ErrMissingPerAgentActions indicates no per-agent action tables were
// supplied to build the joint action space.
var ErrMissingPerAgentActions = errors.New("decpomdp: missing per-agent actions")

// ErrMissingPerAgentObservations indicates no per-agent observation
// tables were supplied to build the joint observation space.
var ErrMissingPerAgentObservations = errors.New("decpomdp: missing per-agent observations")

// ErrAgentCountMismatch indicates the number of per-agent action or
// observation tables does not match the agent roster size.
var ErrAgentCountMismatch = errors.New("decpomdp: per-agent table count does not match agent count")

// ErrInvalidModel indicates the underlying POMDP failed validation.
var ErrInvalidModel = errors.New("decpomdp: invalid model")
