// Package model aggregates the components of an MDP or POMDP — states,
// actions, observations, transition/observation functions, reward,
// initial belief, and horizon — behind functional-option constructors
// that validate completeness before a solver ever sees the model.
package model
