// Package policy implements the two policy representations produced
// by this module's solvers: a horizon-indexed State->Action map for
// MDPs, and a horizon-indexed alpha-vector set (Gamma_t) for POMDPs,
// plus the plain-text alpha-vector writer used for the external
// policy file format.
package policy
