// Package reward implements the arity-polymorphic reward function R(s,a,s',z).
//
// Four arities are supported — S, SA, SAS, and SASZ — each in a dense
// (flat-array) and sparse (wildcard-map) representation, following the
// same precedence rule as package tensor: a sparse lookup tries masks
// from fewest wildcards to most, position 0 breaking ties first.
//
// Factored and FactoredWeighted compose an ordered list of SASZ-arity
// rewards into a single reward, for models whose reward decomposes
// into independent per-concern terms (spec.md §4.4).
package reward
