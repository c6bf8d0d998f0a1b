// Package alpha implements the alpha-vector algebra used by exact
// POMDP value iteration and PBVI: Dot (belief value), Add/Subtract,
// CrossSum (the Minkowski-sum Bellman backup step), and Prune
// (dominance pruning of a Gamma set).
package alpha
