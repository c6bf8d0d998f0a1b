// Package pbvi implements Point-Based Value Iteration: an approximate
// POMDP solver that restricts the exact backup of pomdpsolve to a
// finite, growable set of sampled belief points B. Two nested loops
// drive the solve: an outer expansion loop that grows B via one of
// five ExpansionRule strategies, and an inner update loop that runs
// belief-point backups, producing exactly |B| alpha vectors per step
// with no dominance pruning between updates.
package pbvi
