// Package pomdpsolve implements exact POMDP value iteration over
// belief-space alpha vectors: finite horizon commits every
// intermediate Gamma^t; infinite horizon runs a fixed or
// horizon.EstimateIterations-derived number of backups and commits
// only the final Gamma. Each backup step folds per-action,
// per-observation projections together via alpha.CrossSum and removes
// dominated vectors with alpha.Prune.
package pomdpsolve
