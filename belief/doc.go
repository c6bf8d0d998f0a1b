// Package belief implements sparse probability distributions over
// states, and the Bayes-filter belief update b' = Update(b,a,z) used by
// exact POMDP value iteration and PBVI alike (spec.md §4.7).
package belief
