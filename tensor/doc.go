// Package tensor implements the transition tensor T(s,a,s') and the
// observation tensor O(a,s',z), each in two interchangeable
// representations behind a small interface (Transition / Observation):
//
//	Dense  — row-major float32 array indexed by indexed-entity hashes;
//	         the dominant memory consumer of a planning model.
//	Sparse — wildcard-aware map keyed by a mix of concrete entity
//	         hashes and Any3() wildcards, resolved by a fixed
//	         most-specific-first precedence rule (see wildcard.go).
//
// Both representations return 0 for an undefined entry rather than an
// error, matching the "undefined = 0" convention of the Cassandra
// problem-file format.
package tensor
