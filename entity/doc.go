// Package entity provides the State, Action, Observation, and Agent
// entity types used throughout the planning engine, plus the generic,
// thread-safe Table that indexes them by stable hash.
//
//	named   — hash derived from label (FNV-1a/32); good for hand-written
//	          problem files that reference entities by name.
//	indexed — hash assigned by an IndexAllocator in construction order;
//	          good for dense-array storage (tensor.Dense, reward.Dense).
//	joint   — hash folded from an ordered sequence of sub-entity hashes;
//	          used by the Dec-POMDP multi-agent variant.
//
// Entities are value types; equality and ordering follow Hash, not
// Label. Table is append-only until Seal is called, after which it is
// treated as read-only by every solver package.
package entity
