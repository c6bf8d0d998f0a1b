// Package decpomdp builds a Decentralized POMDP by composing one
// action table and one observation table per agent into joint spaces
// (entity.NewJointAction / entity.NewJointObservation over the
// Cartesian product, enumerated with entity.Odometer), then wraps a
// flattened *model.POMDP over those joint spaces. Every existing
// solver (mdpsolve, pomdpsolve, pbvi) operates on the flattened model
// unmodified; DecPOMDP only adds the agent roster and the
// joint-to-per-agent decomposition maps a caller needs to interpret a
// solved policy.
//
// A multi-agent reward typically decomposes as one component per
// agent or per joint concern; build it with reward.NewFactoredWeighted
// before passing it to WithReward.
package decpomdp
