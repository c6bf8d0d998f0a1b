// Package lvlathdecision is your in-memory workbench for building and
// solving sequential decision problems in Go.
//
// 🚀 What is lvlath-decision?
//
//	A dependency-light library that brings together:
//
//	  • Entity tables: named/indexed/joint states, actions, observations, agents
//	  • Tensor storage: dense arrays and sparse wildcard maps for T, O, and reward
//	  • Alpha-vector algebra: cross-sum, dominance pruning, best-action lookup
//	  • Classic solvers: MDP value iteration, exact POMDP value iteration, PBVI
//
// ✨ Why choose lvlath-decision?
//
//   - Beginner-friendly — minimal API, clear, intuitive naming
//   - Dense or sparse — dense T/O arrays hold float32, sparse maps and rewards hold float64
//   - Extensible — functional options on every model and solver constructor
//   - Pure Go — no cgo, deterministic RNG seeding throughout
//
// Under the hood, everything is organized under focused subpackages:
//
//	entity/      — Table[T] and the state/action/observation/agent handles
//	tensor/      — dense and sparse transition (T) and observation (O) storage
//	reward/      — SA/SAS/SASZ reward representations, factored and weighted
//	alpha/       — alpha-vector cross-sum, pruning, and belief dot products
//	belief/      — belief-state type and the Bayes filter update
//	horizon/     — finite/infinite discounted horizon and iteration estimation
//	model/       — the MDP and POMDP aggregate model types
//	policy/      — horizon-indexed policies and the plain-text writer
//	mdpsolve/    — fully observable value iteration
//	pomdpsolve/  — exact POMDP value iteration over alpha-vector sets
//	pbvi/        — point-based value iteration and its five expansion rules
//	decpomdp/    — decentralized POMDPs, built by composing per-agent joint spaces
//	cmd/decisioncli/ — a thin CLI wrapper solving two built-in demo problems
//
// Quick ASCII sketch of the pipeline:
//
//	entity tables -> tensors/reward -> model.{MDP,POMDP} -> solver -> policy
//
// Dive into SPEC_FULL.md for the full module-by-module specification
// this library implements.
//
//	go get github.com/katalvlaran/lvlath-decision
package lvlathdecision
