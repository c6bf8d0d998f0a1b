// Package mdpsolve implements standard MDP value iteration: finite
// horizon runs a fixed number of Bellman sweeps and records the
// per-step argmax policy; infinite horizon sweeps until the sup-norm
// difference between successive value functions falls below a
// tolerance (default 1e-3).
package mdpsolve
