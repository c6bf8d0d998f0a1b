// Package reward implements the arity-polymorphic reward function R
// used by both MDP and POMDP models: variants S, SA, SAS, and SASZ,
// each available in a dense-array and a sparse-wildcard-map form, plus
// a factored composition (Factored / FactoredWeighted) for Dec-POMDP
// models whose reward decomposes into per-concern components.
//
// Every variant tracks a running Min/Max as values are assigned, for
// use by the horizon.EstimateIterations estimator.
package reward

// Arity identifies how many of (s,a,s',z) a reward variant actually
// keys on. Get(s,a,sp,z) is the canonical accessor on every variant;
// lower-arity variants ignore the slots beyond their own arity.
type Arity int

const (
	// S is state-only reward: R(s).
	S Arity = iota
	// SA is state-action reward: R(s,a).
	SA
	// SAS is state-action-state reward: R(s,a,s').
	SAS
	// SASZ is the full state-action-state-observation reward:
	// R(s,a,s',z).
	SASZ
)

// String renders the arity as used in the problem-file grammar.
func (a Arity) String() string {
	switch a {
	case S:
		return "S"
	case SA:
		return "SA"
	case SAS:
		return "SAS"
	case SASZ:
		return "SASZ"
	default:
		return "unknown"
	}
}

// Reward is the uniform public contract for every reward variant,
// flat or factored.
type Reward interface {
	// Arity reports which variant this is.
	Arity() Arity
	// Get is the canonical accessor; lower-arity variants ignore the
	// slots beyond their own arity.
	Get(s, a, sp, z uint32) float64
	// Min and Max report the running extremes observed across every
	// Set call (or, for Factored, the weighted combination thereof).
	Min() float64
	Max() float64
}

// minMaxTracker is embedded by every flat variant to maintain Rmin/Rmax
// as values are assigned (spec.md §4.4: "Tracks running min Rmin and
// max Rmax ... updated on every set").
type minMaxTracker struct {
	min, max     float64
	initialized  bool
}

func (t *minMaxTracker) observe(v float64) {
	if !t.initialized {
		t.min, t.max = v, v
		t.initialized = true
		return
	}
	if v < t.min {
		t.min = v
	}
	if v > t.max {
		t.max = v
	}
}

func (t *minMaxTracker) Min() float64 { return t.min }
func (t *minMaxTracker) Max() float64 { return t.max }
