package pbvi

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/lvlath-decision/alpha"
	"github.com/katalvlaran/lvlath-decision/belief"
	"github.com/katalvlaran/lvlath-decision/entity"
	"github.com/katalvlaran/lvlath-decision/tensor"
)

// ExpansionRule selects how the belief set B grows between update
// rounds.
type ExpansionRule int

const (
	// None stops the outer expansion loop immediately.
	None ExpansionRule = iota
	// RandomBeliefSelection samples a fresh belief on the simplex for
	// every b in B via the sorted-uniform trick.
	RandomBeliefSelection
	// StochasticSimulationRandomAction simulates one step from each
	// b in B under a uniformly random action.
	StochasticSimulationRandomAction
	// StochasticSimulationGreedyAction is the same simulation, but
	// selects the greedy action with probability 1-epsilon.
	StochasticSimulationGreedyAction
	// StochasticSimulationExploratoryAction simulates one step per
	// action and keeps whichever successor belief is farthest (L1)
	// from its nearest neighbor in B union the beliefs added so far.
	StochasticSimulationExploratoryAction
	// GreedyErrorReduction is declared but unimplemented; expand
	// returns ErrNotSupported for this rule.
	GreedyErrorReduction
)

// greedyEpsilon is the exploration probability used by
// StochasticSimulationGreedyAction (spec.md §4.11: "epsilon=0.1").
const greedyEpsilon = 0.1

// expand grows B by one round according to rule, using rnd as the
// sole source of randomness (owned by the caller's Solver, never a
// process-wide generator, so runs are reproducible given a fixed
// seed). gamma is the most recently committed alpha-vector set, needed
// only by StochasticSimulationGreedyAction.
func expand(
	rule ExpansionRule,
	rnd *rand.Rand,
	states []entity.State,
	actions []entity.Action,
	observations []entity.Observation,
	T tensor.Transition,
	O tensor.Observation,
	B []belief.Belief,
	gamma []*alpha.Vector,
) ([]belief.Belief, error) {
	switch rule {
	case None:
		return B, nil
	case RandomBeliefSelection:
		return expandRandomBeliefSelection(rnd, states, B), nil
	case StochasticSimulationRandomAction:
		return expandStochasticSimulationRandomAction(rnd, states, actions, observations, T, O, B), nil
	case StochasticSimulationGreedyAction:
		return expandStochasticSimulationGreedyAction(rnd, states, actions, observations, T, O, B, gamma), nil
	case StochasticSimulationExploratoryAction:
		return expandStochasticSimulationExploratoryAction(rnd, states, actions, observations, T, O, B), nil
	case GreedyErrorReduction:
		return nil, ErrNotSupported
	default:
		return nil, ErrNotSupported
	}
}

// sampleSimplex draws a belief uniformly from the probability simplex
// over states via the sorted-uniform-differences trick (spec.md
// §4.11): sample |S|-1 i.i.d. uniforms, sort them, and take adjacent
// differences (with the implicit endpoints 0 and 1) as the mass on
// each state.
func sampleSimplex(rnd *rand.Rand, states []entity.State) belief.Belief {
	n := len(states)
	cuts := make([]float64, n-1)
	for i := range cuts {
		cuts[i] = rnd.Float64()
	}
	sort.Float64s(cuts)

	b := belief.New()
	var sum float64
	for i, s := range states {
		if i+1 < n {
			var lo float64
			if i > 0 {
				lo = cuts[i-1]
			}
			val := cuts[i] - lo
			sum += val
			b.Set(s.Hash(), val)
		} else {
			b.Set(s.Hash(), 1.0-sum)
		}
	}
	return b
}

// expandRandomBeliefSelection appends one fresh simplex sample per
// existing belief in B.
func expandRandomBeliefSelection(rnd *rand.Rand, states []entity.State, B []belief.Belief) []belief.Belief {
	fresh := make([]belief.Belief, len(B))
	for i := range B {
		fresh[i] = sampleSimplex(rnd, states)
	}
	return append(B, fresh...)
}

// weightedPick draws an index from a discrete distribution given as an
// incremental-mass callback, matching the "sum >= rnd" selection idiom
// used throughout the stochastic expansion rules: draw rnd in [0,1),
// accumulate mass in iteration order, and stop at the first index
// whose cumulative mass reaches rnd.
func weightedPick(rnd *rand.Rand, n int, mass func(i int) float64) int {
	r := rnd.Float64()
	var sum float64
	for i := 0; i < n; i++ {
		sum += mass(i)
		if sum >= r {
			return i
		}
	}
	return n - 1
}

func sampleStateFromBelief(rnd *rand.Rand, states []entity.State, b belief.Belief) entity.State {
	i := weightedPick(rnd, len(states), func(i int) float64 { return b.Get(states[i].Hash()) })
	return states[i]
}

func sampleUniformAction(rnd *rand.Rand, actions []entity.Action) entity.Action {
	i := rnd.Intn(len(actions))
	return actions[i]
}

func sampleNextState(rnd *rand.Rand, T tensor.Transition, states []entity.State, s entity.State, action entity.Action) entity.State {
	i := weightedPick(rnd, len(states), func(i int) float64 { return T.Get(s.Hash(), action.Hash(), states[i].Hash()) })
	return states[i]
}

func sampleObservation(rnd *rand.Rand, O tensor.Observation, action entity.Action, nextState entity.State, observations []entity.Observation) entity.Observation {
	i := weightedPick(rnd, len(observations), func(i int) float64 {
		return O.Get(action.Hash(), nextState.Hash(), observations[i].Hash())
	})
	return observations[i]
}

// simulateStep draws (s~b, s'~T(s,a,.), z~O(a,s',.)) and returns the
// belief-updated successor. A failed belief update (z impossible under
// the sampled action) falls back to cloning b unchanged — this can
// only happen from floating-point rounding at the simplex edges, since
// z was itself sampled from O's own distribution.
func simulateStep(
	rnd *rand.Rand,
	states []entity.State,
	observations []entity.Observation,
	T tensor.Transition,
	O tensor.Observation,
	b belief.Belief,
	action entity.Action,
) belief.Belief {
	s := sampleStateFromBelief(rnd, states, b)
	nextState := sampleNextState(rnd, T, states, s, action)
	observation := sampleObservation(rnd, O, action, nextState, observations)

	stateHashes := make([]uint32, len(states))
	for i, st := range states {
		stateHashes[i] = st.Hash()
	}
	updated, err := b.Update(action.Hash(), observation.Hash(), T, O, stateHashes)
	if err != nil {
		return b.Clone()
	}
	return updated
}

func expandStochasticSimulationRandomAction(
	rnd *rand.Rand,
	states []entity.State,
	actions []entity.Action,
	observations []entity.Observation,
	T tensor.Transition,
	O tensor.Observation,
	B []belief.Belief,
) []belief.Belief {
	fresh := make([]belief.Belief, len(B))
	for i, b := range B {
		action := sampleUniformAction(rnd, actions)
		fresh[i] = simulateStep(rnd, states, observations, T, O, b, action)
	}
	return append(B, fresh...)
}

// greedyAction returns the action tagged on the gamma vector that
// maximizes value at b, ties broken toward the first maximizer found.
func greedyAction(gamma []*alpha.Vector, b belief.Belief, actions []entity.Action) entity.Action {
	var best entity.Action
	var bestVal float64
	found := false
	for _, av := range gamma {
		hash, ok := av.Action()
		if !ok {
			continue
		}
		val := av.Dot(b)
		if !found || val > bestVal {
			for _, a := range actions {
				if a.Hash() == hash {
					best = a
					break
				}
			}
			bestVal = val
			found = true
		}
	}
	if !found {
		return actions[0]
	}
	return best
}

func expandStochasticSimulationGreedyAction(
	rnd *rand.Rand,
	states []entity.State,
	actions []entity.Action,
	observations []entity.Observation,
	T tensor.Transition,
	O tensor.Observation,
	B []belief.Belief,
	gamma []*alpha.Vector,
) []belief.Belief {
	fresh := make([]belief.Belief, len(B))
	for i, b := range B {
		var action entity.Action
		if rnd.Float64() < greedyEpsilon {
			action = sampleUniformAction(rnd, actions)
		} else {
			action = greedyAction(gamma, b, actions)
		}
		fresh[i] = simulateStep(rnd, states, observations, T, O, b, action)
	}
	return append(B, fresh...)
}

func l1Distance(states []entity.State, a, b belief.Belief) float64 {
	var sum float64
	for _, s := range states {
		sum += math.Abs(a.Get(s.Hash()) - b.Get(s.Hash()))
	}
	return sum
}

// nearestNeighborDistance returns the smallest L1 distance from
// candidate to any belief in pools (concatenated in order).
func nearestNeighborDistance(states []entity.State, candidate belief.Belief, pools ...[]belief.Belief) float64 {
	min := math.Inf(1)
	for _, pool := range pools {
		for _, bp := range pool {
			d := l1Distance(states, candidate, bp)
			if d < min {
				min = d
			}
		}
	}
	return min
}

func expandStochasticSimulationExploratoryAction(
	rnd *rand.Rand,
	states []entity.State,
	actions []entity.Action,
	observations []entity.Observation,
	T tensor.Transition,
	O tensor.Observation,
	B []belief.Belief,
) []belief.Belief {
	fresh := make([]belief.Belief, 0, len(B))
	for _, b := range B {
		var chosen belief.Belief
		chosenSet := false
		bestDist := math.Inf(-1)
		for _, action := range actions {
			candidate := simulateStep(rnd, states, observations, T, O, b, action)
			dist := nearestNeighborDistance(states, candidate, B, fresh)
			if dist > bestDist {
				bestDist = dist
				chosen = candidate
				chosenSet = true
			}
		}
		if chosenSet {
			fresh = append(fresh, chosen)
		}
	}
	return append(B, fresh...)
}
