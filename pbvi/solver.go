package pbvi

import (
	"math/rand"

	"github.com/katalvlaran/lvlath-decision/alpha"
	"github.com/katalvlaran/lvlath-decision/belief"
	"github.com/katalvlaran/lvlath-decision/entity"
	"github.com/katalvlaran/lvlath-decision/horizon"
	"github.com/katalvlaran/lvlath-decision/model"
	"github.com/katalvlaran/lvlath-decision/policy"
	"github.com/katalvlaran/lvlath-decision/rng"
)

// Option customizes a Solver.
type Option func(*Solver)

// WithInitialBeliefs seeds the belief set B with the given points,
// copied into B before the first update; expansion only ever appends.
// If never called, Solve seeds B with the model's own initial belief.
func WithInitialBeliefs(beliefs ...belief.Belief) Option {
	return func(s *Solver) {
		s.initialB = make([]belief.Belief, len(beliefs))
		for i, b := range beliefs {
			s.initialB[i] = b.Clone()
		}
	}
}

// WithExpansionRule selects the belief-expansion strategy. Default is
// RandomBeliefSelection.
func WithExpansionRule(rule ExpansionRule) Option {
	return func(s *Solver) { s.rule = rule }
}

// WithExpansionIterations fixes E, the number of outer expansion
// rounds. Default 1.
func WithExpansionIterations(e int) Option {
	return func(s *Solver) {
		if e > 0 {
			s.expansions = e
		}
	}
}

// WithUpdateIterations fixes U, the number of inner update rounds used
// for an infinite-horizon solve, bypassing the §4.5-derived estimate.
// Finite-horizon solves always use the model's own horizon length and
// ignore U.
func WithUpdateIterations(u int) Option {
	return func(s *Solver) { s.updates = u }
}

// WithEpsilon sets the tolerance used to derive U for infinite-horizon
// solves when WithUpdateIterations is not given.
func WithEpsilon(epsilon float64) Option {
	return func(s *Solver) { s.epsilon = epsilon }
}

// WithSeed fixes the solver's random stream for expansion rules that
// sample. The same model, seed, and rule reproduce byte-identical
// policies (spec.md §5's ordering guarantee).
func WithSeed(seed int64) Option {
	return func(s *Solver) { s.seed = seed }
}

// Solver runs Point-Based Value Iteration: an outer expansion loop
// growing the belief set B, around an inner update loop of
// belief-point backups. Each Solver owns its own random stream, never
// a process-wide generator, so concurrent solves never interfere.
type Solver struct {
	rule       ExpansionRule
	expansions int
	updates    int
	epsilon    float64
	seed       int64
	initialB   []belief.Belief
}

// New returns a Solver with RandomBeliefSelection, one expansion
// round, epsilon 1e-3, and the package's default seed.
func New(opts ...Option) *Solver {
	s := &Solver{
		rule:       RandomBeliefSelection,
		expansions: 1,
		epsilon:    1e-3,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve runs PBVI to completion.
func (s *Solver) Solve(m *model.POMDP) (*policy.POMDP, error) {
	if err := m.Validate(); err != nil {
		return nil, ErrInvalidModel
	}

	B := s.initialB
	if len(B) == 0 {
		B = []belief.Belief{m.B0.Clone()}
	}
	if len(B) == 0 {
		return nil, ErrEmptyBeliefSet
	}

	rnd := rng.FromSeed(s.seed)
	states := m.States.All()
	actions := m.Actions.All()
	observations := m.Observations.All()

	aStar := make(map[uint32]*alpha.Vector, len(actions))
	for _, a := range actions {
		aStar[a.Hash()] = gammaAStar(states, observations, m.T, m.O, m.R, a)
	}

	if m.H.IsFinite() {
		return s.solveFinite(m, rnd, states, actions, observations, aStar, B)
	}
	return s.solveInfinite(m, rnd, states, actions, observations, aStar, B)
}

func zeroVectors(n int) []*alpha.Vector {
	out := make([]*alpha.Vector, n)
	for i := range out {
		out[i] = alpha.New()
	}
	return out
}

func backupAll(
	states []entity.State,
	actions []entity.Action,
	observations []entity.Observation,
	m *model.POMDP,
	aStar map[uint32]*alpha.Vector,
	prevGamma []*alpha.Vector,
	B []belief.Belief,
) []*alpha.Vector {
	out := make([]*alpha.Vector, len(B))
	for i, b := range B {
		out[i] = bestAlphaForBelief(states, actions, observations, m.T, m.O, m.H.Discount(), aStar, prevGamma, b)
	}
	return out
}

func (s *Solver) solveFinite(
	m *model.POMDP,
	rnd *rand.Rand,
	states []entity.State,
	actions []entity.Action,
	observations []entity.Observation,
	aStar map[uint32]*alpha.Vector,
	initialB []belief.Belief,
) (*policy.POMDP, error) {
	B := make([]belief.Belief, len(initialB))
	copy(B, initialB)

	horizonSteps := int(m.H.Steps())
	p := policy.NewPOMDP(horizonSteps)

	prevGamma := zeroVectors(len(B))
	for e := 0; e < s.expansions; e++ {
		for t := 0; t < horizonSteps; t++ {
			current := backupAll(states, actions, observations, m, aStar, prevGamma, B)
			p.Commit(t, current)
			prevGamma = current
		}

		if s.rule == None {
			break
		}
		newB, err := expand(s.rule, rnd, states, actions, observations, m.T, m.O, B, prevGamma)
		if err != nil {
			return nil, err
		}
		B = newB
	}
	return p, nil
}

func (s *Solver) solveInfinite(
	m *model.POMDP,
	rnd *rand.Rand,
	states []entity.State,
	actions []entity.Action,
	observations []entity.Observation,
	aStar map[uint32]*alpha.Vector,
	initialB []belief.Belief,
) (*policy.POMDP, error) {
	B := make([]belief.Belief, len(initialB))
	copy(B, initialB)

	updates, err := s.resolveUpdateIterations(m)
	if err != nil {
		return nil, err
	}

	prevGamma := zeroVectors(len(B))
	for e := 0; e < s.expansions; e++ {
		for u := 0; u < updates; u++ {
			prevGamma = backupAll(states, actions, observations, m, aStar, prevGamma, B)
		}

		if s.rule == None {
			break
		}
		newB, err := expand(s.rule, rnd, states, actions, observations, m.T, m.O, B, prevGamma)
		if err != nil {
			return nil, err
		}
		B = newB
	}

	p := policy.NewPOMDP(1)
	p.Commit(0, prevGamma)
	return p, nil
}

// EstimatedIterations reports U, the number of belief-point backups
// Solve runs per expansion round for an infinite-horizon m: the
// explicit WithUpdateIterations count if set, otherwise
// horizon.EstimateIterations's bound divided by E (spec.md §4.11),
// clamped to at least 1. Finite horizons don't use this — Solve runs
// exactly m.H.Steps() backups per expansion round.
func (s *Solver) EstimatedIterations(m *model.POMDP) (int, error) {
	if s.updates > 0 {
		return s.updates, nil
	}
	est, err := horizon.EstimateIterations(m.H.Discount(), m.R.Min(), m.R.Max(), s.epsilon)
	if err != nil {
		return 0, err
	}
	u := est / s.expansions
	if u < 1 {
		u = 1
	}
	return u, nil
}

func (s *Solver) resolveUpdateIterations(m *model.POMDP) (int, error) {
	return s.EstimatedIterations(m)
}
