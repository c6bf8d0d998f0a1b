package pomdpsolve

import (
	"github.com/katalvlaran/lvlath-decision/alpha"
	"github.com/katalvlaran/lvlath-decision/entity"
	"github.com/katalvlaran/lvlath-decision/horizon"
	"github.com/katalvlaran/lvlath-decision/model"
	"github.com/katalvlaran/lvlath-decision/policy"
)

// Option customizes a Solver.
type Option func(*Solver)

// WithEpsilon sets the tolerance used to derive the infinite-horizon
// iteration count via horizon.EstimateIterations, when no explicit
// iteration count is set with WithIterations.
func WithEpsilon(epsilon float64) Option {
	return func(s *Solver) { s.epsilon = epsilon }
}

// WithIterations fixes the number of infinite-horizon backups
// explicitly, bypassing horizon.EstimateIterations.
func WithIterations(n int) Option {
	return func(s *Solver) { s.fixedIterations = n }
}

// Solver runs exact POMDP value iteration: finite horizon commits
// every intermediate Gamma^t; infinite horizon runs N backups
// (estimated or fixed) and commits only the final Gamma.
type Solver struct {
	epsilon         float64
	fixedIterations int
}

// New returns a Solver with default epsilon 1e-3.
func New(opts ...Option) *Solver {
	s := &Solver{epsilon: 1e-3}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EstimatedIterations reports the number of infinite-horizon backups
// Solve would run for m: the explicit WithIterations count if set,
// otherwise horizon.EstimateIterations's bound (spec.md §4.5). Finite
// horizons don't use this — Solve runs exactly m.H.Steps() backups.
func (s *Solver) EstimatedIterations(m *model.POMDP) (int, error) {
	if s.fixedIterations > 0 {
		return s.fixedIterations, nil
	}
	n, err := horizon.EstimateIterations(m.H.Discount(), m.R.Min(), m.R.Max(), s.epsilon)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		n = 1
	}
	return n, nil
}

// Solve runs exact value iteration to completion.
func (s *Solver) Solve(m *model.POMDP) (*policy.POMDP, error) {
	if err := m.Validate(); err != nil {
		return nil, ErrInvalidModel
	}

	if m.H.IsFinite() {
		return s.solveFinite(m)
	}
	return s.solveInfinite(m)
}

func (s *Solver) gammaAStar(m *model.POMDP) map[uint32][]*alpha.Vector {
	states := m.States.All()
	observations := m.Observations.All()
	out := make(map[uint32][]*alpha.Vector, m.Actions.Len())
	for _, a := range m.Actions.All() {
		out[a.Hash()] = []*alpha.Vector{createGammaAStar(states, observations, m.T, m.O, m.R, a)}
	}
	return out
}

func (s *Solver) backupOnce(m *model.POMDP, actions []entity.Action, states []entity.State, observations []entity.Observation, aStar map[uint32][]*alpha.Vector, prev []*alpha.Vector) ([]*alpha.Vector, error) {
	gamma := make([]*alpha.Vector, 0)
	for _, a := range actions {
		backedUp := bellmanUpdateCrossSum(states, observations, m.T, m.O, m.H.Discount(), aStar[a.Hash()], prev, a)
		gamma = append(gamma, backedUp...)
	}

	stateHashes := make([]uint32, len(states))
	for i, st := range states {
		stateHashes[i] = st.Hash()
	}
	return alpha.Prune(gamma, stateHashes)
}

func (s *Solver) solveFinite(m *model.POMDP) (*policy.POMDP, error) {
	states := m.States.All()
	actions := m.Actions.All()
	observations := m.Observations.All()
	aStar := s.gammaAStar(m)

	steps := int(m.H.Steps())
	p := policy.NewPOMDP(steps)

	var prev []*alpha.Vector
	for t := 0; t < steps; t++ {
		current, err := s.backupOnce(m, actions, states, observations, aStar, prev)
		if err != nil {
			return nil, err
		}
		p.Commit(t, current)
		prev = current
	}
	return p, nil
}

func (s *Solver) solveInfinite(m *model.POMDP) (*policy.POMDP, error) {
	states := m.States.All()
	actions := m.Actions.All()
	observations := m.Observations.All()
	aStar := s.gammaAStar(m)

	n, err := s.EstimatedIterations(m)
	if err != nil {
		return nil, err
	}

	p := policy.NewPOMDP(1)
	var prev []*alpha.Vector
	for t := 0; t < n; t++ {
		current, err := s.backupOnce(m, actions, states, observations, aStar, prev)
		if err != nil {
			return nil, err
		}
		prev = current
	}
	p.Commit(0, prev)
	return p, nil
}
