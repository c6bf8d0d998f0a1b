package mdpsolve

import (
	"math"

	"github.com/katalvlaran/lvlath-decision/model"
	"github.com/katalvlaran/lvlath-decision/policy"
)

// Option customizes a Solver.
type Option func(*Solver)

// WithTolerance sets the infinite-horizon convergence tolerance
// (default 1e-3, per spec.md §4.9).
func WithTolerance(epsilon float64) Option {
	return func(s *Solver) { s.epsilon = epsilon }
}

// Solver runs standard MDP value iteration.
type Solver struct {
	epsilon    float64
	iterations int
}

// New returns a Solver with default tolerance 1e-3.
func New(opts ...Option) *Solver {
	s := &Solver{epsilon: 1e-3}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Iterations reports how many sweeps the most recent infinite-horizon
// Solve call performed (0 for a finite-horizon solve, which always
// performs exactly Steps() sweeps).
func (s *Solver) Iterations() int {
	return s.iterations
}

// Solve runs value iteration to completion and returns the resulting
// horizon-indexed policy.
func (s *Solver) Solve(m *model.MDP) (*policy.MDP, error) {
	if err := m.Validate(); err != nil {
		return nil, ErrInvalidModel
	}

	if m.H.IsFinite() {
		return s.solveFinite(m)
	}
	return s.solveInfinite(m)
}

func (s *Solver) solveFinite(m *model.MDP) (*policy.MDP, error) {
	states := m.States.All()
	actions := m.Actions.All()
	steps := int(m.H.Steps())
	gamma := m.H.Discount()

	p := policy.NewMDP(steps)
	v := make(map[uint32]float64, len(states))

	s.iterations = 0
	for t := 0; t < steps; t++ {
		next := make(map[uint32]float64, len(states))
		for _, st := range states {
			bestAction, bestQ := bestActionValue(st.Hash(), actions, states, m.T, m.R, v, gamma)
			next[st.Hash()] = bestQ
			p.Set(t, st.Hash(), bestAction)
		}
		v = next
	}
	return p, nil
}

func (s *Solver) solveInfinite(m *model.MDP) (*policy.MDP, error) {
	states := m.States.All()
	actions := m.Actions.All()
	gamma := m.H.Discount()

	p := policy.NewMDP(1)
	v := make(map[uint32]float64, len(states))

	difference := s.epsilon + 1.0
	s.iterations = 0
	for difference > s.epsilon {
		difference = 0.0
		next := make(map[uint32]float64, len(states))
		for _, st := range states {
			bestAction, bestQ := bestActionValue(st.Hash(), actions, states, m.T, m.R, v, gamma)
			if d := math.Abs(bestQ - v[st.Hash()]); d > difference {
				difference = d
			}
			next[st.Hash()] = bestQ
			p.Set(0, st.Hash(), bestAction)
		}
		v = next
		s.iterations++
	}
	return p, nil
}
