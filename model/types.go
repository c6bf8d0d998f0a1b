package model

import (
	"github.com/katalvlaran/lvlath-decision/belief"
	"github.com/katalvlaran/lvlath-decision/entity"
	"github.com/katalvlaran/lvlath-decision/horizon"
	"github.com/katalvlaran/lvlath-decision/reward"
	"github.com/katalvlaran/lvlath-decision/tensor"
)

// MDP aggregates the components of a fully-observable Markov decision
// process: states, actions, a transition function, a reward function,
// and a horizon.
type MDP struct {
	States  *entity.Table[entity.State]
	Actions *entity.Table[entity.Action]
	T       tensor.Transition
	R       reward.Reward
	H       horizon.Horizon
}

// MDPOption customizes an MDP during construction.
type MDPOption func(*MDP)

// WithMDPStates sets the state table.
func WithMDPStates(s *entity.Table[entity.State]) MDPOption {
	return func(m *MDP) { m.States = s }
}

// WithMDPActions sets the action table.
func WithMDPActions(a *entity.Table[entity.Action]) MDPOption {
	return func(m *MDP) { m.Actions = a }
}

// WithMDPTransition sets the transition function.
func WithMDPTransition(t tensor.Transition) MDPOption {
	return func(m *MDP) { m.T = t }
}

// WithMDPReward sets the reward function.
func WithMDPReward(r reward.Reward) MDPOption {
	return func(m *MDP) { m.R = r }
}

// WithMDPHorizon sets the horizon.
func WithMDPHorizon(h horizon.Horizon) MDPOption {
	return func(m *MDP) { m.H = h }
}

// NewMDP applies opts over a zero-valued MDP and validates the
// required components are present.
func NewMDP(opts ...MDPOption) (*MDP, error) {
	m := &MDP{}
	for _, opt := range opts {
		opt(m)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks that every required component is present and that
// an infinite horizon carries a sub-unit discount.
func (m *MDP) Validate() error {
	if m.States == nil {
		return ErrMissingStates
	}
	if m.Actions == nil {
		return ErrMissingActions
	}
	if m.T == nil {
		return ErrMissingTransition
	}
	if m.R == nil {
		return ErrMissingReward
	}
	if m.H.IsInfinite() && m.H.Discount() >= 1 {
		return ErrInvalidDiscount
	}
	return nil
}

// POMDP aggregates the components of a partially-observable Markov
// decision process: an underlying MDP plus observations, an
// observation function, and an initial belief.
type POMDP struct {
	States       *entity.Table[entity.State]
	Actions      *entity.Table[entity.Action]
	Observations *entity.Table[entity.Observation]
	T            tensor.Transition
	O            tensor.Observation
	R            reward.Reward
	B0           belief.Belief
	H            horizon.Horizon
}

// POMDPOption customizes a POMDP during construction.
type POMDPOption func(*POMDP)

func WithPOMDPStates(s *entity.Table[entity.State]) POMDPOption {
	return func(p *POMDP) { p.States = s }
}

func WithPOMDPActions(a *entity.Table[entity.Action]) POMDPOption {
	return func(p *POMDP) { p.Actions = a }
}

func WithPOMDPObservations(z *entity.Table[entity.Observation]) POMDPOption {
	return func(p *POMDP) { p.Observations = z }
}

func WithPOMDPTransition(t tensor.Transition) POMDPOption {
	return func(p *POMDP) { p.T = t }
}

func WithPOMDPObservationFn(o tensor.Observation) POMDPOption {
	return func(p *POMDP) { p.O = o }
}

func WithPOMDPReward(r reward.Reward) POMDPOption {
	return func(p *POMDP) { p.R = r }
}

func WithPOMDPInitialBelief(b belief.Belief) POMDPOption {
	return func(p *POMDP) { p.B0 = b }
}

func WithPOMDPHorizon(h horizon.Horizon) POMDPOption {
	return func(p *POMDP) { p.H = h }
}

// NewPOMDP applies opts over a zero-valued POMDP and validates the
// required components are present.
func NewPOMDP(opts ...POMDPOption) (*POMDP, error) {
	p := &POMDP{}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that every required component is present and that
// an infinite horizon carries a sub-unit discount.
func (p *POMDP) Validate() error {
	if p.States == nil {
		return ErrMissingStates
	}
	if p.Actions == nil {
		return ErrMissingActions
	}
	if p.Observations == nil {
		return ErrMissingObservations
	}
	if p.T == nil {
		return ErrMissingTransition
	}
	if p.O == nil {
		return ErrMissingObservationFn
	}
	if p.R == nil {
		return ErrMissingReward
	}
	if p.B0.Len() == 0 {
		return ErrMissingInitialBelief
	}
	if p.H.IsInfinite() && p.H.Discount() >= 1 {
		return ErrInvalidDiscount
	}
	return nil
}
