package decpomdp

import (
	"github.com/katalvlaran/lvlath-decision/belief"
	"github.com/katalvlaran/lvlath-decision/entity"
	"github.com/katalvlaran/lvlath-decision/horizon"
	"github.com/katalvlaran/lvlath-decision/model"
	"github.com/katalvlaran/lvlath-decision/reward"
	"github.com/katalvlaran/lvlath-decision/tensor"
)

// DecPOMDP is a Decentralized POMDP: a POMDP whose action and
// observation spaces are joint tuples over an agent roster, typically
// paired with a reward.FactoredWeighted so each agent's contribution
// stays separately inspectable even though the solver only ever sees
// the flattened joint model.
//
// DecPOMDP embeds the flattened *model.POMDP directly — every MDP/POMDP
// solver operates on it unmodified, since a Dec-POMDP is, mechanically,
// a POMDP over joint actions and observations. The decomposition maps
// let a caller translate a solved policy's joint action or a sampled
// joint observation back into each agent's individual choice.
type DecPOMDP struct {
	*model.POMDP

	Agents *entity.Table[entity.Agent]

	actionDecomposition      map[uint32][]entity.Action
	observationDecomposition map[uint32][]entity.Observation
}

// JointAction returns the per-agent action tuple that folds into the
// given joint action hash, and whether it was found.
func (d *DecPOMDP) JointAction(hash uint32) ([]entity.Action, bool) {
	tuple, ok := d.actionDecomposition[hash]
	return tuple, ok
}

// JointObservation returns the per-agent observation tuple that folds
// into the given joint observation hash, and whether it was found.
func (d *DecPOMDP) JointObservation(hash uint32) ([]entity.Observation, bool) {
	tuple, ok := d.observationDecomposition[hash]
	return tuple, ok
}

// config accumulates builder state across Option application, mirroring
// model's functional-options style but needing the extra per-agent
// table inputs before the joint spaces can be built.
type config struct {
	agents               *entity.Table[entity.Agent]
	states               *entity.Table[entity.State]
	perAgentActions      []*entity.Table[entity.Action]
	perAgentObservations []*entity.Table[entity.Observation]
	transition           tensor.Transition
	observationFn        tensor.Observation
	rewardFn             reward.Reward
	initialBelief        belief.Belief
	horiz                horizon.Horizon
}

// Option customizes a DecPOMDP during construction.
type Option func(*config)

// WithAgents sets the agent roster.
func WithAgents(agents *entity.Table[entity.Agent]) Option {
	return func(c *config) { c.agents = agents }
}

// WithStates sets the (non-factored) joint state table.
func WithStates(states *entity.Table[entity.State]) Option {
	return func(c *config) { c.states = states }
}

// WithPerAgentActions supplies one action table per agent, in agent
// order; the joint action table is the Cartesian product of these.
func WithPerAgentActions(perAgent ...*entity.Table[entity.Action]) Option {
	return func(c *config) { c.perAgentActions = perAgent }
}

// WithPerAgentObservations supplies one observation table per agent,
// in agent order; the joint observation table is the Cartesian
// product of these.
func WithPerAgentObservations(perAgent ...*entity.Table[entity.Observation]) Option {
	return func(c *config) { c.perAgentObservations = perAgent }
}

// WithTransition sets the joint transition function T(s, jointA, s').
func WithTransition(t tensor.Transition) Option {
	return func(c *config) { c.transition = t }
}

// WithObservationFn sets the joint observation function
// O(jointA, s', jointZ).
func WithObservationFn(o tensor.Observation) Option {
	return func(c *config) { c.observationFn = o }
}

// WithReward sets the reward function. Pass a *reward.FactoredWeighted
// built from per-agent component rewards to keep each agent's
// contribution separately inspectable.
func WithReward(r reward.Reward) Option {
	return func(c *config) { c.rewardFn = r }
}

// WithInitialBelief sets the initial joint belief.
func WithInitialBelief(b belief.Belief) Option {
	return func(c *config) { c.initialBelief = b }
}

// WithHorizon sets the planning horizon.
func WithHorizon(h horizon.Horizon) Option {
	return func(c *config) { c.horiz = h }
}

// New builds the joint action and observation spaces from their
// per-agent components and assembles a DecPOMDP around the resulting
// flattened POMDP.
func New(opts ...Option) (*DecPOMDP, error) {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}

	if c.agents == nil {
		return nil, ErrMissingAgents
	}
	if len(c.perAgentActions) == 0 {
		return nil, ErrMissingPerAgentActions
	}
	if len(c.perAgentObservations) == 0 {
		return nil, ErrMissingPerAgentObservations
	}
	if len(c.perAgentActions) != c.agents.Len() || len(c.perAgentObservations) != c.agents.Len() {
		return nil, ErrAgentCountMismatch
	}

	jointActions, actionDecomp, err := buildJointActions(c.perAgentActions)
	if err != nil {
		return nil, err
	}
	jointObservations, obsDecomp, err := buildJointObservations(c.perAgentObservations)
	if err != nil {
		return nil, err
	}

	pomdp, err := model.NewPOMDP(
		model.WithPOMDPStates(c.states),
		model.WithPOMDPActions(jointActions),
		model.WithPOMDPObservations(jointObservations),
		model.WithPOMDPTransition(c.transition),
		model.WithPOMDPObservationFn(c.observationFn),
		model.WithPOMDPReward(c.rewardFn),
		model.WithPOMDPInitialBelief(c.initialBelief),
		model.WithPOMDPHorizon(c.horiz),
	)
	if err != nil {
		return nil, ErrInvalidModel
	}

	return &DecPOMDP{
		POMDP:                    pomdp,
		Agents:                   c.agents,
		actionDecomposition:      actionDecomp,
		observationDecomposition: obsDecomp,
	}, nil
}
