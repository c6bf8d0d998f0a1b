// Package entity defines the opaque State, Action, Observation, and
// Agent entities shared by the planning engine, plus the generic
// Table container that indexes them by stable hash.
//
// Two construction styles exist side by side, mirroring the Cassandra
// problem-file grammar that can declare either a named roster
// ("states: healthy sick") or a bare count ("states: 4"):
//
//   - Named entities derive their hash from the label (FNV-1a/32).
//   - Indexed entities receive a monotonically assigned hash from an
//     explicit IndexAllocator, suitable for dense-array storage.
//
// A Joint entity (used by the Dec-POMDP variant) folds an ordered
// sequence of sub-entity hashes into a single deterministic hash.
//
// Equality and ordering are defined entirely by Hash; Label is for
// display only.
package entity

import (
	"hash/fnv"
	"strings"
)

// Handle is the common representation shared by State, Action,
// Observation, and Agent: a stable hash plus a human-readable label.
// It is a value type; entities are cheap to copy and compare by Hash.
type Handle struct {
	hash  uint32
	label string
}

// Hash returns the stable identifier assigned at construction time.
func (h Handle) Hash() uint32 { return h.hash }

// Label returns the human-readable name of the entity.
func (h Handle) Label() string { return h.label }

// Entity is satisfied by State, Action, Observation, and Agent (and by
// any future entity kind built on Handle). Table is generic over
// this constraint.
type Entity interface {
	Hash() uint32
	Label() string
}

// State is a decision-process state.
type State struct{ Handle }

// Action is a decision-process action.
type Action struct{ Handle }

// Observation is a decision-process observation.
type Observation struct{ Handle }

// Agent is a Dec-POMDP participant; identical in shape to the other
// entity kinds (librbr's core/agents/agent.h has no fields beyond a
// name and index either).
type Agent struct{ Handle }

// IndexAllocator assigns monotonically increasing hashes to indexed
// entities. It is passed explicitly into constructors rather than kept
// as package-level mutable state, so distinct problem instances (or
// distinct test cases) never bleed index counters into one another.
type IndexAllocator struct {
	next uint32
}

// NewIndexAllocator returns an allocator starting at index 0.
func NewIndexAllocator() *IndexAllocator {
	return &IndexAllocator{}
}

// Reset rewinds the allocator to index 0. Intended for use only
// between test cases or between distinct problem instances — never
// while any entity it previously issued is still in use.
func (a *IndexAllocator) Reset() {
	a.next = 0
}

// Next returns the next available index and advances the allocator.
func (a *IndexAllocator) Next() uint32 {
	i := a.next
	a.next++
	return i
}

// namedHash derives a stable 32-bit hash from a label via FNV-1a.
func namedHash(label string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(label)) // fnv.Write never returns an error
	return h.Sum32()
}

// foldHashes folds an ordered sequence of sub-hashes into one
// deterministic joint hash using FNV-1a over the hashes' big-endian
// byte representation. Order matters: folding [a,b] differs from
// folding [b,a], matching the ordered-sequence semantics of a joint
// entity.
func foldHashes(hashes []uint32) uint32 {
	h := fnv.New32a()
	var buf [4]byte
	for _, v := range hashes {
		buf[0] = byte(v >> 24)
		buf[1] = byte(v >> 16)
		buf[2] = byte(v >> 8)
		buf[3] = byte(v)
		_, _ = h.Write(buf[:])
	}
	return h.Sum32()
}

// NewNamedState constructs a State whose hash is derived from label.
func NewNamedState(label string) (State, error) {
	if label == "" {
		return State{}, ErrEmptyLabel
	}
	return State{Handle{hash: namedHash(label), label: label}}, nil
}

// NewIndexedState constructs a State whose hash is the next value from
// alloc, suitable for dense-array indexing.
func NewIndexedState(alloc *IndexAllocator, label string) (State, error) {
	if label == "" {
		return State{}, ErrEmptyLabel
	}
	return State{Handle{hash: alloc.Next(), label: label}}, nil
}

// NewJointState folds subs into a single State identifying the joint
// state tuple, with a label of the form "s1|s2|...".
func NewJointState(subs ...State) (State, error) {
	if len(subs) == 0 {
		return State{}, ErrEmptyJoint
	}
	hashes := make([]uint32, len(subs))
	labels := make([]string, len(subs))
	for i, s := range subs {
		hashes[i] = s.Hash()
		labels[i] = s.Label()
	}
	return State{Handle{hash: foldHashes(hashes), label: strings.Join(labels, "|")}}, nil
}

// NewNamedAction constructs an Action whose hash is derived from label.
func NewNamedAction(label string) (Action, error) {
	if label == "" {
		return Action{}, ErrEmptyLabel
	}
	return Action{Handle{hash: namedHash(label), label: label}}, nil
}

// NewIndexedAction constructs an Action whose hash is the next value
// from alloc.
func NewIndexedAction(alloc *IndexAllocator, label string) (Action, error) {
	if label == "" {
		return Action{}, ErrEmptyLabel
	}
	return Action{Handle{hash: alloc.Next(), label: label}}, nil
}

// NewJointAction folds subs into a single Action identifying the joint
// action tuple.
func NewJointAction(subs ...Action) (Action, error) {
	if len(subs) == 0 {
		return Action{}, ErrEmptyJoint
	}
	hashes := make([]uint32, len(subs))
	labels := make([]string, len(subs))
	for i, a := range subs {
		hashes[i] = a.Hash()
		labels[i] = a.Label()
	}
	return Action{Handle{hash: foldHashes(hashes), label: strings.Join(labels, "|")}}, nil
}

// NewNamedObservation constructs an Observation whose hash is derived
// from label.
func NewNamedObservation(label string) (Observation, error) {
	if label == "" {
		return Observation{}, ErrEmptyLabel
	}
	return Observation{Handle{hash: namedHash(label), label: label}}, nil
}

// NewIndexedObservation constructs an Observation whose hash is the
// next value from alloc.
func NewIndexedObservation(alloc *IndexAllocator, label string) (Observation, error) {
	if label == "" {
		return Observation{}, ErrEmptyLabel
	}
	return Observation{Handle{hash: alloc.Next(), label: label}}, nil
}

// NewJointObservation folds subs into a single Observation identifying
// the joint observation tuple.
func NewJointObservation(subs ...Observation) (Observation, error) {
	if len(subs) == 0 {
		return Observation{}, ErrEmptyJoint
	}
	hashes := make([]uint32, len(subs))
	labels := make([]string, len(subs))
	for i, o := range subs {
		hashes[i] = o.Hash()
		labels[i] = o.Label()
	}
	return Observation{Handle{hash: foldHashes(hashes), label: strings.Join(labels, "|")}}, nil
}

// NewNamedAgent constructs an Agent whose hash is derived from label.
func NewNamedAgent(label string) (Agent, error) {
	if label == "" {
		return Agent{}, ErrEmptyLabel
	}
	return Agent{Handle{hash: namedHash(label), label: label}}, nil
}

// NewIndexedAgent constructs an Agent whose hash is the next value from
// alloc.
func NewIndexedAgent(alloc *IndexAllocator, label string) (Agent, error) {
	if label == "" {
		return Agent{}, ErrEmptyLabel
	}
	return Agent{Handle{hash: alloc.Next(), label: label}}, nil
}
