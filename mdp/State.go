// Package mdp implements the building blocks of an episodic Markov
// decision process: states, actions, and the links that join them into
// episodes.
//
// States and actions are thin identity wrappers around a caller-supplied
// trait value. The trait describes the state or action in the caller's
// domain and is what gives the wrapper its identity: equality, ordering,
// and hashing all delegate to the trait. Wrappers store a copy of the
// trait, so traits that are handles to shared data keep whatever aliasing
// behaviour the caller gave them.
package mdp

import (
	"fmt"

	"github.com/s19960826/relearn/utils/hashutils"
)

// State wraps a trait value together with a scalar reward. The reward is
// observational payload only: two states with equal traits are the same
// state no matter what their rewards are. A non-zero reward marks a
// terminal state by convention, usually -1, 0, or +1, though any scalar
// is accepted.
type State[T comparable] struct {
	trait  T
	reward float64
}

// NewState returns a State wrapping trait with a reward of 0
func NewState[T comparable](trait T) State[T] {
	return State[T]{trait: trait}
}

// NewTerminalState returns a State wrapping trait with the given reward.
// The reward is not validated; callers conventionally use non-zero
// rewards only on episode-ending states.
func NewTerminalState[T comparable](reward float64, trait T) State[T] {
	return State[T]{trait: trait, reward: reward}
}

// Trait returns a copy of the wrapped trait
func (s State[T]) Trait() T {
	return s.trait
}

// Reward returns the scalar reward carried by the state
func (s State[T]) Reward() float64 {
	return s.reward
}

// Terminal returns whether the state carries a non-zero reward, the
// convention for episode-ending states
func (s State[T]) Terminal() bool {
	return s.reward != 0
}

// Equal returns whether two states wrap equal traits. Rewards are
// ignored; they are payload, not identity.
func (s State[T]) Equal(other State[T]) bool {
	return s.trait == other.trait
}

// Hash returns a hash derived from the wrapped trait. States with equal
// traits always hash equally.
func (s State[T]) Hash() uint64 {
	return hashutils.Sum(s.trait)
}

func (s State[T]) String() string {
	return fmt.Sprintf("State | Trait: %v  |  Reward: %.2f", s.trait, s.reward)
}
