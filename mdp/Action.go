package mdp

import (
	"fmt"

	"github.com/s19960826/relearn/utils/hashutils"
)

// Action wraps a trait value describing an action in the caller's
// domain. Unlike State, an Action carries no reward; it is a pure
// identity wrapper.
type Action[T comparable] struct {
	trait T
}

// NewAction returns an Action wrapping trait
func NewAction[T comparable](trait T) Action[T] {
	return Action[T]{trait: trait}
}

// Trait returns a copy of the wrapped trait
func (a Action[T]) Trait() T {
	return a.trait
}

// Equal returns whether two actions wrap equal traits
func (a Action[T]) Equal(other Action[T]) bool {
	return a.trait == other.trait
}

// Hash returns a hash derived from the wrapped trait. Actions with
// equal traits always hash equally.
func (a Action[T]) Hash() uint64 {
	return hashutils.Sum(a.trait)
}

func (a Action[T]) String() string {
	return fmt.Sprintf("Action | Trait: %v", a.trait)
}
