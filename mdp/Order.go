package mdp

import "golang.org/x/exp/constraints"

// Ordering helpers for traits with a natural order. The policy table
// does not need an ordering; these exist for callers keeping states,
// actions, or links in sorted containers.

// StateLess returns whether a's trait orders before b's trait
func StateLess[T constraints.Ordered](a, b State[T]) bool {
	return a.trait < b.trait
}

// ActionLess returns whether a's trait orders before b's trait
func ActionLess[T constraints.Ordered](a, b Action[T]) bool {
	return a.trait < b.trait
}

// LinkLess returns whether link a orders before link b. The ordering is
// the conjunction of the component orderings, not a lexicographic
// compare: a orders before b only when both a's action and a's state
// order before b's.
func LinkLess[S, A constraints.Ordered](a, b Link[S, A]) bool {
	return ActionLess(a.Action, b.Action) && StateLess(a.State, b.State)
}
