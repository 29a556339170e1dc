package mdp

import (
	"fmt"

	"github.com/s19960826/relearn/utils/hashutils"
)

// Link pairs one State with the Action taken from it. Links are the
// atomic unit of an episode.
type Link[S, A comparable] struct {
	State  State[S]
	Action Action[A]
}

// NewLink returns a Link recording that action was taken in state
func NewLink[S, A comparable](state State[S], action Action[A]) Link[S, A] {
	return Link[S, A]{State: state, Action: action}
}

// Equal returns whether both the states and the actions of two links
// are equal
func (l Link[S, A]) Equal(other Link[S, A]) bool {
	return l.State.Equal(other.State) && l.Action.Equal(other.Action)
}

// Hash returns a hash folding the state's and the action's hashes
func (l Link[S, A]) Hash() uint64 {
	return hashutils.Fold(l.State.Hash(), l.Action.Hash())
}

func (l Link[S, A]) String() string {
	return fmt.Sprintf("Link | %v  |  %v", l.State, l.Action)
}
