package learner

import (
	"fmt"

	"github.com/s19960826/relearn/mdp"
	"github.com/s19960826/relearn/policy"
)

// QLearning implements the deterministic Q-learning update rule
//
//	Q(s_t, a_t) ← Q(s_t, a_t) + α * (r_t + γ * max Q(s_t+1, a) - Q(s_t, a_t))
//
// where the reward r_t is read off the current step's state. The final
// step of an episode takes its state's reward as its value directly,
// with no bootstrapping.
type QLearning[S, A comparable] struct {
	// Alpha is the learning rate. Neither parameter is validated or
	// clamped; values outside [0, 1] produce whatever arithmetic
	// follows.
	Alpha float64

	// Gamma is the discount rate
	Gamma float64
}

var _ Learner[int, int] = (*QLearning[int, int])(nil)

// NewQLearning returns a QLearning with learning rate alpha and
// discount rate gamma
func NewQLearning[S, A comparable](alpha, gamma float64) *QLearning[S, A] {
	return &QLearning[S, A]{Alpha: alpha, Gamma: gamma}
}

// QValue computes the update for the step at index, returning the step's
// state and action together with the new value to store for them. The
// episode must be non-empty and index must be within it.
func (q *QLearning[S, A]) QValue(episode mdp.Episode[S, A], index int,
	table *policy.Table[S, A]) (mdp.State[S], mdp.Action[A], float64) {

	step := episode[index]
	if index < len(episode)-1 {
		current := table.Value(step.State, step.Action)
		next := episode[index+1]
		bestNext := table.BestValue(next.State)
		r := step.State.Reward()
		return step.State, step.Action,
			current + q.Alpha*(r+q.Gamma*bestNext-current)
	}
	return step.State, step.Action, step.State.Reward()
}

// Apply computes and writes an updated value for every link of the
// episode. Updates run in forward temporal order, so a later step's
// best-value lookup sees values already written for earlier steps of
// this same episode. Returns ErrInvalidEpisode for an empty episode.
func (q *QLearning[S, A]) Apply(episode mdp.Episode[S, A],
	table *policy.Table[S, A]) error {

	if err := episode.Validate(); err != nil {
		return fmt.Errorf("apply: %w: %w", ErrInvalidEpisode, err)
	}

	for i := range episode {
		state, action, value := q.QValue(episode, i, table)
		table.Update(state, action, value)
	}
	return nil
}
