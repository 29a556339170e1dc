package learner

import (
	"fmt"

	"github.com/s19960826/relearn/mdp"
	"github.com/s19960826/relearn/policy"
)

// observation counts how many times each (state, action) pair has been
// observed transitioning to each successor state. Keys are traits, as
// in the policy table.
type observation[S, A comparable] map[S]map[A]map[S]int

// record increments the count for the transition (s, a) → next
func (o observation[S, A]) record(s S, a A, next S) {
	actions, ok := o[s]
	if !ok {
		actions = make(map[A]map[S]int)
		o[s] = actions
	}
	successors, ok := actions[a]
	if !ok {
		successors = make(map[S]int)
		actions[a] = successors
	}
	successors[next]++
}

// successors returns the successor counts for (s, a), or nil if the
// pair has never been observed. Lookups on the nil map read as zero.
func (o observation[S, A]) successors(s S, a A) map[S]int {
	return o[s][a]
}

// QProbabilistic implements the frequency-based Q-learning variant. It
// keeps a private memory of how often each (state, action) pair has led
// to each successor state, accumulated across every episode given to the
// same instance, and scales the update by the estimated transition
// probability:
//
//	Q(s_t, a_t) ← p * r_t + γ * (max Q(s_t+1, a) * p)
//
// where p divides the count recorded for (s_t, a_t) → s_t+1 by the
// number of distinct successors recorded for (s_t, a_t). That
// denominator is the distinct-successor count, not the total number of
// observations, so p is not a normalized probability once a pair has
// repeated transitions; the behaviour is kept as-is so that existing
// trained tables keep their meaning.
type QProbabilistic[S, A comparable] struct {
	// Gamma is the discount rate
	Gamma float64

	memory observation[S, A]
}

var _ Learner[int, int] = (*QProbabilistic[int, int])(nil)

// NewQProbabilistic returns a QProbabilistic with discount rate gamma
// and an empty transition memory
func NewQProbabilistic[S, A comparable](gamma float64) *QProbabilistic[S, A] {
	return &QProbabilistic[S, A]{
		Gamma:  gamma,
		memory: make(observation[S, A]),
	}
}

// Frequency returns how many times the transition (s, a) → next has
// been observed by this learner
func (q *QProbabilistic[S, A]) Frequency(s mdp.State[S], a mdp.Action[A],
	next mdp.State[S]) int {
	return q.memory.successors(s.Trait(), a.Trait())[next.Trait()]
}

// Successors returns how many distinct successor states have been
// observed for (s, a), the denominator of the transition estimate
func (q *QProbabilistic[S, A]) Successors(s mdp.State[S], a mdp.Action[A]) int {
	return len(q.memory.successors(s.Trait(), a.Trait()))
}

// QValue computes the update for the step at index, returning the step's
// state and action together with the new value to store for them. The
// episode must be non-empty, index must be within it, and for non-final
// indices the transition must already be recorded in memory (Apply's
// accounting pass guarantees this).
func (q *QProbabilistic[S, A]) QValue(episode mdp.Episode[S, A], index int,
	table *policy.Table[S, A]) (mdp.State[S], mdp.Action[A], float64) {

	step := episode[index]
	if index < len(episode)-1 {
		// The read vivifies the (state, action) entry before the
		// best-value lookup, exactly as the deterministic rule's reads
		// do. Self-transitions see the vivified zero entry.
		_ = table.Value(step.State, step.Action)

		next := episode[index+1]
		bestNext := table.BestValue(next.State)
		r := step.State.Reward()

		successors := q.memory.successors(step.State.Trait(), step.Action.Trait())
		prob := float64(successors[next.State.Trait()]) / float64(len(successors))

		expected := prob * r
		return step.State, step.Action, expected + q.Gamma*(bestNext*prob)
	}
	return step.State, step.Action, step.State.Reward()
}

// Apply records every transition of the episode in the learner's
// memory, then computes and writes an updated value for every link. The
// accounting pass runs first and covers every non-final index, so the
// update pass never reads an unrecorded pair. Updates run in forward
// temporal order, as in QLearning. Returns ErrInvalidEpisode for an
// empty episode.
func (q *QProbabilistic[S, A]) Apply(episode mdp.Episode[S, A],
	table *policy.Table[S, A]) error {

	if err := episode.Validate(); err != nil {
		return fmt.Errorf("apply: %w: %w", ErrInvalidEpisode, err)
	}

	for i := 0; i < len(episode)-1; i++ {
		q.memory.record(episode[i].State.Trait(), episode[i].Action.Trait(),
			episode[i+1].State.Trait())
	}

	for i := range episode {
		state, action, value := q.QValue(episode, i, table)
		table.Update(state, action, value)
	}
	return nil
}
