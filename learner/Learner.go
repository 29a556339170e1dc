// Package learner implements the algorithms that update a policy table
// from observed episodes.
//
// A learner is a pure update procedure: given an episode and a table,
// it computes new values for every transition in the episode and writes
// them into the table. Learners do not select actions, explore, or talk
// to an environment; they only consume trajectories the caller already
// built.
//
// Learners are not safe for concurrent use: at most one Apply call may
// be in flight for a given table (and, for QProbabilistic, a given
// learner instance) at a time.
package learner

import (
	"errors"

	"github.com/s19960826/relearn/mdp"
	"github.com/s19960826/relearn/policy"
)

// ErrInvalidEpisode is returned by a learner given an episode it cannot
// process, such as an empty one
var ErrInvalidEpisode = errors.New("learner: invalid episode")

// Learner updates a policy table from one observed episode. Apply runs
// to completion over the episode; the episode's length bounds the work
// done.
type Learner[S, A comparable] interface {
	Apply(episode mdp.Episode[S, A], table *policy.Table[S, A]) error
}
