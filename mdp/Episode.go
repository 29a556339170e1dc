package mdp

import "errors"

// ErrEmptyEpisode is returned when an episode with no links is given to
// an operation that must index into it
var ErrEmptyEpisode = errors.New("mdp: episode has no links")

// Episode is an ordered, finite sequence of links representing one
// trajectory from an initial state to a terminal state. By convention
// the final link's state carries a non-zero reward; nothing enforces
// this structurally.
type Episode[S, A comparable] []Link[S, A]

// Validate returns ErrEmptyEpisode if the episode has no links.
// Learning algorithms call this before indexing into the episode.
func (e Episode[S, A]) Validate() error {
	if len(e) == 0 {
		return ErrEmptyEpisode
	}
	return nil
}

// Last returns the final link of the episode. It panics on an empty
// episode; callers are expected to Validate first.
func (e Episode[S, A]) Last() Link[S, A] {
	return e[len(e)-1]
}
