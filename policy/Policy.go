// Package policy implements the tabular store of learned state-action
// values written by the learning algorithms and queried for control.
//
// A Table behaves as a total function over the key space: no read can
// fail, and absent entries degrade to zero values or empty maps. Reads
// insert the entries they touch (see the individual methods), so table
// size is not a record of which states have been updated, only of which
// have been seen.
//
// A Table is not safe for concurrent use; callers running updates from
// multiple goroutines must synchronize externally.
package policy

import (
	"golang.org/x/exp/maps"
	"gonum.org/v1/gonum/floats"

	"github.com/s19960826/relearn/mdp"
)

// Table maps states to the values of the actions experienced in them.
// Keys are the wrapped traits, never the wrappers, so a state's reward
// plays no part in its identity.
type Table[S, A comparable] struct {
	values map[S]map[A]float64
}

// New returns an empty Table
func New[S, A comparable]() *Table[S, A] {
	return &Table[S, A]{values: make(map[S]map[A]float64)}
}

// row returns the action-value row for s, inserting an empty row if the
// state has never been seen
func (t *Table[S, A]) row(s mdp.State[S]) map[A]float64 {
	trait := s.Trait()
	row, ok := t.values[trait]
	if !ok {
		row = make(map[A]float64)
		t.values[trait] = row
	}
	return row
}

// Actions returns a copy of all actions and their current values known
// for state s. The copy is empty if the state has never been updated.
// Reading inserts an empty row for a never-seen state.
func (t *Table[S, A]) Actions(s mdp.State[S]) map[mdp.Action[A]]float64 {
	row := t.row(s)
	actions := make(map[mdp.Action[A]]float64, len(row))
	for trait, value := range row {
		actions[mdp.NewAction(trait)] = value
	}
	return actions
}

// Update overwrites the value stored for (s, a), inserting entries as
// needed. Values accumulate nowhere: the last write wins.
func (t *Table[S, A]) Update(s mdp.State[S], a mdp.Action[A], value float64) {
	t.row(s)[a.Trait()] = value
}

// Value returns the value stored for (s, a), or 0 if none has been
// written. Reading inserts the zero entry for a never-seen pair.
func (t *Table[S, A]) Value(s mdp.State[S], a mdp.Action[A]) float64 {
	row := t.row(s)
	trait := a.Trait()
	value, ok := row[trait]
	if !ok {
		row[trait] = 0
	}
	return value
}

// BestValue returns the maximum value across all actions recorded for
// s, or 0 if none are recorded
func (t *Table[S, A]) BestValue(s mdp.State[S]) float64 {
	row := t.row(s)
	if len(row) == 0 {
		return 0
	}
	values := make([]float64, 0, len(row))
	for _, value := range row {
		values = append(values, value)
	}
	return floats.Max(values)
}

// BestAction returns the action achieving BestValue for s, or nil if no
// actions are recorded. When several actions tie for the maximum, which
// of them is returned follows map iteration order and is therefore not
// deterministic; callers must not rely on a stable winner among ties.
func (t *Table[S, A]) BestAction(s mdp.State[S]) *mdp.Action[A] {
	row := t.row(s)

	var best *mdp.Action[A]
	var bestValue float64
	for trait, value := range row {
		if best == nil || value > bestValue {
			action := mdp.NewAction(trait)
			best = &action
			bestValue = value
		}
	}
	return best
}

// States returns the traits of every state the table has seen,
// including states vivified by reads
func (t *Table[S, A]) States() []S {
	return maps.Keys(t.values)
}

// Len returns the number of states the table has seen
func (t *Table[S, A]) Len() int {
	return len(t.values)
}
