package learner

import (
	"errors"
	"math"
	"testing"

	"github.com/s19960826/relearn/mdp"
	"github.com/s19960826/relearn/policy"
)

func TestQProbabilisticEmptyEpisode(t *testing.T) {
	q := NewQProbabilistic[int, string](0.9)
	table := policy.New[int, string]()

	err := q.Apply(mdp.Episode[int, string]{}, table)
	if !errors.Is(err, ErrInvalidEpisode) {
		t.Errorf("expected ErrInvalidEpisode, got %v", err)
	}
}

func TestQProbabilisticTerminalRule(t *testing.T) {
	q := NewQProbabilistic[int, string](0.9)
	table := policy.New[int, string]()

	if err := q.Apply(twoStepEpisode(-1.0), table); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if got := table.Value(mdp.NewState(1), mdp.NewAction("a1")); got != -1.0 {
		t.Errorf("expected terminal value -1.0 exactly, got %v", got)
	}
}

// Feeding the same episode N times raises every recorded transition's
// count by exactly N and never shrinks the successor set.
func TestQProbabilisticAccounting(t *testing.T) {
	q := NewQProbabilistic[int, string](0.9)
	table := policy.New[int, string]()
	episode := twoStepEpisode(1.0)

	s0, a0 := mdp.NewState(0), mdp.NewAction("a0")
	s1 := mdp.NewState(1)

	const n = 5
	for i := 1; i <= n; i++ {
		if err := q.Apply(episode, table); err != nil {
			t.Fatalf("apply failed: %v", err)
		}
		if got := q.Frequency(s0, a0, s1); got != i {
			t.Fatalf("after %d applies expected frequency %d, got %d", i, i, got)
		}
		if got := q.Successors(s0, a0); got != 1 {
			t.Fatalf("after %d applies expected 1 distinct successor, got %d",
				i, got)
		}
	}
}

func TestQProbabilisticBranchingTransitions(t *testing.T) {
	q := NewQProbabilistic[int, string](0.9)
	table := policy.New[int, string]()

	win := mdp.Episode[int, string]{
		mdp.NewLink(mdp.NewState(0), mdp.NewAction("a0")),
		mdp.NewLink(mdp.NewTerminalState(1.0, 1), mdp.NewAction("end")),
	}
	lose := mdp.Episode[int, string]{
		mdp.NewLink(mdp.NewState(0), mdp.NewAction("a0")),
		mdp.NewLink(mdp.NewTerminalState(-1.0, 2), mdp.NewAction("end")),
	}

	if err := q.Apply(win, table); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if err := q.Apply(lose, table); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	s0, a0 := mdp.NewState(0), mdp.NewAction("a0")
	if got := q.Frequency(s0, a0, mdp.NewState(1)); got != 1 {
		t.Errorf("expected frequency 1 for transition to state 1, got %d", got)
	}
	if got := q.Frequency(s0, a0, mdp.NewState(2)); got != 1 {
		t.Errorf("expected frequency 1 for transition to state 2, got %d", got)
	}
	if got := q.Successors(s0, a0); got != 2 {
		t.Errorf("expected 2 distinct successors, got %d", got)
	}
}

// The transition estimate divides the transition's count by the number
// of distinct successors, not the total observation count, so repeating
// the same transition pushes the ratio past 1. That behaviour is kept
// for compatibility; this pins it down.
func TestQProbabilisticDistinctSuccessorDenominator(t *testing.T) {
	q := NewQProbabilistic[int, string](0.9)
	table := policy.New[int, string]()
	episode := twoStepEpisode(1.0)

	// First pass: count 1, 1 distinct successor, best next value still
	// unwritten when step 0 updates.
	if err := q.Apply(episode, table); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if got := table.Value(mdp.NewState(0), mdp.NewAction("a0")); got != 0 {
		t.Errorf("expected 0 after the first pass, got %v", got)
	}

	// Second pass: count 2 over 1 distinct successor gives ratio 2, so
	// the update is 0.9 * (1.0 * 2).
	if err := q.Apply(episode, table); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	got := table.Value(mdp.NewState(0), mdp.NewAction("a0"))
	if math.Abs(got-1.8) > epsilon {
		t.Errorf("expected 1.8 after the second pass, got %v", got)
	}
}

func TestQProbabilisticExpectedRewardUsesCurrentState(t *testing.T) {
	// The current step's state carries reward 2.0; with a single
	// recorded successor the ratio is 1, so the expected-reward term is
	// 2.0 and the bootstrap term is 0 on a fresh table.
	episode := mdp.Episode[int, string]{
		mdp.NewLink(mdp.NewTerminalState(2.0, 0), mdp.NewAction("a0")),
		mdp.NewLink(mdp.NewTerminalState(1.0, 1), mdp.NewAction("a1")),
	}
	q := NewQProbabilistic[int, string](0.9)
	table := policy.New[int, string]()

	if err := q.Apply(episode, table); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if got := table.Value(mdp.NewState(0), mdp.NewAction("a0")); got != 2.0 {
		t.Errorf("expected expected-reward term 2.0, got %v", got)
	}
}

// Each learner instance owns its memory; nothing is shared between
// instances or with the table.
func TestQProbabilisticMemoryIsPerInstance(t *testing.T) {
	first := NewQProbabilistic[int, string](0.9)
	second := NewQProbabilistic[int, string](0.9)
	table := policy.New[int, string]()

	if err := first.Apply(twoStepEpisode(1.0), table); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	s0, a0 := mdp.NewState(0), mdp.NewAction("a0")
	if got := second.Frequency(s0, a0, mdp.NewState(1)); got != 0 {
		t.Errorf("expected a fresh learner to have no observations, got %d", got)
	}
}

func TestQProbabilisticSingleLinkEpisode(t *testing.T) {
	q := NewQProbabilistic[int, string](0.9)
	table := policy.New[int, string]()
	episode := mdp.Episode[int, string]{
		mdp.NewLink(mdp.NewTerminalState(1.0, 3), mdp.NewAction("end")),
	}

	if err := q.Apply(episode, table); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if got := table.Value(mdp.NewState(3), mdp.NewAction("end")); got != 1.0 {
		t.Errorf("expected terminal value 1.0, got %v", got)
	}
	if got := q.Successors(mdp.NewState(3), mdp.NewAction("end")); got != 0 {
		t.Errorf("expected no recorded transitions for a lone link, got %d", got)
	}
}
