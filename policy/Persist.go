package policy

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Persistence hooks for the Table. The table itself is agnostic about
// storage: callers provide functions that encode and decode their trait
// types to strings, and the table writes one JSON object per state, one
// state per line.

// record is the wire form of one state and its action values
type record struct {
	State   string             `json:"state"`
	Entries map[string]float64 `json:"entries"`
}

// Write serializes the full contents of t to w, one state per line.
// encState and encAction turn the caller's trait types into strings;
// distinct traits must encode to distinct strings for the table to
// survive a round trip.
func Write[S, A comparable](w io.Writer, t *Table[S, A],
	encState func(S) (string, error), encAction func(A) (string, error)) error {

	for state, row := range t.values {
		encoded, err := encState(state)
		if err != nil {
			return fmt.Errorf("write: could not encode state %v: %w", state, err)
		}

		entries := make(map[string]float64, len(row))
		for action, value := range row {
			key, err := encAction(action)
			if err != nil {
				return fmt.Errorf("write: could not encode action %v: %w", action, err)
			}
			entries[key] = value
		}

		line, err := json.Marshal(record{State: encoded, Entries: entries})
		if err != nil {
			return fmt.Errorf("write: could not marshal state %v: %w", state, err)
		}
		if _, err := w.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	return nil
}

// Read deserializes table contents from r into t, overwriting any
// values already stored for the states read. decState and decAction
// invert the encoders given to Write.
func Read[S, A comparable](r io.Reader, t *Table[S, A],
	decState func(string) (S, error), decAction func(string) (A, error)) error {

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		var rec record
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return fmt.Errorf("read: could not unmarshal line: %w", err)
		}

		state, err := decState(rec.State)
		if err != nil {
			return fmt.Errorf("read: could not decode state %q: %w", rec.State, err)
		}

		row, ok := t.values[state]
		if !ok {
			row = make(map[A]float64, len(rec.Entries))
			t.values[state] = row
		}
		for key, value := range rec.Entries {
			action, err := decAction(key)
			if err != nil {
				return fmt.Errorf("read: could not decode action %q: %w", key, err)
			}
			row[action] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read: %w", err)
	}
	return nil
}
