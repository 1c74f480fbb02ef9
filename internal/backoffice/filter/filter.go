// Package filter persists the customer-list filter between CLI runs. The
// state is an explicit value object stored in one JSON file; there are no
// package-level globals.
package filter

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// State is the customer-list view the operator last used.
type State struct {
	Filter string `json:"filter,omitempty"`
	Search string `json:"search,omitempty"`
	Page   int    `json:"page,omitempty"`
}

// IsZero reports whether no filter is active.
func (s State) IsZero() bool {
	return s == State{}
}

// Store reads and writes one State file.
type Store struct {
	path string
}

// NewStore points a store at path. The parent directory is created on the
// first Save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted state. A missing or empty file is the zero
// state, not an error; a corrupt file is an error so the caller can decide
// whether to clear it.
func (s *Store) Load() (State, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, nil
		}

		return State{}, errors.Wrap(err, "read filter state")
	}
	if len(raw) == 0 {
		return State{}, nil
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return State{}, errors.Wrap(err, "decode filter state")
	}

	return state, nil
}

// Save writes the state, replacing whatever was there.
func (s *Store) Save(state State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "encode filter state")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "create filter state dir")
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return errors.Wrap(err, "write filter state")
	}

	return nil
}

// Clear removes the persisted state. Clearing an absent file succeeds.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove filter state")
	}

	return nil
}
