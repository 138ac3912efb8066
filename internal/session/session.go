// Package session tracks the colour pair being edited and the preview/confirm/cancel flow
// for applying suggestions.
package session

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/irocheck/internal/colour"
)

// State is the preview state of a session.
type State int

const (
	// Idle means the current pair is committed.
	Idle State = iota
	// Previewing means a candidate pair is shown and the committed pair is remembered.
	Previewing
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Previewing:
		return "previewing"
	default:
		return "unknown"
	}
}

// ErrNotPreviewing is returned by Confirm when there is nothing to confirm.
var ErrNotPreviewing = errors.New("no preview in progress")

// Session holds a background/text pair. It is not safe for concurrent use.
type Session struct {
	current  colour.Pair
	original colour.Pair
	state    State
}

// New starts an idle session with the given pair.
func New(bg, text string) (*Session, error) {
	pair, err := normalisePair(bg, text)
	if err != nil {
		return nil, err
	}
	return &Session{current: pair}, nil
}

// State returns the preview state.
func (s *Session) State() State {
	return s.state
}

// Current returns the pair currently shown, which is the candidate while previewing.
func (s *Session) Current() colour.Pair {
	return s.current
}

// Result classifies the pair currently shown.
func (s *Session) Result() colour.ContrastResult {
	return colour.CheckContrast(s.current.Background, s.current.Text)
}

// Set replaces the pair. While previewing, the remembered pair is kept so Cancel still restores it.
func (s *Session) Set(bg, text string) error {
	pair, err := normalisePair(bg, text)
	if err != nil {
		return err
	}
	s.current = pair
	return nil
}

// Swap exchanges background and text.
func (s *Session) Swap() {
	s.current = colour.Pair{Background: s.current.Text, Text: s.current.Background}
}

// Suggestions returns suggestions for the current pair. Suggestions are only offered
// from the committed pair, so previewing does not change them.
func (s *Session) Suggestions(mode colour.Mode) []colour.Suggestion {
	base := s.current
	if s.state == Previewing {
		base = s.original
	}
	return colour.Suggest(mode, base.Background, base.Text)
}

// Preview shows a candidate. The committed pair is remembered on the first preview only,
// so previewing several candidates in a row still cancels back to the start.
func (s *Session) Preview(candidate colour.Suggestion) error {
	pair, err := normalisePair(candidate.Background, candidate.Text)
	if err != nil {
		return err
	}
	if s.state == Idle {
		s.original = s.current
		s.state = Previewing
	}
	s.current = pair
	return nil
}

// Confirm commits the previewed pair.
func (s *Session) Confirm() error {
	if s.state != Previewing {
		return ErrNotPreviewing
	}
	s.original = colour.Pair{}
	s.state = Idle
	return nil
}

// Cancel restores the pair from before the preview. It is a no-op when idle.
func (s *Session) Cancel() {
	if s.state != Previewing {
		return
	}
	s.current = s.original
	s.original = colour.Pair{}
	s.state = Idle
}

func normalisePair(bg, text string) (colour.Pair, error) {
	bgHex, ok := colour.Normalise(bg)
	if !ok {
		return colour.Pair{}, fmt.Errorf("invalid background colour: %q", bg)
	}
	textHex, ok := colour.Normalise(text)
	if !ok {
		return colour.Pair{}, fmt.Errorf("invalid text colour: %q", text)
	}
	return colour.Pair{Background: bgHex, Text: textHex}, nil
}
