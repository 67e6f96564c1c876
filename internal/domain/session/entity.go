package session

import "time"

type Session struct {
	key       Key
	state     State
	createdAt time.Time
	updatedAt time.Time
}

func NewSession(key Key, now time.Time) *Session {
	return &Session{
		key:       key,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructSession(key Key, state State, createdAt, updatedAt time.Time) *Session {
	return &Session{
		key:       key,
		state:     state,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// History returns a copy of the stored conversation, oldest first.
func (s *Session) History() []Message {
	out := make([]Message, len(s.state.History))
	copy(out, s.state.History)
	return out
}

// ReplaceHistory stores the latest conversation, keeping only the most recent
// MaxHistory messages.
func (s *Session) ReplaceHistory(history []Message, now time.Time) {
	if len(history) > MaxHistory {
		history = history[len(history)-MaxHistory:]
	}
	s.state.History = append([]Message(nil), history...)
	s.updatedAt = now
}

func (s *Session) Key() Key             { return s.key }
func (s *Session) State() State         { return s.state }
func (s *Session) CreatedAt() time.Time { return s.createdAt }
func (s *Session) UpdatedAt() time.Time { return s.updatedAt }
