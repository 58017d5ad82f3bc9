package session

import "CryptoBot/internal/model"

// Store holds one session's conversation state: an append-only message log
// and a single-slot mailbox for a shortcut-selected question awaiting its
// turn. Turns are strictly sequential per session, so no locking is needed
// here; the orchestrator serializes access.
type Store struct {
	messages   []model.Message
	autoPrompt string
	hasAuto    bool
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{}
}

// Append adds a message to the end of the log.
func (s *Store) Append(msg model.Message) {
	s.messages = append(s.messages, msg)
}

// Messages returns the log in insertion order. The returned slice is a copy;
// the log itself is append-only.
func (s *Store) Messages() []model.Message {
	out := make([]model.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of logged messages.
func (s *Store) Len() int {
	return len(s.messages)
}

// SetAutoPrompt stores a shortcut-selected question. A later call before
// the slot is consumed replaces the earlier value; at most one is pending.
func (s *Store) SetAutoPrompt(text string) {
	s.autoPrompt = text
	s.hasAuto = true
}

// TakeAutoPrompt returns the pending question and clears the slot. The
// second return is false when no prompt is pending.
func (s *Store) TakeAutoPrompt() (string, bool) {
	if !s.hasAuto {
		return "", false
	}
	text := s.autoPrompt
	s.autoPrompt = ""
	s.hasAuto = false
	return text, true
}
