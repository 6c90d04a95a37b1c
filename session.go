package main

import "sync"

// defaultSessionID is the shared bucket used by callers that don't supply
// their own session id. Anything chatting anonymously lands in the same
// conversation; it is a convenience, not an isolation boundary.
const defaultSessionID = "default"

const (
	roleUser  = "user"
	roleModel = "model"
)

// Turn is a single entry in a conversation. The Gemini chat API has no
// separate system role, so the system prompt travels as an ordinary user
// turn at the head of the history.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation holds the ordered turns for one session. The mutex serializes
// whole exchanges, not just appends, so two in-flight requests on the same
// session can never interleave their history.
type Conversation struct {
	mu    sync.Mutex
	turns []Turn
}

// History returns a copy of the recorded turns.
func (c *Conversation) History() []Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// Len reports the number of recorded turns.
func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.turns)
}

// Exchange records the user turn, calls send with a snapshot of the full
// history (user turn included), and records the reply if send succeeds.
// On failure the user turn stays recorded and no model turn is added, so
// the conversation remains consistent and resumable.
//
// The lock is held across the upstream call on purpose: a concurrent
// request on the same session waits here instead of racing the append.
func (c *Conversation) Exchange(userText string, send func(history []Turn) (string, error)) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.turns = append(c.turns, Turn{Role: roleUser, Content: userText})

	snapshot := make([]Turn, len(c.turns))
	copy(snapshot, c.turns)

	reply, err := send(snapshot)
	if err != nil {
		return "", err
	}

	c.turns = append(c.turns, Turn{Role: roleModel, Content: reply})
	return reply, nil
}

// SessionStore maps session ids to conversations. Everything lives in
// process memory for the lifetime of the server; restarts drop all
// sessions, which is an accepted limitation at this scale.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Conversation
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Conversation)}
}

// GetOrCreate returns the conversation for id, creating and seeding it if
// absent. seed runs under the store lock, so concurrent first messages for
// a brand-new id yield exactly one conversation; the second caller reuses
// what the first one created. Reports whether a new conversation was made.
func (s *SessionStore) GetOrCreate(id string, seed func() []Turn) (*Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conv, ok := s.sessions[id]; ok {
		return conv, false
	}

	conv := &Conversation{turns: seed()}
	s.sessions[id] = conv
	return conv, true
}

// Get returns the conversation for id, if any.
func (s *SessionStore) Get(id string) (*Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.sessions[id]
	return conv, ok
}

// Delete removes a conversation and reports whether one existed.
func (s *SessionStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// IDs lists the active session identifiers.
func (s *SessionStore) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	return ids
}

// Len reports the number of active sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
