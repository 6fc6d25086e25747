package assistant

import (
	"sync"

	"github.com/google/uuid"

	"github.com/apexridge/roofline/internal/core"
)

// sessionStore keeps per-session conversation history in memory. Histories
// are bounded to the configured window and do not survive a restart.
type sessionStore struct {
	mu       sync.Mutex
	window   int
	sessions map[string][]core.Turn
}

func newSessionStore(window int) *sessionStore {
	return &sessionStore{
		window:   window,
		sessions: make(map[string][]core.Turn),
	}
}

// resolve returns the session ID to use, minting a new one when the caller
// did not supply any.
func (s *sessionStore) resolve(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

// history returns a copy of the session's retained turns.
func (s *sessionStore) history(id string) []core.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := s.sessions[id]
	out := make([]core.Turn, len(turns))
	copy(out, turns)
	return out
}

// append records a user/assistant exchange and trims the session to the
// retention window.
func (s *sessionStore) append(id, userMsg, assistantMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := append(s.sessions[id],
		core.Turn{Role: "user", Content: userMsg},
		core.Turn{Role: "assistant", Content: assistantMsg},
	)
	if len(turns) > s.window {
		turns = turns[len(turns)-s.window:]
	}
	s.sessions[id] = turns
}
