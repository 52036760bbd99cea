package auth

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one authenticated run of the tool. The API key is
// held here for the life of the process and never persisted.
type Session struct {
	ID      string
	Started time.Time

	apiKey string
}

func newSession() *Session {
	return &Session{
		ID:      uuid.NewString(),
		Started: time.Now(),
	}
}

// DisarmedSession returns an unauthenticated session for the commands
// that manage the gate itself (first-run PIN setup).
func DisarmedSession() *Session {
	return newSession()
}

// SetAPIKey caches the service credential for this session only.
func (s *Session) SetAPIKey(key string) {
	s.apiKey = key
}

// APIKey returns the session credential, empty when none was supplied.
func (s *Session) APIKey() string {
	return s.apiKey
}

// Evening logging reminder window, inclusive of the start hour.
const (
	nagStartHour = 18
	nagEndHour   = 22
)

// NagDue reports whether the "log today's cases" reminder should show.
// It is a plain time-of-day check evaluated synchronously on each
// interaction; there is no scheduler behind it.
func NagDue(now time.Time) bool {
	h := now.Hour()
	return h >= nagStartHour && h < nagEndHour
}
