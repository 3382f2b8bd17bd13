package renderer

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/scoutsheirbrug/attest-api/internal/attest"
)

// PreviewStore keeps one debounced render pipeline per interactive session,
// so a burst of form edits produces a single render reflecting the latest
// state. Sessions are ephemeral and pruned when idle.
type PreviewStore struct {
	mu       sync.Mutex
	renderer *Renderer
	delay    time.Duration
	sessions map[string]*previewSession
}

type previewSession struct {
	scheduler *Scheduler

	mu      sync.Mutex
	latest  *DocumentHandle
	touched time.Time
}

// NewPreviewStore builds a store whose sessions debounce with the given
// quiet period.
func NewPreviewStore(r *Renderer, delay time.Duration) *PreviewStore {
	return &PreviewStore{
		renderer: r,
		delay:    delay,
		sessions: make(map[string]*previewSession),
	}
}

// Schedule queues a debounced render of cert for the session, creating the
// session on first use. It returns the session id, minting one when empty.
func (s *PreviewStore) Schedule(sessionID string, cert attest.Certificate) string {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		session = &previewSession{}
		session.scheduler = NewScheduler(s.delay, func(cert attest.Certificate) {
			handle, err := s.renderer.Render(cert)
			if err != nil {
				slog.Warn("Preview render failed", "session_id", sessionID, "error", err)
				return
			}
			session.mu.Lock()
			session.latest = handle
			session.mu.Unlock()
		})
		s.sessions[sessionID] = session
	}
	s.mu.Unlock()

	session.mu.Lock()
	session.touched = time.Now()
	session.mu.Unlock()
	session.scheduler.Schedule(cert)
	return sessionID
}

// Latest returns the most recent rendered handle for the session. The handle
// is nil while the first render is still pending; ok is false for an unknown
// session.
func (s *PreviewStore) Latest(sessionID string) (*DocumentHandle, bool) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil, false
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.latest, true
}

// PruneIdle drops sessions untouched for longer than maxAge and reports how
// many were removed.
func (s *PreviewStore) PruneIdle(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()
	pruned := 0
	for id, session := range s.sessions {
		session.mu.Lock()
		idle := session.touched.Before(cutoff)
		session.mu.Unlock()
		if idle {
			session.scheduler.Stop()
			delete(s.sessions, id)
			pruned++
		}
	}
	return pruned
}

// Close cancels every pending render and drops all sessions.
func (s *PreviewStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, session := range s.sessions {
		session.scheduler.Stop()
		delete(s.sessions, id)
	}
}
