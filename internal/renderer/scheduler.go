package renderer

import (
	"sync"
	"time"

	"github.com/scoutsheirbrug/attest-api/internal/attest"
)

// DefaultQuietPeriod is how long the input must stay unchanged before a
// scheduled render actually runs.
const DefaultQuietPeriod = 500 * time.Millisecond

// Scheduler debounces renders with cancel-replace semantics: at most one
// pending timer exists, scheduling again supersedes it, and a superseded
// timer produces no observable output. The executed render always reflects
// the latest scheduled certificate.
type Scheduler struct {
	mu    sync.Mutex
	delay time.Duration
	run   func(attest.Certificate)
	timer *time.Timer
	gen   uint64
}

// NewScheduler builds a scheduler that invokes run once per quiet period.
// A non-positive delay falls back to DefaultQuietPeriod.
func NewScheduler(delay time.Duration, run func(attest.Certificate)) *Scheduler {
	if delay <= 0 {
		delay = DefaultQuietPeriod
	}
	return &Scheduler{delay: delay, run: run}
}

// Schedule arms a render for cert after the quiet period, cancelling any
// render still pending from an earlier call.
func (s *Scheduler) Schedule(cert attest.Certificate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen
	s.timer = time.AfterFunc(s.delay, func() {
		s.fire(gen, cert)
	})
}

// Flush runs the pending render immediately, if any.
func (s *Scheduler) Flush() {
	s.mu.Lock()
	timer := s.timer
	s.mu.Unlock()
	if timer != nil && timer.Stop() {
		timer.Reset(0)
	}
}

// Stop cancels any pending render. A render already past its generation
// check may still complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

// fire runs the render unless a newer Schedule or Stop superseded it.
// Latest generation wins regardless of timer interleaving.
func (s *Scheduler) fire(gen uint64, cert attest.Certificate) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.mu.Unlock()
	s.run(cert)
}
