package orchestrator

import (
	"context"
	"sync"

	"go.trai.ch/buildfy/internal/core/domain"
)

// Session is one build attempt, from a validated request to its terminal outcome.
type Session struct {
	// ID uniquely identifies the session.
	ID string
	// Request is the validated request the session builds.
	Request domain.BuildRequest

	done    chan struct{}
	mu      sync.Mutex
	outcome domain.BuildOutcome
}

func newSession(id string, req domain.BuildRequest) *Session {
	return &Session{
		ID:      id,
		Request: req,
		done:    make(chan struct{}),
	}
}

// Done is closed once the session has reached a terminal state and the
// orchestrator is idle again.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Outcome returns the terminal outcome. It is only meaningful after Done is closed.
func (s *Session) Outcome() domain.BuildOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// Wait blocks until the session finishes or ctx is done.
func (s *Session) Wait(ctx context.Context) (domain.BuildOutcome, error) {
	select {
	case <-s.done:
		return s.Outcome(), nil
	case <-ctx.Done():
		return domain.BuildOutcome{}, ctx.Err()
	}
}

func (s *Session) finish(outcome domain.BuildOutcome) {
	s.mu.Lock()
	s.outcome = outcome
	s.mu.Unlock()
}
