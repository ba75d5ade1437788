package state

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Scope runs the tasks of one screen. Close cancels the scope's context and
// waits for every task to return.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
	g      errgroup.Group
}

func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

func (s *Scope) Context() context.Context { return s.ctx }

// Go starts fn in the scope. It reports false if the scope is already closed.
func (s *Scope) Go(fn func(ctx context.Context)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.g.Go(func() error {
		fn(s.ctx)
		return nil
	})
	return true
}

// Active reports whether tasks may still publish results.
func (s *Scope) Active() bool {
	return s.ctx.Err() == nil
}

// Wait blocks until every task started so far has returned.
func (s *Scope) Wait() {
	_ = s.g.Wait()
}

func (s *Scope) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	_ = s.g.Wait()
}
