// Package screen holds the per-screen state: each holder turns user actions
// into calls on the repository layer and publishes what the view should show.
package screen

import (
	"context"
	"time"

	"github.com/kevinmichaelchen/gh-user-search/internal/failure"
	"github.com/kevinmichaelchen/gh-user-search/internal/result"
	"github.com/kevinmichaelchen/gh-user-search/internal/state"
)

const (
	// MinRefreshDuration keeps the refresh indicator visible long enough not
	// to flash.
	MinRefreshDuration = 500 * time.Millisecond
	SearchDebounce     = 300 * time.Millisecond
	SimilarUsersLimit  = 5
)

type options struct {
	ctx   context.Context
	clock state.Clock
}

type Option func(*options)

// WithContext bounds the screen's lifetime by ctx as well as by Close.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

func WithClock(c state.Clock) Option {
	return func(o *options) { o.clock = c }
}

func buildOptions(opts []Option) options {
	o := options{ctx: context.Background(), clock: state.RealClock}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// toState converts a repository result into view state.
func toState[T any](r result.Result[T]) state.State[T] {
	switch r.Kind() {
	case result.KindSuccess:
		data, _ := r.Data()
		return state.Success(data)
	case result.KindError:
		return state.Error[T](failure.Message(r.Err()))
	case result.KindLoading:
		return state.Loading[T]()
	default:
		return state.Error[T](failure.MsgUnexpected)
	}
}

// publish sets v only while the screen is alive.
func publish[T any](ctx context.Context, v *state.Var[T], value T) bool {
	if ctx.Err() != nil {
		return false
	}
	v.Set(value)
	return true
}
