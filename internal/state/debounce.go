package state

import (
	"sync"
	"time"
)

// Debouncer forwards a value only after no newer value arrived for the quiet
// period. Each Push restarts the wait.
type Debouncer[T any] struct {
	clock Clock
	quiet time.Duration
	emit  func(T)

	mu    sync.Mutex
	timer Timer
	gen   uint64
}

func NewDebouncer[T any](clock Clock, quiet time.Duration, emit func(T)) *Debouncer[T] {
	if clock == nil {
		clock = RealClock
	}
	return &Debouncer[T]{clock: clock, quiet: quiet, emit: emit}
}

func (d *Debouncer[T]) Push(value T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.quiet, func() {
		d.mu.Lock()
		stale := gen != d.gen
		if !stale {
			d.timer = nil
		}
		d.mu.Unlock()
		// A real timer can fire after Stop lost the race; drop it.
		if !stale {
			d.emit(value)
		}
	})
}

// Stop drops any pending value.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}
