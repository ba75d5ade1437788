// Package state provides the observable containers screen holders publish to.
package state

import "sync"

// Var is an observable value. Subscribers always see the latest value;
// intermediate values may be skipped if a subscriber falls behind.
type Var[T any] struct {
	mu     sync.RWMutex
	value  T
	nextID int
	subs   map[int]chan T
}

func NewVar[T any](initial T) *Var[T] {
	return &Var[T]{value: initial, subs: make(map[int]chan T)}
}

func (v *Var[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

func (v *Var[T]) Set(value T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.value = value
	for _, ch := range v.subs {
		offer(ch, value)
	}
}

// Update applies fn to the current value under the write lock.
func (v *Var[T]) Update(fn func(T) T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.value = fn(v.value)
	for _, ch := range v.subs {
		offer(ch, v.value)
	}
}

// Subscribe returns a channel that immediately yields the current value and
// then every later one. Call cancel to stop; the channel is closed.
func (v *Var[T]) Subscribe() (<-chan T, func()) {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++
	ch := make(chan T, 1)
	ch <- v.value
	v.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			delete(v.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// offer replaces any unread value so the channel holds only the latest.
func offer[T any](ch chan T, value T) {
	select {
	case <-ch:
	default:
	}
	ch <- value
}
