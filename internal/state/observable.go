package state

import (
	"sync"

	"pets-go/internal/pets"
)

// Observable holds the latest value of a state slot and tells watchers when
// it changes. Watchers are only signalled; they read the value with Value.
type Observable[T any] struct {
	mu    sync.RWMutex
	value T
	hub   *pets.Hub
}

func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial, hub: pets.NewHub()}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Set replaces the value and signals watchers.
func (o *Observable[T]) Set(v T) {
	o.mu.Lock()
	o.value = v
	o.mu.Unlock()
	o.hub.Notify()
}

// Update applies fn to the current value atomically and returns the result.
func (o *Observable[T]) Update(fn func(T) T) T {
	o.mu.Lock()
	o.value = fn(o.value)
	v := o.value
	o.mu.Unlock()
	o.hub.Notify()
	return v
}

// Watch returns a channel that receives a signal after every change, and a
// func that cancels the watch. Signals coalesce while unread.
func (o *Observable[T]) Watch() (<-chan struct{}, func()) {
	return o.hub.Subscribe()
}
