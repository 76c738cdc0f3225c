package pets

import (
	"gopkg.in/tomb.v2"
)

// Watcher publishes snapshots of T. The first snapshot is sent as soon as the
// watch is active and another follows every change. A consumer that falls
// behind only receives the latest pending snapshot.
//
// Changes is closed when the watcher dies; Err then reports why (nil after
// a plain Stop).
type Watcher[T any] interface {
	Changes() <-chan T
	Kill()
	Wait() error
	Stop() error
	Err() error
}

// QueryWatcher re-runs a query every time its Hub is notified.
type QueryWatcher[T any] struct {
	tomb    tomb.Tomb
	changes chan T
}

var _ Watcher[int] = (*QueryWatcher[int])(nil)

// NewQueryWatcher starts a watcher that publishes the result of query now and
// after every hub notification. A query error kills the watcher.
func NewQueryWatcher[T any](hub *Hub, query func() (T, error)) *QueryWatcher[T] {
	w := &QueryWatcher[T]{changes: make(chan T)}
	// Subscribe before the first query so no change slips in between.
	notify, unsubscribe := hub.Subscribe()
	w.tomb.Go(func() error {
		defer close(w.changes)
		defer unsubscribe()
		return w.loop(notify, query)
	})
	return w
}

func (w *QueryWatcher[T]) loop(notify <-chan struct{}, query func() (T, error)) error {
	value, err := query()
	if err != nil {
		return err
	}
	out := w.changes
	for {
		select {
		case <-w.tomb.Dying():
			return tomb.ErrDying
		case <-notify:
			if value, err = query(); err != nil {
				return err
			}
			out = w.changes
		case out <- value:
			out = nil
		}
	}
}

func (w *QueryWatcher[T]) Changes() <-chan T { return w.changes }
func (w *QueryWatcher[T]) Kill()             { w.tomb.Kill(nil) }
func (w *QueryWatcher[T]) Wait() error       { return w.tomb.Wait() }
func (w *QueryWatcher[T]) Err() error        { return w.tomb.Err() }

func (w *QueryWatcher[T]) Stop() error {
	w.Kill()
	return w.Wait()
}

type mapWatcher[S, T any] struct {
	tomb    tomb.Tomb
	src     Watcher[S]
	fn      func(S) T
	changes chan T
}

// MapWatcher adapts src by applying fn to every snapshot. The returned
// watcher owns src: stopping one stops the other, and a failure of src is
// reported by the returned watcher's Err.
func MapWatcher[S, T any](src Watcher[S], fn func(S) T) Watcher[T] {
	w := &mapWatcher[S, T]{
		src:     src,
		fn:      fn,
		changes: make(chan T),
	}
	w.tomb.Go(func() error {
		defer close(w.changes)
		err := w.loop()
		w.src.Kill()
		if srcErr := w.src.Wait(); err == tomb.ErrDying && srcErr != nil {
			return srcErr
		}
		return err
	})
	return w
}

func (w *mapWatcher[S, T]) loop() error {
	var (
		value T
		out   chan T
	)
	in := w.src.Changes()
	for {
		select {
		case <-w.tomb.Dying():
			return tomb.ErrDying
		case s, ok := <-in:
			if !ok {
				return w.src.Wait()
			}
			value = w.fn(s)
			out = w.changes
		case out <- value:
			out = nil
		}
	}
}

func (w *mapWatcher[S, T]) Changes() <-chan T { return w.changes }
func (w *mapWatcher[S, T]) Kill()             { w.tomb.Kill(nil) }
func (w *mapWatcher[S, T]) Wait() error       { return w.tomb.Wait() }
func (w *mapWatcher[S, T]) Err() error        { return w.tomb.Err() }

func (w *mapWatcher[S, T]) Stop() error {
	w.Kill()
	return w.Wait()
}

// First blocks until w publishes its first snapshot, then stops w.
// It is the pull-style way to read a stream once.
func First[T any](w Watcher[T]) (T, error) {
	v, ok := <-w.Changes()
	stopErr := w.Stop()
	if !ok {
		var zero T
		if stopErr == nil {
			stopErr = ErrWatcherStopped
		}
		return zero, stopErr
	}
	return v, nil
}
