package state

import (
	"gopkg.in/tomb.v2"

	"pets-go/internal/pets"
)

// subscription drains a watcher on its own goroutine until stopped or until
// the watcher dies. onDone is called with the watcher's error in the second
// case only.
type subscription struct {
	tomb tomb.Tomb
}

func subscribe[T any](w pets.Watcher[T], onValue func(T), onDone func(error)) *subscription {
	s := &subscription{}
	s.tomb.Go(func() error {
		for {
			select {
			case <-s.tomb.Dying():
				w.Stop()
				return nil
			case v, ok := <-w.Changes():
				if !ok {
					onDone(w.Wait())
					return nil
				}
				onValue(v)
			}
		}
	})
	return s
}

// stop tears the subscription down and waits until no callback is running.
func (s *subscription) stop() {
	if s == nil {
		return
	}
	s.tomb.Kill(nil)
	s.tomb.Wait()
}
