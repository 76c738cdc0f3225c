package pets

import "errors"

// ErrNotFound is returned by callers that need a pet to exist. The store and
// the repository never return it: a missing pet is an empty result there.
var ErrNotFound = errors.New("pet not found")

// ErrWatcherStopped is returned by First when the watcher closed without
// publishing anything and without an error of its own.
var ErrWatcherStopped = errors.New("watcher stopped")
