package testutil

import (
	"testing"
	"time"
)

// WaitTimeout bounds WaitFor.
const WaitTimeout = 5 * time.Second

// WaitFor polls cond until it returns true, failing the test after
// WaitTimeout. what describes the awaited condition in the failure message.
func WaitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(WaitTimeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out after %s waiting for %s", WaitTimeout, what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// Recv returns the next value from ch, failing the test if none arrives
// within WaitTimeout or if ch is closed.
func Recv[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case v, ok := <-ch:
		if !ok {
			t.Fatal("channel closed while waiting for a value")
		}
		return v
	case <-time.After(WaitTimeout):
		t.Fatalf("timed out after %s waiting for a value", WaitTimeout)
	}
	panic("unreachable")
}
