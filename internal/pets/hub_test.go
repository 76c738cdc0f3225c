package pets

import (
	"sync"
	"testing"
)

func TestHub_NotifyCoalesces(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	defer cancel()

	for i := 0; i < 5; i++ {
		h.Notify()
	}

	select {
	case <-ch:
	default:
		t.Fatal("no signal after Notify")
	}
	select {
	case <-ch:
		t.Fatal("signals were not coalesced")
	default:
	}
}

func TestHub_Unsubscribe(t *testing.T) {
	h := NewHub()
	_, cancelA := h.Subscribe()
	chB, cancelB := h.Subscribe()
	defer cancelB()

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}

	cancelA()
	cancelA()
	if h.Len() != 1 {
		t.Fatalf("Len() after cancel = %d, want 1", h.Len())
	}

	h.Notify()
	select {
	case <-chB:
	default:
		t.Error("remaining subscriber was not notified")
	}
}

func TestHub_ConcurrentNotify(t *testing.T) {
	h := NewHub()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, cancel := h.Subscribe()
			cancel()
		}()
		go func() {
			defer wg.Done()
			h.Notify()
		}()
	}
	wg.Wait()

	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}
