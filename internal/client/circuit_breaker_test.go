package client

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker(t *testing.T) {
	// Configure for fast testing: 3 failures, 100ms cooldown
	cb := NewCircuitBreaker(3, 100*time.Millisecond)

	// Initial State: Closed
	if cb.State() != StateClosed {
		t.Errorf("Expected closed state, got %v", cb.State())
	}
	if !cb.Allow() {
		t.Error("Should allow calls in closed state")
	}

	// Trigger failures
	cb.Failure()
	cb.Failure()
	if cb.State() != StateClosed {
		t.Errorf("Should remain closed after 2 failures")
	}

	cb.Failure()
	// Should trip now (3 failures)
	if cb.State() != StateOpen {
		t.Errorf("Expected open state after 3 failures")
	}
	if cb.Allow() {
		t.Error("Should NOT allow calls in open state")
	}

	// Wait for cooldown (half-open)
	time.Sleep(150 * time.Millisecond)

	// First call after the cooldown probes
	if !cb.Allow() {
		t.Error("Should allow probe call after cooldown")
	}
	if cb.State() != StateHalfOpen {
		t.Errorf("Expected half-open state, got %v", cb.State())
	}

	// Case A: probe fails -> open again
	cb.Failure()
	if cb.State() != StateOpen {
		t.Errorf("Expected open state after probe failure")
	}

	// Wait again
	time.Sleep(150 * time.Millisecond)
	cb.Allow() // trigger half-open

	// Case B: probe succeeds -> closed
	cb.Success()
	if cb.State() != StateClosed {
		t.Errorf("Expected closed state after probe success")
	}
	if cb.failures != 0 {
		t.Errorf("Failures should be reset")
	}
}

func TestCircuitBreakerDo(t *testing.T) {
	cb := NewCircuitBreaker(2, time.Hour)
	boom := errors.New("boom")

	calls := 0
	fail := func() error { calls++; return boom }
	ok := func() error { calls++; return nil }

	if err := cb.Do(fail); !errors.Is(err, boom) {
		t.Fatalf("Expected wrapped call error, got %v", err)
	}
	if err := cb.Do(fail); !errors.Is(err, boom) {
		t.Fatalf("Expected wrapped call error, got %v", err)
	}
	if cb.State() != StateOpen {
		t.Fatalf("Expected open state after 2 failures, got %v", cb.State())
	}

	// Open breaker rejects without invoking fn.
	if err := cb.Do(ok); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("Expected ErrCircuitOpen, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("Expected fn not to run while open, calls=%d", calls)
	}
}

func TestCircuitBreakerStateString(t *testing.T) {
	cases := map[State]string{
		StateClosed:   "closed",
		StateOpen:     "open",
		StateHalfOpen: "half-open",
		State(42):     "unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}
