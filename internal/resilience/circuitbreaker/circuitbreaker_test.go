package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
)

func TestCircuitBreaker_Execute(t *testing.T) {
	cb := New(DefaultConfig("test"))

	result, err := cb.Execute(func() (interface{}, error) {
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Execute err=%v", err)
	}
	if result != "ok" {
		t.Errorf("result = %v, want ok", result)
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("state = %v, want closed", cb.State())
	}
}

func TestCircuitBreaker_opensAfterConsecutiveFailures(t *testing.T) {
	cfg := Config{
		Name:             "test-trip",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 1.0,
		MinRequests:      3,
	}
	cb := New(cfg)

	boom := errors.New("boom")
	for i := 0; i < 3; i++ {
		if _, err := cb.Execute(func() (interface{}, error) { return nil, boom }); !errors.Is(err, boom) {
			t.Fatalf("attempt %d: err=%v, want boom", i, err)
		}
	}

	if !cb.IsOpen() {
		t.Fatalf("breaker still closed after %d consecutive failures", 3)
	}

	_, err := cb.Execute(func() (interface{}, error) { return "ok", nil })
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("err=%v, want ErrOpenState while open", err)
	}
}

func TestCircuitBreaker_staysClosedBelowMinRequests(t *testing.T) {
	cfg := Config{
		Name:             "test-min",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 0.5,
		MinRequests:      10,
	}
	cb := New(cfg)

	boom := errors.New("boom")
	for i := 0; i < 5; i++ {
		_, _ = cb.Execute(func() (interface{}, error) { return nil, boom })
	}

	if cb.IsOpen() {
		t.Errorf("breaker opened below the minimum request count")
	}
}

func TestCircuitBreaker_Name(t *testing.T) {
	cb := New(DefaultConfig("database"))
	if cb.Name() != "database" {
		t.Errorf("Name = %q, want database", cb.Name())
	}
}
