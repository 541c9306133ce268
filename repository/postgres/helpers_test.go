package postgres

import (
	"testing"
	"time"
)

func TestLimitArg(t *testing.T) {
	// NULL means LIMIT ALL; internal readers depend on it.
	if got := limitArg(0); got != nil {
		t.Errorf("limitArg(0) = %v, want nil", got)
	}
	if got := limitArg(-5); got != nil {
		t.Errorf("limitArg(-5) = %v, want nil", got)
	}
	if got := limitArg(50); got != 50 {
		t.Errorf("limitArg(50) = %v, want 50", got)
	}
	if got := limitArg(maxPageSize + 1); got != maxPageSize {
		t.Errorf("limitArg(%d) = %v, want %d", maxPageSize+1, got, maxPageSize)
	}
}

func TestNullTime(t *testing.T) {
	if got := nullTime(nil); got != nil {
		t.Errorf("nullTime(nil) = %v", got)
	}
	var zero time.Time
	if got := nullTime(&zero); got != nil {
		t.Errorf("nullTime(zero) = %v", got)
	}
	stamp := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if got := nullTime(&stamp); got != stamp {
		t.Errorf("nullTime(%v) = %v", stamp, got)
	}
}
