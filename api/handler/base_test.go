package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lifeboard/backend/domain"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", domain.ErrTaskNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"invalid", domain.ErrInvalidPayload, http.StatusBadRequest, "INVALID"},
		{"conflict", domain.NewError(domain.ErrCodeConflict, "duplicate"), http.StatusConflict, "CONFLICT"},
		{"wrapped not found", domain.WrapError(domain.ErrCodeNotFound, "note not found", errors.New("no rows")), http.StatusNotFound, "NOT_FOUND"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, code := mapError(tc.err)
			if status != tc.wantStatus || code != tc.wantCode {
				t.Fatalf("mapError = (%d, %q), want (%d, %q)", status, code, tc.wantStatus, tc.wantCode)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	if got := parseDate(""); got != nil {
		t.Errorf("empty input should yield nil, got %v", got)
	}
	if got := parseDate("not a date"); got != nil {
		t.Errorf("garbage input should yield nil, got %v", got)
	}

	plain := parseDate("2026-04-01")
	if plain == nil || !plain.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("plain date parsed as %v", plain)
	}

	full := parseDate("2026-04-01T10:30:00Z")
	if full == nil || !full.Equal(time.Date(2026, 4, 1, 10, 30, 0, 0, time.UTC)) {
		t.Errorf("rfc3339 date parsed as %v", full)
	}
}

func TestParseInt(t *testing.T) {
	if got := parseInt("42", 7); got != 42 {
		t.Errorf("parseInt(42) = %d", got)
	}
	if got := parseInt("", 7); got != 7 {
		t.Errorf("fallback = %d, want 7", got)
	}
	if got := parseInt("abc", 7); got != 7 {
		t.Errorf("fallback = %d, want 7", got)
	}
}
