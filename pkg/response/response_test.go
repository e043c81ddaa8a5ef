package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorIs(t *testing.T) {
	errNotFound := NewError(http.StatusNotFound, "session not found")
	wrapped := fmt.Errorf("get transcript: %w", errNotFound)

	if !errors.Is(wrapped, errNotFound) {
		t.Error("expected wrapped error to match sentinel")
	}
	if errors.Is(wrapped, NewError(http.StatusBadRequest, "session not found")) {
		t.Error("errors with different codes should not match")
	}
	if !errors.Is(wrapped, NewError(http.StatusNotFound, "session not found")) {
		t.Error("errors with the same code and message should match")
	}
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "response error", err: NewError(http.StatusServiceUnavailable, "down"), expected: http.StatusServiceUnavailable},
		{name: "wrapped", err: fmt.Errorf("x: %w", NewError(http.StatusBadRequest, "bad")), expected: http.StatusBadRequest},
		{name: "plain", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusCode(tt.err); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}
