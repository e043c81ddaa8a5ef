package utils

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()
	now := time.Now()

	id, err := u.NewULIDFromTimestamp(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ulid.Parse(id)
	if err != nil {
		t.Fatalf("invalid ulid %q: %v", id, err)
	}
	if parsed.Time() != ulid.Timestamp(now) {
		t.Errorf("expected timestamp %d, got %d", ulid.Timestamp(now), parsed.Time())
	}
}

func TestNewSessionIDUnique(t *testing.T) {
	u := New()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := u.NewSessionID()
		if len(id) != 26 {
			t.Fatalf("unexpected session id %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate session id %q", id)
		}
		seen[id] = true
	}
}
