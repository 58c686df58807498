package postgres

import (
	"database/sql"
	"errors"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	t.Run("matches sql.ErrNoRows", func(t *testing.T) {
		if !isNotFound(sql.ErrNoRows) {
			t.Fatalf("expected true for sql.ErrNoRows")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isNotFound(errors.New("pq: relation refdata.team does not exist")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestNullableString(t *testing.T) {
	t.Run("returns nil for empty string", func(t *testing.T) {
		if got := nullableString(""); got != nil {
			t.Fatalf("expected nil, got %v", *got)
		}
	})

	t.Run("returns pointer for non-empty string", func(t *testing.T) {
		got := nullableString("QB")
		if got == nil || *got != "QB" {
			t.Fatalf("expected QB, got %v", got)
		}
	})
}
