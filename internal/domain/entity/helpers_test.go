package entity

import (
	"testing"
	"time"
)

func mustTime(t *testing.T) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, "2024-03-01T10:00:00Z")
	if err != nil {
		t.Fatalf("parse time: %v", err)
	}
	return ts
}
