package search

import "testing"

func TestState(t *testing.T) {
	s := NewState()

	if q := s.Get(); q != "" {
		t.Fatalf("initial query=%q, want empty", q)
	}

	s.Set("lamp")
	if q := s.Get(); q != "lamp" {
		t.Fatalf("query=%q, want lamp", q)
	}

	s.Clear()
	if q := s.Get(); q != "" {
		t.Fatalf("query=%q after clear", q)
	}
}
