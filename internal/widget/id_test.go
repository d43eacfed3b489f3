package widget

import "testing"

// TestNewID verifies the widget identifier shape.
func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 32; i++ {
		id := NewID()
		if len(id) != 8 {
			t.Fatalf("NewID() = %q, want 8 characters", id)
		}
		seen[id] = true
	}
	if len(seen) < 2 {
		t.Error("NewID() produced no variation")
	}
}

// TestQuestionID verifies the derived per-question identifiers.
func TestQuestionID(t *testing.T) {
	if got := QuestionID("deadbeef", 0); got != "deadbeef_q1" {
		t.Errorf("QuestionID(_, 0) = %q, want %q", got, "deadbeef_q1")
	}
	if got := QuestionID("deadbeef", 4); got != "deadbeef_q5" {
		t.Errorf("QuestionID(_, 4) = %q, want %q", got, "deadbeef_q5")
	}
}
