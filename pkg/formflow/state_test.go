package formflow

import (
	"testing"
	"time"
)

func testQuestions() []Question {
	return []Question{
		{ID: "q1", Kind: KindSingleChoice, Options: []string{"A", "B"}},
		{ID: "q2", Kind: KindMultiChoice, Options: []string{"X", "Y", "Z"}},
		{ID: "q3", Kind: KindText},
		{ID: "email", Kind: KindText, Required: true},
	}
}

func TestNavigationClamping(t *testing.T) {
	form := NewFormState(testQuestions())

	form.Retreat()
	if form.CurrentIndex() != 0 {
		t.Errorf("retreat at start should clamp to 0, got %d", form.CurrentIndex())
	}

	for i := 0; i < 10; i++ {
		form.Advance()
	}
	if form.CurrentIndex() != form.Len() {
		t.Errorf("advance past end should clamp to %d, got %d", form.Len(), form.CurrentIndex())
	}
	if !form.AtEnd() {
		t.Error("expected form to be at end")
	}

	form.Retreat()
	if form.CurrentIndex() != form.Len()-1 {
		t.Errorf("expected index %d after retreat, got %d", form.Len()-1, form.CurrentIndex())
	}
}

func TestSetAnswerOverwritesSingleChoice(t *testing.T) {
	form := NewFormState(testQuestions())

	form.SetAnswer("q1", "A")
	form.SetAnswer("q1", "B")

	if got := form.Answer("q1"); got != "B" {
		t.Errorf("expected B, got %q", got)
	}
}

func TestMultiChoiceToggle(t *testing.T) {
	tests := []struct {
		name   string
		toggle []string
		want   string
	}{
		{
			name:   "single selection",
			toggle: []string{"X"},
			want:   "X",
		},
		{
			name:   "two selections joined",
			toggle: []string{"X", "Z"},
			want:   "X,Z",
		},
		{
			name:   "double toggle removes",
			toggle: []string{"X", "Y", "X"},
			want:   "Y",
		},
		{
			name:   "double toggle is idempotent",
			toggle: []string{"X", "Y", "Z", "Y", "Y"},
			want:   "X,Z,Y",
		},
		{
			name:   "toggle everything off",
			toggle: []string{"X", "X"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewFormState(testQuestions())
			for _, v := range tt.toggle {
				form.SetAnswer("q2", v)
			}
			if got := form.Answer("q2"); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAutoAdvanceFiresForChoiceQuestions(t *testing.T) {
	form := NewFormState(testQuestions())
	form.autoAdvanceDelay = 10 * time.Millisecond

	form.SetAnswer("q1", "A")

	if form.CurrentIndex() != 0 {
		t.Error("auto-advance should not apply immediately")
	}

	time.Sleep(50 * time.Millisecond)
	if form.CurrentIndex() != 1 {
		t.Errorf("expected auto-advance to index 1, got %d", form.CurrentIndex())
	}
}

func TestAutoAdvanceNotScheduledForTextQuestions(t *testing.T) {
	form := NewFormState(testQuestions())
	form.autoAdvanceDelay = 10 * time.Millisecond
	form.Advance()
	form.Advance()

	form.SetAnswer("q3", "free text")

	time.Sleep(50 * time.Millisecond)
	if form.CurrentIndex() != 2 {
		t.Errorf("text answer must not auto-advance, got index %d", form.CurrentIndex())
	}
}

func TestStaleAutoAdvanceIsCancelled(t *testing.T) {
	form := NewFormState(testQuestions())
	form.autoAdvanceDelay = 20 * time.Millisecond

	form.SetAnswer("q1", "A")
	// User moves on before the delayed transition fires.
	form.Advance()

	time.Sleep(80 * time.Millisecond)
	if form.CurrentIndex() != 1 {
		t.Errorf("stale auto-advance applied, expected index 1, got %d", form.CurrentIndex())
	}
}

func TestResetCancelsPendingAdvance(t *testing.T) {
	form := NewFormState(testQuestions())
	form.autoAdvanceDelay = 20 * time.Millisecond

	form.SetAnswer("q1", "A")
	form.Reset()

	time.Sleep(80 * time.Millisecond)
	if form.CurrentIndex() != 0 {
		t.Errorf("reset should drop pending advance, got index %d", form.CurrentIndex())
	}
	if form.Answer("q1") != "" {
		t.Error("reset should clear answers")
	}
	if form.Status() != StatusEditing {
		t.Errorf("reset should return to editing, got %s", form.Status())
	}
}

func TestIsComplete(t *testing.T) {
	form := NewFormState(testQuestions())

	if form.IsComplete() {
		t.Error("form with empty required answer should not be complete")
	}

	form.SetAnswer("email", "   ")
	if form.IsComplete() {
		t.Error("whitespace answer should not satisfy a required question")
	}

	form.SetAnswer("email", "a@b.com")
	if !form.IsComplete() {
		t.Error("expected form to be complete")
	}
}

func TestStatusTransitions(t *testing.T) {
	form := NewFormState(testQuestions())

	if form.Status() != StatusEditing {
		t.Errorf("expected editing, got %s", form.Status())
	}

	form.BeginSubmit()
	if form.Status() != StatusSubmitting {
		t.Errorf("expected submitting, got %s", form.Status())
	}

	form.MarkFailed()
	if form.Status() != StatusFailed {
		t.Errorf("expected failed, got %s", form.Status())
	}

	form.BeginSubmit()
	form.MarkSubmitted()
	if form.Status() != StatusSubmitted {
		t.Errorf("expected submitted, got %s", form.Status())
	}
}
