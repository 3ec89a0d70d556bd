package formflow

import (
	"strings"
	"sync"
	"time"
)

type Status string

const (
	StatusEditing    Status = "editing"
	StatusSubmitting Status = "submitting"
	StatusSubmitted  Status = "submitted"
	StatusFailed     Status = "failed"
)

// AutoAdvanceDelay is how long a selected option stays visible before the
// form moves to the next card.
const AutoAdvanceDelay = 400 * time.Millisecond

const multiValueSeparator = ","

// FormState tracks position and answers through an ordered question list.
// Selecting an option on a choice question schedules a delayed auto-advance;
// any later state-changing action invalidates the pending advance, so a
// stale timer fire never moves the form. Safe for use from the timer
// goroutine.
type FormState struct {
	mu sync.Mutex

	questions        []Question
	values           map[string]string
	current          int
	status           Status
	autoAdvanceDelay time.Duration

	advanceGen   int
	advanceTimer *time.Timer
}

func NewFormState(questions []Question) *FormState {
	return &FormState{
		questions:        questions,
		values:           map[string]string{},
		status:           StatusEditing,
		autoAdvanceDelay: AutoAdvanceDelay,
	}
}

func (f *FormState) Len() int {
	return len(f.questions)
}

func (f *FormState) CurrentIndex() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

// CurrentQuestion returns false when the form is past the last question,
// i.e. at the submit position.
func (f *FormState) CurrentQuestion() (Question, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current >= len(f.questions) {
		return Question{}, false
	}
	return f.questions[f.current], true
}

func (f *FormState) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Advance moves one question forward, clamped to the submit position.
func (f *FormState) Advance() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelPendingAdvanceLocked()
	f.advanceLocked()
}

// Retreat moves one question back, clamped to the first question.
func (f *FormState) Retreat() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelPendingAdvanceLocked()
	if f.current > 0 {
		f.current--
	}
}

// SetAnswer records the raw answer for a question. Single-choice and text
// answers overwrite; multi-choice answers toggle membership of the value in
// the stored comma-joined set. Choice questions schedule an auto-advance so
// the UI can show the selection before moving on; text questions advance
// only on explicit action.
func (f *FormState) SetAnswer(questionID string, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelPendingAdvanceLocked()

	question, ok := f.questionByID(questionID)
	if !ok {
		return
	}

	switch question.Kind {
	case KindMultiChoice:
		f.values[questionID] = toggleMultiValue(f.values[questionID], value)
	default:
		f.values[questionID] = value
	}

	if question.Kind == KindSingleChoice || question.Kind == KindMultiChoice {
		f.scheduleAutoAdvanceLocked()
	}
}

func (f *FormState) Answer(questionID string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[questionID]
}

// Values returns a copy of the answers, ready for submission.
func (f *FormState) Values() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	values := make(map[string]string, len(f.values))
	for k, v := range f.values {
		values[k] = v
	}
	return values
}

// IsComplete reports whether every required question has a non-empty answer.
func (f *FormState) IsComplete() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, q := range f.questions {
		if q.Required && strings.TrimSpace(f.values[q.ID]) == "" {
			return false
		}
	}
	return true
}

// AtEnd reports whether the form reached the submit position.
func (f *FormState) AtEnd() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current >= len(f.questions)
}

func (f *FormState) BeginSubmit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelPendingAdvanceLocked()
	f.status = StatusSubmitting
}

func (f *FormState) MarkSubmitted() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = StatusSubmitted
}

// MarkFailed returns the form to an editable state so the user can resubmit.
func (f *FormState) MarkFailed() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = StatusFailed
}

// Reset clears answers and position, e.g. after a successful submission or
// when the form is left.
func (f *FormState) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelPendingAdvanceLocked()
	f.values = map[string]string{}
	f.current = 0
	f.status = StatusEditing
}

func (f *FormState) advanceLocked() {
	if f.current < len(f.questions) {
		f.current++
	}
}

func (f *FormState) scheduleAutoAdvanceLocked() {
	f.advanceGen++
	gen := f.advanceGen
	f.advanceTimer = time.AfterFunc(f.autoAdvanceDelay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.advanceGen != gen {
			// A newer action invalidated this transition.
			return
		}
		f.advanceLocked()
	})
}

func (f *FormState) cancelPendingAdvanceLocked() {
	f.advanceGen++
	if f.advanceTimer != nil {
		f.advanceTimer.Stop()
		f.advanceTimer = nil
	}
}

func (f *FormState) questionByID(questionID string) (Question, bool) {
	for _, q := range f.questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return Question{}, false
}

func toggleMultiValue(current string, value string) string {
	if current == "" {
		return value
	}

	parts := strings.Split(current, multiValueSeparator)
	kept := make([]string, 0, len(parts)+1)
	found := false
	for _, p := range parts {
		if p == value {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		kept = append(kept, value)
	}
	return strings.Join(kept, multiValueSeparator)
}
