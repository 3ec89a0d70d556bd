package notification

import (
	"testing"
	"time"

	"github.com/rorygeddes/Luni.ca/pkg/db/leads"
)

func TestBuildPayloadMapsAnswersAndMetadata(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)
	response := leads.SurveyResponse{
		ID: "2fd3f6a0-9b37-4d88-b3f1-0f2f6f1e9a11",
		Answers: map[string]string{
			"email": "a@b.com",
			"name":  "Sam",
			"q1":    "Budgeting app",
			"q2":    "Rent/Housing",
			"q11":   "Textbooks are expensive",
		},
		CreatedAt: createdAt,
	}

	payload := BuildPayload(response)

	if payload.Email != "a@b.com" || payload.Name != "Sam" {
		t.Errorf("contact fields not mapped: %+v", payload)
	}
	if payload.SurveyID != response.ID {
		t.Errorf("expected survey_id %q, got %q", response.ID, payload.SurveyID)
	}
	if payload.CurrentTrackingMethod != "Budgeting app" {
		t.Errorf("q1 not mapped, got %q", payload.CurrentTrackingMethod)
	}
	if payload.BiggestExpense != "Rent/Housing" {
		t.Errorf("q2 not mapped, got %q", payload.BiggestExpense)
	}
	if payload.BiggestFinancialProblem != "Textbooks are expensive" {
		t.Errorf("q11 not mapped, got %q", payload.BiggestFinancialProblem)
	}

	if payload.AppName != "Luni" || payload.UserType != "student" || !payload.BetaProgram {
		t.Errorf("fixed metadata wrong: %+v", payload)
	}

	if payload.Timestamp != "2025-06-01T14:30:00Z" {
		t.Errorf("unexpected timestamp: %q", payload.Timestamp)
	}
	if payload.DateFormatted != "June 1, 2025 14:30" {
		t.Errorf("unexpected formatted date: %q", payload.DateFormatted)
	}
}

func TestBuildPayloadInsights(t *testing.T) {
	tests := []struct {
		name    string
		answers map[string]string
		check   func(i Insights) bool
		desc    string
	}{
		{
			name:    "new to budgeting on exact label",
			answers: map[string]string{"q1": "I don't track it"},
			check:   func(i Insights) bool { return i.IsNewToBudgeting },
			desc:    "IsNewToBudgeting should be true",
		},
		{
			name:    "not new to budgeting on other label",
			answers: map[string]string{"q1": "Budgeting app"},
			check:   func(i Insights) bool { return !i.IsNewToBudgeting },
			desc:    "IsNewToBudgeting should be false",
		},
		{
			name:    "no struggle flag for empty answer",
			answers: map[string]string{},
			check:   func(i Insights) bool { return !i.StrugglesWithBudgeting },
			desc:    "StrugglesWithBudgeting should be false when unanswered",
		},
		{
			name:    "struggles when not never",
			answers: map[string]string{"q3": "Sometimes"},
			check:   func(i Insights) bool { return i.StrugglesWithBudgeting },
			desc:    "StrugglesWithBudgeting should be true",
		},
		{
			name:    "no struggle on never",
			answers: map[string]string{"q3": "Never"},
			check:   func(i Insights) bool { return !i.StrugglesWithBudgeting },
			desc:    "StrugglesWithBudgeting should be false",
		},
		{
			name:    "wants financial education",
			answers: map[string]string{"q8": "Very important"},
			check:   func(i Insights) bool { return i.WantsFinancialEducation },
			desc:    "WantsFinancialEducation should be true",
		},
		{
			name:    "education flag needs exact label",
			answers: map[string]string{"q8": "very important"},
			check:   func(i Insights) bool { return !i.WantsFinancialEducation },
			desc:    "WantsFinancialEducation must use exact equality",
		},
		{
			name:    "prefers mobile",
			answers: map[string]string{"q9": "Mobile App (iOS/Android)"},
			check:   func(i Insights) bool { return i.PrefersMobile },
			desc:    "PrefersMobile should be true",
		},
		{
			name:    "wants bank sync",
			answers: map[string]string{"q10": "Bank sync"},
			check:   func(i Insights) bool { return i.WantsBankSync },
			desc:    "WantsBankSync should be true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := BuildPayload(leads.SurveyResponse{ID: "x", Answers: tt.answers})
			if !tt.check(payload.Insights) {
				t.Errorf("%s, got %+v", tt.desc, payload.Insights)
			}
		})
	}
}
