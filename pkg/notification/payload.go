package notification

import (
	"time"

	"github.com/rorygeddes/Luni.ca/pkg/db/leads"
)

// Known option labels that drive the derived insight flags.
const (
	labelNoTracking     = "I don't track it"
	labelNeverOverspend = "Never"
	labelEducationHigh  = "Very important"
	labelMobileApp      = "Mobile App (iOS/Android)"
	labelBankSync       = "Bank sync"
)

// Payload is the flat document posted to the email automation webhook. It is
// derived from a stored response and never persisted.
type Payload struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	SurveyID string `json:"survey_id"`

	CurrentTrackingMethod        string `json:"current_tracking_method"`
	BiggestExpense               string `json:"biggest_expense"`
	BudgetOverspendFrequency     string `json:"budget_overspend_frequency"`
	MonthlySavings               string `json:"monthly_savings"`
	ExpenseSplitting             string `json:"expense_splitting"`
	MoneyConfidence              string `json:"money_confidence"`
	SavingsMotivation            string `json:"savings_motivation"`
	FinancialEducationImportance string `json:"financial_education_importance"`
	PreferredDevice              string `json:"preferred_device"`
	DataImportPreference         string `json:"data_import_preference"`
	BiggestFinancialProblem      string `json:"biggest_financial_problem"`
	IdealSolution                string `json:"ideal_solution"`

	// Fixed metadata consumed by the email template.
	UserType    string `json:"user_type"`
	AppName     string `json:"app_name"`
	BetaProgram bool   `json:"beta_program"`

	Timestamp     string   `json:"timestamp"`
	DateFormatted string   `json:"date_formatted"`
	Insights      Insights `json:"insights"`
}

type Insights struct {
	IsNewToBudgeting        bool `json:"is_new_to_budgeting"`
	StrugglesWithBudgeting  bool `json:"struggles_with_budgeting"`
	WantsFinancialEducation bool `json:"wants_financial_education"`
	PrefersMobile           bool `json:"prefers_mobile"`
	WantsBankSync           bool `json:"wants_bank_sync"`
}

// BuildPayload maps a stored response onto the webhook document. Pure
// function, so the fan-out can be retried or inspected without touching the
// record.
func BuildPayload(response leads.SurveyResponse) Payload {
	answers := response.Answers

	return Payload{
		Email:    answers["email"],
		Name:     answers["name"],
		SurveyID: response.ID,

		CurrentTrackingMethod:        answers["q1"],
		BiggestExpense:               answers["q2"],
		BudgetOverspendFrequency:     answers["q3"],
		MonthlySavings:               answers["q4"],
		ExpenseSplitting:             answers["q5"],
		MoneyConfidence:              answers["q6"],
		SavingsMotivation:            answers["q7"],
		FinancialEducationImportance: answers["q8"],
		PreferredDevice:              answers["q9"],
		DataImportPreference:         answers["q10"],
		BiggestFinancialProblem:      answers["q11"],
		IdealSolution:                answers["q12"],

		UserType:    "student",
		AppName:     "Luni",
		BetaProgram: true,

		Timestamp:     response.CreatedAt.UTC().Format(time.RFC3339),
		DateFormatted: response.CreatedAt.Format("January 2, 2006 15:04"),

		Insights: Insights{
			IsNewToBudgeting:        answers["q1"] == labelNoTracking,
			StrugglesWithBudgeting:  answers["q3"] != "" && answers["q3"] != labelNeverOverspend,
			WantsFinancialEducation: answers["q8"] == labelEducationHigh,
			PrefersMobile:           answers["q9"] == labelMobileApp,
			WantsBankSync:           answers["q10"] == labelBankSync,
		},
	}
}
