package formflow

type QuestionKind int

const (
	KindText QuestionKind = iota
	KindSingleChoice
	KindMultiChoice
)

type Question struct {
	ID       string
	Prompt   string
	Kind     QuestionKind
	Options  []string
	Required bool
}

// LuniSurveyQuestions is the canonical beta survey: the twelve product
// questions followed by the contact step. Email is the only hard-required
// field on the client; the backend accepts name or email.
func LuniSurveyQuestions() []Question {
	return []Question{
		{
			ID:      "q1",
			Prompt:  "How do you currently track your spending?",
			Kind:    KindSingleChoice,
			Options: []string{"I don't track it", "Budgeting app", "Expense tracker", "Investment tracker", "All-in-one finance app"},
		},
		{
			ID:      "q2",
			Prompt:  "What's your biggest expense category?",
			Kind:    KindSingleChoice,
			Options: []string{"Rent/Housing", "Food/Groceries", "Transportation", "Entertainment", "School/Books"},
		},
		{
			ID:      "q3",
			Prompt:  "How often do you currently track your expenses?",
			Kind:    KindSingleChoice,
			Options: []string{"Daily", "Weekly", "Monthly", "Sometimes", "Never"},
		},
		{
			ID:      "q4",
			Prompt:  "Do you currently stick to a budget?",
			Kind:    KindSingleChoice,
			Options: []string{"Yes, consistently", "Mostly", "Sometimes", "Rarely", "No"},
		},
		{
			ID:      "q5",
			Prompt:  "How do you currently split expenses with roommates/friends?",
			Kind:    KindSingleChoice,
			Options: []string{"Shared apps (Splitwise, Venmo, etc.)", "Manual calculations", "One person pays", "We don't split", "Other"},
		},
		{
			ID:      "q6",
			Prompt:  "How confident are you in managing your finances?",
			Kind:    KindSingleChoice,
			Options: []string{"Very confident", "Somewhat confident", "Neutral", "Not very confident", "Not confident at all"},
		},
		{
			ID:      "q7",
			Prompt:  "What would motivate you to use a budgeting app regularly?",
			Kind:    KindMultiChoice,
			Options: []string{"Progress tracking/visuals", "Gamification/rewards", "Automated categorization", "Goal setting", "Social features"},
		},
		{
			ID:      "q8",
			Prompt:  "How important is it for the app to sync with your bank account?",
			Kind:    KindSingleChoice,
			Options: []string{"Very important", "Somewhat important", "Neutral", "Not very important", "Not important at all"},
		},
		{
			ID:      "q9",
			Prompt:  "What platform would you primarily use?",
			Kind:    KindSingleChoice,
			Options: []string{"Mobile App (iOS/Android)", "Web App", "Desktop App", "All platforms", "Not sure"},
		},
		{
			ID:      "q10",
			Prompt:  "What's your preferred way to input expenses?",
			Kind:    KindSingleChoice,
			Options: []string{"Bank sync", "Manual entry", "Photo receipts", "Voice input", "QR codes"},
		},
		{
			ID:     "q11",
			Prompt: "What's your biggest financial challenge as a student?",
			Kind:   KindText,
		},
		{
			ID:     "q12",
			Prompt: "Any additional features or suggestions?",
			Kind:   KindText,
		},
		{
			ID:     "name",
			Prompt: "Your name",
			Kind:   KindText,
		},
		{
			ID:       "email",
			Prompt:   "Email address",
			Kind:     KindText,
			Required: true,
		},
	}
}
