package leads

import "time"

// SurveyResponse is one submitted lead-capture survey. The id is generated
// server side at intake time and never client supplied.
type SurveyResponse struct {
	ID        string            `bson:"id" json:"id"`
	Answers   map[string]string `bson:"answers" json:"answers"`
	CreatedAt time.Time         `bson:"created_at" json:"created_at"`
}

// BankConnection pairs a user with the aggregator item obtained through the
// public token exchange.
type BankConnection struct {
	UserID      string    `bson:"user_id" json:"user_id"`
	ItemID      string    `bson:"item_id" json:"item_id"`
	AccessToken string    `bson:"access_token" json:"-"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
