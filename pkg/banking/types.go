package banking

import "fmt"

type Config struct {
	ClientID    string `json:"client_id" yaml:"client_id"`
	Secret      string `json:"secret" yaml:"secret"`
	Environment string `json:"environment" yaml:"environment"`
	ClientName  string `json:"client_name" yaml:"client_name"`
	RedirectURI string `json:"redirect_uri" yaml:"redirect_uri"`
}

type LinkTokenResult struct {
	LinkToken  string `json:"link_token"`
	Expiration string `json:"expiration"`
	RequestID  string `json:"request_id"`
}

type ExchangeResult struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
	RequestID   string `json:"request_id"`
}

// UpstreamError carries the aggregator's own error description so handlers
// can surface it to the caller.
type UpstreamError struct {
	StatusCode int
	Code       string `json:"error_code"`
	Type       string `json:"error_type"`
	Message    string `json:"error_message"`
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("aggregator request failed with status %d", e.StatusCode)
}
