package banking

import (
	"encoding/json"
	"time"

	"github.com/rorygeddes/Luni.ca/pkg/httpclient"
	"github.com/rorygeddes/Luni.ca/pkg/utils"
)

const requestTimeout = 30 * time.Second

var environmentHosts = map[string]string{
	"sandbox":     "https://sandbox.plaid.com",
	"development": "https://development.plaid.com",
	"production":  "https://production.plaid.com",
}

type Client struct {
	conf   Config
	client httpclient.ClientConfig
}

// NewClient resolves the aggregator configuration once at startup. Returns
// nil when credentials are absent or placeholders, leaving the banking
// endpoints to answer 503.
func NewClient(conf Config) *Client {
	if utils.IsPlaceholderValue(conf.ClientID) || utils.IsPlaceholderValue(conf.Secret) {
		return nil
	}

	host, ok := environmentHosts[conf.Environment]
	if !ok {
		host = environmentHosts["sandbox"]
	}
	if conf.ClientName == "" {
		conf.ClientName = "Luni"
	}

	return &Client{
		conf: conf,
		client: httpclient.ClientConfig{
			RootURL: host,
			Timeout: requestTimeout,
		},
	}
}

// CreateLinkToken requests a short lived link token for the given user, used
// by the app to open the aggregator's link flow.
func (c *Client) CreateLinkToken(userID string) (*LinkTokenResult, error) {
	req := map[string]interface{}{
		"client_id":   c.conf.ClientID,
		"secret":      c.conf.Secret,
		"client_name": c.conf.ClientName,
		"user": map[string]string{
			"client_user_id": userID,
		},
		"products":      []string{"transactions"},
		"country_codes": []string{"CA", "US"},
		"language":      "en",
	}
	if c.conf.RedirectURI != "" {
		req["redirect_uri"] = c.conf.RedirectURI
	}

	var result LinkTokenResult
	if err := c.call("/link/token/create", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExchangePublicToken trades the public token from a completed link flow for
// a persistent access token and item id.
func (c *Client) ExchangePublicToken(publicToken string) (*ExchangeResult, error) {
	req := map[string]interface{}{
		"client_id":    c.conf.ClientID,
		"secret":       c.conf.Secret,
		"public_token": publicToken,
	}

	var result ExchangeResult
	if err := c.call("/item/public_token/exchange", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) call(pathname string, payload interface{}, result interface{}) error {
	status, body, err := c.client.RunHTTPcall(pathname, payload)
	if err != nil {
		return err
	}

	if status < 200 || status >= 300 {
		upstreamErr := &UpstreamError{StatusCode: status}
		_ = json.Unmarshal(body, upstreamErr)
		return upstreamErr
	}

	return json.Unmarshal(body, result)
}
