package formflow

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rorygeddes/Luni.ca/pkg/db/leads"
)

const submitTimeout = 15 * time.Second

// SubmitResult is the decoded success body of the intake endpoint.
type SubmitResult struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// ServerError is a non-2xx answer from the backend, carrying the decoded
// error body when one was present.
type ServerError struct {
	StatusCode int
	Body       map[string]interface{}
}

func (e *ServerError) Error() string {
	if msg, ok := e.Body["error"].(string); ok && msg != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("server error (%d)", e.StatusCode)
}

// NetworkError is a transport level failure before any response arrived.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Client posts completed form values to the intake endpoint. It never
// retries; the caller keeps the form editable on failure.
type Client struct {
	BaseURL string

	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		httpClient: &http.Client{
			Timeout: submitTimeout,
		},
	}
}

func (c *Client) Submit(values map[string]string) (*SubmitResult, error) {
	body, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(c.BaseURL+"/api/survey", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		serverErr := &ServerError{StatusCode: resp.StatusCode, Body: map[string]interface{}{}}
		_ = json.NewDecoder(resp.Body).Decode(&serverErr.Body)
		return nil, serverErr
	}

	var result SubmitResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Responses fetches all stored submissions from the admin read path.
func (c *Client) Responses() ([]leads.SurveyResponse, error) {
	resp, err := c.httpClient.Get(c.BaseURL + "/api/survey")
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		serverErr := &ServerError{StatusCode: resp.StatusCode, Body: map[string]interface{}{}}
		_ = json.NewDecoder(resp.Body).Decode(&serverErr.Body)
		return nil, serverErr
	}

	var responses []leads.SurveyResponse
	if err := json.NewDecoder(resp.Body).Decode(&responses); err != nil {
		return nil, err
	}
	return responses, nil
}
