package httpclient

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"
)

type ClientConfig struct {
	RootURL   string
	APIKey    string
	UserAgent string
	Timeout   time.Duration
}

// RunHTTPcall POSTs the payload as JSON and returns the response status code
// together with the raw body. The body is returned undecoded since not every
// downstream (webhook receivers in particular) answers with JSON.
func (cConfig ClientConfig) RunHTTPcall(pathname string, payload interface{}) (int, []byte, error) {
	json_data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}

	client := &http.Client{
		Timeout: cConfig.Timeout,
	}

	url := cConfig.RootURL + pathname
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(json_data))
	if err != nil {
		slog.Error("unexpected error in preparing http request", slog.String("error", err.Error()))
		return 0, nil, err
	}
	if cConfig.APIKey != "" {
		req.Header.Set("Api-Key", cConfig.APIKey)
	}
	if cConfig.UserAgent != "" {
		req.Header.Set("User-Agent", cConfig.UserAgent)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("Error reading response body", slog.String("error", err.Error()))
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

// RunHTTPcallWithDecode is RunHTTPcall plus JSON decoding of the response
// body into a generic map.
func (cConfig ClientConfig) RunHTTPcallWithDecode(pathname string, payload interface{}) (int, map[string]interface{}, error) {
	status, body, err := cConfig.RunHTTPcall(pathname, payload)
	if err != nil {
		return status, nil, err
	}

	var res map[string]interface{}
	if err := json.Unmarshal(body, &res); err != nil {
		slog.Error("Error decoding response", slog.String("error", err.Error()))
		return status, nil, err
	}
	return status, res, nil
}
