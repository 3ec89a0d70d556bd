package apihandlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rorygeddes/Luni.ca/pkg/banking"
)

type fakeBankingClient struct {
	linkResult     *banking.LinkTokenResult
	linkErr        error
	exchangeResult *banking.ExchangeResult
	exchangeErr    error
}

func (c *fakeBankingClient) CreateLinkToken(userID string) (*banking.LinkTokenResult, error) {
	if c.linkErr != nil {
		return nil, c.linkErr
	}
	return c.linkResult, nil
}

func (c *fakeBankingClient) ExchangePublicToken(publicToken string) (*banking.ExchangeResult, error) {
	if c.exchangeErr != nil {
		return nil, c.exchangeErr
	}
	return c.exchangeResult, nil
}

func TestCreateLinkTokenMissingUserID(t *testing.T) {
	router := newTestRouter(NewHTTPHandler(nil, nil, &fakeBankingClient{}, nil))

	w := doJSONRequest(router, http.MethodPost, "/api/plaid/link/token/create", `{"user_id":""}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != "user_id is required" {
		t.Errorf("unexpected error message: %q", body["error"])
	}
}

func TestCreateLinkTokenUnconfigured(t *testing.T) {
	router := newTestRouter(NewHTTPHandler(nil, nil, nil, nil))

	w := doJSONRequest(router, http.MethodPost, "/api/plaid/link/token/create", `{"user_id":"user-1"}`, nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestCreateLinkTokenUpstreamErrorSurfaced(t *testing.T) {
	client := &fakeBankingClient{
		linkErr: &banking.UpstreamError{StatusCode: 400, Message: "INVALID_FIELD: client_id must be a valid identifier"},
	}
	router := newTestRouter(NewHTTPHandler(nil, nil, client, nil))

	w := doJSONRequest(router, http.MethodPost, "/api/plaid/link/token/create", `{"user_id":"user-1"}`, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != "INVALID_FIELD: client_id must be a valid identifier" {
		t.Errorf("upstream message not surfaced, got %q", body["error"])
	}
}

func TestCreateLinkTokenSuccess(t *testing.T) {
	client := &fakeBankingClient{
		linkResult: &banking.LinkTokenResult{
			LinkToken:  "link-sandbox-abc",
			Expiration: "2025-06-01T15:00:00Z",
		},
	}
	router := newTestRouter(NewHTTPHandler(nil, nil, client, nil))

	w := doJSONRequest(router, http.MethodPost, "/api/plaid/link/token/create", `{"user_id":"user-1"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body banking.LinkTokenResult
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.LinkToken != "link-sandbox-abc" {
		t.Errorf("unexpected link token: %q", body.LinkToken)
	}
}

func TestExchangePublicTokenMissingToken(t *testing.T) {
	router := newTestRouter(NewHTTPHandler(nil, nil, &fakeBankingClient{}, nil))

	w := doJSONRequest(router, http.MethodPost, "/api/plaid/token/exchange", `{"user_id":"user-1"}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestExchangePublicTokenPersistsPairing(t *testing.T) {
	store := &fakeStore{}
	client := &fakeBankingClient{
		exchangeResult: &banking.ExchangeResult{AccessToken: "access-abc", ItemID: "item-1"},
	}
	router := newTestRouter(NewHTTPHandler(store, nil, client, nil))

	w := doJSONRequest(router, http.MethodPost, "/api/plaid/token/exchange", `{"public_token":"public-abc","user_id":"user-1"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["item_id"] != "item-1" {
		t.Errorf("expected item id in response, got %q", body["item_id"])
	}
	if body["access_token"] != "" {
		t.Error("access token must not be echoed back")
	}

	if len(store.connections) != 1 {
		t.Fatalf("expected pairing to be persisted, got %d", len(store.connections))
	}
	if store.connections[0].UserID != "user-1" || store.connections[0].ItemID != "item-1" {
		t.Errorf("unexpected pairing: %+v", store.connections[0])
	}
}

func TestExchangePublicTokenWithoutUserSkipsPersistence(t *testing.T) {
	store := &fakeStore{}
	client := &fakeBankingClient{
		exchangeResult: &banking.ExchangeResult{AccessToken: "access-abc", ItemID: "item-1"},
	}
	router := newTestRouter(NewHTTPHandler(store, nil, client, nil))

	w := doJSONRequest(router, http.MethodPost, "/api/plaid/token/exchange", `{"public_token":"public-abc"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(store.connections) != 0 {
		t.Error("pairing should only be persisted when user_id is present")
	}
}

func TestExchangePublicTokenSaveFailureStillSucceeds(t *testing.T) {
	store := &fakeStore{connErr: http.ErrHandlerTimeout}
	client := &fakeBankingClient{
		exchangeResult: &banking.ExchangeResult{AccessToken: "access-abc", ItemID: "item-1"},
	}
	router := newTestRouter(NewHTTPHandler(store, nil, client, nil))

	w := doJSONRequest(router, http.MethodPost, "/api/plaid/token/exchange", `{"public_token":"public-abc","user_id":"user-1"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("pairing save failure must not fail the exchange, got %d", w.Code)
	}
}
