package apihandlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	mw "github.com/rorygeddes/Luni.ca/pkg/apihelpers/middlewares"
	"github.com/rorygeddes/Luni.ca/pkg/db/leads"
)

func (h *HttpEndpoints) AddBankingAPI(rg *gin.RouterGroup) {
	plaidGroup := rg.Group("/plaid")

	plaidGroup.POST("/link/token/create", mw.RequirePayload(), h.createLinkToken)
	plaidGroup.POST("/token/exchange", mw.RequirePayload(), h.exchangePublicToken)
}

// Unlike the survey path, aggregator failures are surfaced: a silent failure
// here would break the banking connection feature.
func (h *HttpEndpoints) createLinkToken(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	if h.bankingClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Banking integration not configured"})
		return
	}

	result, err := h.bankingClient.CreateLinkToken(req.UserID)
	if err != nil {
		slog.Error("error creating link token", slog.String("userID", req.UserID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *HttpEndpoints) exchangePublicToken(c *gin.Context) {
	var req struct {
		PublicToken string `json:"public_token"`
		UserID      string `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.PublicToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "public_token is required"})
		return
	}

	if h.bankingClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Banking integration not configured"})
		return
	}

	result, err := h.bankingClient.ExchangePublicToken(req.PublicToken)
	if err != nil {
		slog.Error("error exchanging public token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Persisting the pairing is best effort; the exchange already succeeded.
	if req.UserID != "" && h.store != nil {
		err := h.store.SaveBankConnection(leads.BankConnection{
			UserID:      req.UserID,
			ItemID:      result.ItemID,
			AccessToken: result.AccessToken,
			CreatedAt:   time.Now().UTC().Truncate(time.Second),
		})
		if err != nil {
			slog.Error("could not save bank connection", slog.String("userID", req.UserID), slog.String("error", err.Error()))
		}
	}

	// The access token itself stays server side.
	c.JSON(http.StatusOK, gin.H{
		"message": "Bank account connected successfully",
		"item_id": result.ItemID,
	})
}
