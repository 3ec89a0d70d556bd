package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	mw "github.com/rorygeddes/Luni.ca/pkg/apihelpers/middlewares"
	"github.com/rorygeddes/Luni.ca/pkg/db/leads"
	"github.com/rorygeddes/Luni.ca/pkg/notification"
)

func (h *HttpEndpoints) AddSurveyAPI(rg *gin.RouterGroup) {
	surveyGroup := rg.Group("/survey")

	surveyGroup.POST("", mw.RequirePayload(), h.submitSurvey)

	// Admin read path: key-gated when api keys are configured, open otherwise.
	if len(h.apiKeys) > 0 {
		surveyGroup.GET("", mw.HasValidAPIKey(h.apiKeys), h.getSurveyResponses)
	} else {
		surveyGroup.GET("", h.getSurveyResponses)
	}
}

func (h *HttpEndpoints) submitSurvey(c *gin.Context) {
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(req["name"])
	email := strings.TrimSpace(req["email"])
	if name == "" && email == "" {
		slog.Warn("survey submission rejected, no contact info")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
		return
	}

	// Unknown answer keys are passed through untouched; the id is always
	// generated here, never taken from the client.
	answers := make(map[string]string, len(req))
	for k, v := range req {
		answers[k] = v
	}

	response := leads.SurveyResponse{
		ID:        uuid.New().String(),
		Answers:   answers,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	// Persistence is best effort: lead capture must never be blocked by a
	// missing or failing store.
	if h.store == nil {
		slog.Warn("database not configured - skipping survey save", slog.String("id", response.ID))
	} else {
		collectionName, err := h.store.SaveSurveyResponse(response)
		if err != nil {
			slog.Error("could not save survey response", slog.String("id", response.ID), slog.String("error", err.Error()))
		} else {
			slog.Info("survey response saved", slog.String("id", response.ID), slog.String("collection", collectionName))
		}
	}

	// Notification fan-out is likewise best effort.
	if h.notifier == nil {
		slog.Warn("webhook not configured - skipping notification", slog.String("id", response.ID))
	} else {
		result := h.notifier.Deliver(notification.BuildPayload(response))
		if !result.OK {
			if result.Err != nil {
				slog.Error("webhook delivery failed", slog.String("id", response.ID), slog.String("error", result.Err.Error()))
			} else {
				slog.Error("webhook delivery failed", slog.String("id", response.ID), slog.Int("status", result.StatusCode), slog.String("body", result.Body))
			}
		} else {
			slog.Info("survey notification delivered", slog.String("id", response.ID), slog.Int("status", result.StatusCode))
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Survey submitted successfully",
		"id":      response.ID,
	})
}

func (h *HttpEndpoints) getSurveyResponses(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not configured"})
		return
	}

	responses, err := h.store.GetSurveyResponses()
	if err != nil {
		if errors.Is(err, leads.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not configured"})
			return
		}
		if errors.Is(err, leads.ErrNoCollectionFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No survey collection found"})
			return
		}
		slog.Error("error fetching survey responses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching survey responses"})
		return
	}

	c.JSON(http.StatusOK, responses)
}
