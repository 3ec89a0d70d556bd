package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rorygeddes/Luni.ca/pkg/banking"
	"github.com/rorygeddes/Luni.ca/pkg/db/leads"
	"github.com/rorygeddes/Luni.ca/pkg/notification"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Luni Backend API is running"})
}

// ResponseStore is the persistence surface the handlers need. A nil store
// means the database is not configured; write paths skip persistence and the
// read path answers 503.
type ResponseStore interface {
	SaveSurveyResponse(response leads.SurveyResponse) (string, error)
	GetSurveyResponses() ([]leads.SurveyResponse, error)
	SaveBankConnection(connection leads.BankConnection) error
}

// BankingClient is the aggregator surface; nil means unconfigured.
type BankingClient interface {
	CreateLinkToken(userID string) (*banking.LinkTokenResult, error)
	ExchangePublicToken(publicToken string) (*banking.ExchangeResult, error)
}

type HttpEndpoints struct {
	store         ResponseStore
	notifier      *notification.Service
	bankingClient BankingClient
	apiKeys       []string
}

func NewHTTPHandler(
	store ResponseStore,
	notifier *notification.Service,
	bankingClient BankingClient,
	apiKeys []string,
) *HttpEndpoints {
	return &HttpEndpoints{
		store:         store,
		notifier:      notifier,
		bankingClient: bankingClient,
		apiKeys:       apiKeys,
	}
}

func (h *HttpEndpoints) AddRoutes(rg *gin.RouterGroup) {
	h.AddSurveyAPI(rg)
	h.AddBankingAPI(rg)
}
