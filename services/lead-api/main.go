package main

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rorygeddes/Luni.ca/pkg/apihelpers"
	"github.com/rorygeddes/Luni.ca/pkg/banking"
	"github.com/rorygeddes/Luni.ca/pkg/db"
	"github.com/rorygeddes/Luni.ca/pkg/notification"
	"github.com/rorygeddes/Luni.ca/pkg/utils"
	"github.com/rorygeddes/Luni.ca/services/lead-api/apihandlers"

	leadsDB "github.com/rorygeddes/Luni.ca/pkg/db/leads"
)

func main() {
	var store apihandlers.ResponseStore
	dbConfig, dbConfigured := db.ResolveDBConfig(conf.DBConfig)
	if dbConfigured {
		leadsDBService, err := leadsDB.NewLeadsDBService(dbConfig)
		if err != nil {
			// Lead capture keeps running without persistence.
			slog.Error("Error connecting to Leads DB", slog.String("error", err.Error()))
		} else {
			store = leadsDBService
		}
	}

	var notifier *notification.Service
	if utils.IsPlaceholderValue(conf.WebhookConfig.URL) {
		slog.Warn("webhook URL not configured - survey notifications disabled")
	} else {
		notifier = notification.NewService(conf.WebhookConfig.URL)
	}

	var bankingClient apihandlers.BankingClient
	if client := banking.NewClient(conf.PlaidConfig); client != nil {
		bankingClient = client
	} else {
		slog.Warn("banking aggregator not configured - plaid endpoints disabled")
	}

	// Start webserver
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		slog.Error("panic in request handler", slog.Any("recovered", recovered))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
	}))
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  originAllowed,
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Content-Length", "Api-Key"},
		ExposeHeaders:    []string{"Authorization", "Content-Type", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add handlers
	router.GET("/", apihandlers.HealthCheckHandle)
	router.GET("/health", apihandlers.HealthCheckHandle)
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	apiRoot := router.Group("/api")
	apiModule := apihandlers.NewHTTPHandler(
		store,
		notifier,
		bankingClient,
		conf.ApiKeys,
	)
	apiModule.AddRoutes(apiRoot)

	if conf.GinConfig.DebugMode {
		apihelpers.WriteRoutesToFile(router, "lead-api-routes.txt")
	}

	// Start the server
	slog.Info("Starting Lead API on port " + conf.GinConfig.Port)
	err := router.Run(":" + conf.GinConfig.Port)
	if err != nil {
		slog.Error("Exited Lead API", slog.String("error", err.Error()))
		return
	}
}

// originAllowed admits the configured frontend origins plus recognized
// deployment-preview and production domain patterns.
func originAllowed(origin string) bool {
	for _, allowed := range conf.GinConfig.AllowOrigins {
		if origin == allowed {
			return true
		}
	}
	for _, suffix := range conf.GinConfig.AllowOriginSuffixes {
		if strings.HasSuffix(origin, suffix) {
			return true
		}
	}
	return false
}
