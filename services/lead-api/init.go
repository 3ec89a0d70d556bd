package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"

	"github.com/rorygeddes/Luni.ca/pkg/banking"
	"github.com/rorygeddes/Luni.ca/pkg/db"
	"github.com/rorygeddes/Luni.ca/pkg/utils"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override config file values
	ENV_MONGODB_CONNECTION_STR = "MONGODB_CONNECTION_STR"
	ENV_MONGODB_USERNAME       = "MONGODB_USERNAME"
	ENV_MONGODB_PASSWORD       = "MONGODB_PASSWORD"

	ENV_WEBHOOK_URL = "WEBHOOK_URL"

	ENV_PLAID_CLIENT_ID = "PLAID_CLIENT_ID"
	ENV_PLAID_SECRET    = "PLAID_SECRET"
	ENV_PLAID_ENV       = "PLAID_ENV"

	ENV_FRONTEND_URL   = "FRONTEND_URL"
	ENV_PORT           = "PORT"
	ENV_GIN_DEBUG_MODE = "GIN_DEBUG_MODE"
)

const defaultPort = "5000"

type LeadApiConfig struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode           bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins        []string `json:"allow_origins" yaml:"allow_origins"`
		AllowOriginSuffixes []string `json:"allow_origin_suffixes" yaml:"allow_origin_suffixes"`
		Port                string   `json:"port" yaml:"port"`
	} `json:"gin_config" yaml:"gin_config"`

	// Optional keys gating the admin read path
	ApiKeys []string `json:"api_keys" yaml:"api_keys"`

	// DB configs
	DBConfig db.DBConfigYaml `json:"db_config" yaml:"db_config"`

	// Email automation webhook
	WebhookConfig struct {
		URL string `json:"url" yaml:"url"`
	} `json:"webhook_config" yaml:"webhook_config"`

	// Banking aggregator configs
	PlaidConfig banking.Config `json:"plaid_config" yaml:"plaid_config"`
}

var conf LeadApiConfig

func init() {
	configFileMissing := readConfig()

	// Init logger:
	utils.InitLogger(
		conf.Logging.LogLevel,
		conf.Logging.IncludeSrc,
		conf.Logging.LogToFile,
		conf.Logging.Filename,
		conf.Logging.MaxSize,
		conf.Logging.MaxAge,
		conf.Logging.MaxBackups,
		conf.Logging.CompressOldLogs,
	)

	if configFileMissing {
		slog.Warn("config file not found - relying on environment variables and defaults")
	}

	// Override values from environment variables
	secretsOverride()

	applyDefaults()

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
}

// readConfig loads the yaml config file if one is addressed. A missing file
// is not fatal: every integration degrades on its own when unconfigured.
func readConfig() (missing bool) {
	configPath := os.Getenv(ENV_CONFIG_FILE_PATH)
	if configPath == "" {
		return true
	}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return true
	}

	if err := yaml.UnmarshalStrict(yamlFile, &conf); err != nil {
		panic(err)
	}
	return false
}

func secretsOverride() {
	if connStr := os.Getenv(ENV_MONGODB_CONNECTION_STR); connStr != "" {
		conf.DBConfig.ConnectionStr = connStr
	}

	if dbUsername := os.Getenv(ENV_MONGODB_USERNAME); dbUsername != "" {
		conf.DBConfig.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_MONGODB_PASSWORD); dbPassword != "" {
		conf.DBConfig.Password = dbPassword
	}

	if webhookURL := os.Getenv(ENV_WEBHOOK_URL); webhookURL != "" {
		conf.WebhookConfig.URL = webhookURL
	}

	if clientID := os.Getenv(ENV_PLAID_CLIENT_ID); clientID != "" {
		conf.PlaidConfig.ClientID = clientID
	}

	if secret := os.Getenv(ENV_PLAID_SECRET); secret != "" {
		conf.PlaidConfig.Secret = secret
	}

	if plaidEnv := os.Getenv(ENV_PLAID_ENV); plaidEnv != "" {
		conf.PlaidConfig.Environment = plaidEnv
	}

	if frontendURL := os.Getenv(ENV_FRONTEND_URL); frontendURL != "" {
		conf.GinConfig.AllowOrigins = strings.Split(frontendURL, ",")
	}

	if port := os.Getenv(ENV_PORT); port != "" {
		conf.GinConfig.Port = port
	}

	if os.Getenv(ENV_GIN_DEBUG_MODE) == "true" {
		conf.GinConfig.DebugMode = true
	}
}

func applyDefaults() {
	if conf.GinConfig.Port == "" {
		conf.GinConfig.Port = defaultPort
	}

	if len(conf.GinConfig.AllowOrigins) == 0 {
		conf.GinConfig.AllowOrigins = []string{
			"http://localhost:3000",
			"https://luni.ca",
			"https://www.luni.ca",
		}
	}

	// Deployment previews get their own short-lived origins.
	if len(conf.GinConfig.AllowOriginSuffixes) == 0 {
		conf.GinConfig.AllowOriginSuffixes = []string{
			".vercel.app",
			".onrender.com",
		}
	}
}
