package db

import (
	"fmt"
	"log/slog"

	"github.com/rorygeddes/Luni.ca/pkg/utils"
)

const (
	defaultTimeout         = 30
	defaultIdleConnTimeout = 45
	defaultMaxPoolSize     = 8
	defaultDBName          = "luni_leads"
)

// DefaultCandidateCollections is the ordered list of collection names tried
// when the environment does not declare its real collection name.
var DefaultCandidateCollections = []string{"survey_responses", "surveys", "responses"}

// ResolveDBConfig turns the yaml config block into a usable DBConfig, or
// reports the store as unconfigured. Resolved once at startup; callers keep
// the DB service nil when ok is false and degrade per endpoint.
func ResolveDBConfig(yamlConf DBConfigYaml) (config DBConfig, ok bool) {
	if utils.IsPlaceholderValue(yamlConf.ConnectionStr) {
		slog.Warn("database not configured - survey persistence disabled")
		return config, false
	}

	uri := yamlConf.ConnectionStr
	if yamlConf.Username != "" && yamlConf.Password != "" {
		uri = fmt.Sprintf(`mongodb%s://%s:%s@%s`, yamlConf.ConnectionPrefix, yamlConf.Username, yamlConf.Password, yamlConf.ConnectionStr)
	}

	config = DBConfig{
		URI:                  uri,
		DBName:               yamlConf.DBName,
		Timeout:              yamlConf.Timeout,
		IdleConnTimeout:      yamlConf.IdleConnTimeout,
		MaxPoolSize:          uint64(yamlConf.MaxPoolSize),
		CandidateCollections: yamlConf.CandidateCollections,
	}

	if config.DBName == "" {
		config.DBName = defaultDBName
	}
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	if config.IdleConnTimeout <= 0 {
		config.IdleConnTimeout = defaultIdleConnTimeout
	}
	if config.MaxPoolSize == 0 {
		config.MaxPoolSize = defaultMaxPoolSize
	}
	if len(config.CandidateCollections) == 0 {
		config.CandidateCollections = DefaultCandidateCollections
	}

	return config, true
}
