// internal/leads/config.go
package leads

import (
	"time"

	"quote-engine/internal/common/config"
)

type Config struct {
	HighPriorityMin   int
	MediumPriorityMin int
	DedupTTL          time.Duration
	SearchIndex       string
	IndexingEnabled   bool
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		HighPriorityMin:   cfg.Scoring.HighPriorityMin,
		MediumPriorityMin: cfg.Scoring.MediumPriorityMin,
		DedupTTL:          time.Duration(cfg.Scoring.DedupTTL) * time.Second,
		SearchIndex:       "leads",
		IndexingEnabled:   cfg.Database.Elasticsearch.Enabled,
	}
}
