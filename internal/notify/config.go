// internal/notify/config.go
package notify

import (
	"time"

	"quote-engine/internal/common/config"
)

type Config struct {
	EmailEnabled         bool
	SMSEnabled           bool
	FromEmail            string
	SalesTeamEmail       string
	SalesPhone           string
	AWSRegion            string
	SMSPriorityThreshold string
	Timeout              time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		EmailEnabled:         cfg.Notifications.Email.Enabled,
		SMSEnabled:           cfg.Notifications.SMS.Enabled,
		FromEmail:            cfg.Notifications.Email.FromEmail,
		SalesTeamEmail:       cfg.Notifications.Email.SalesTeam,
		SalesPhone:           cfg.Notifications.SMS.SalesPhone,
		AWSRegion:            cfg.Integrations.AWS.Region,
		SMSPriorityThreshold: cfg.Notifications.SMS.PriorityThreshold,
		Timeout:              30 * time.Second,
	}
}
