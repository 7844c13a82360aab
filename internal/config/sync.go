package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// SyncConfig controls the in-server synchronization job.
type SyncConfig struct {
	Enabled bool `env:"SEMANA_SYNC_ENABLED" default:"true"`

	// Schedule is a six-field cron expression (with seconds). The default
	// runs at 06:00 on working days.
	Schedule string `env:"SEMANA_SYNC_SCHEDULE" default:"0 0 6 * * 1-5"`
}

// Validate parses the cron expression when the job is enabled.
func (c *SyncConfig) Validate() error {
	if !c.Enabled {
		return nil
	}

	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(c.Schedule); err != nil {
		return fmt.Errorf("invalid SEMANA_SYNC_SCHEDULE: %w", err)
	}
	return nil
}
