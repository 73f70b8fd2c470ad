package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Alerts.validate(); err != nil {
		return fmt.Errorf("alerts: %w", err)
	}

	return nil
}

func (a *AlertsConfig) validate() error {
	if a.StatutoryWindowDays <= 0 {
		return fmt.Errorf("statutory_window_days must be > 0 (got %d)", a.StatutoryWindowDays)
	}
	if a.AlertAtDaysLeft <= 0 {
		return fmt.Errorf("alert_at_days_left must be > 0 (got %d)", a.AlertAtDaysLeft)
	}
	if a.AlertAtDaysLeft > a.StatutoryWindowDays {
		return fmt.Errorf("alert_at_days_left must not exceed statutory_window_days (got %d > %d)",
			a.AlertAtDaysLeft, a.StatutoryWindowDays)
	}
	if strings.TrimSpace(a.CaseListRoute) == "" {
		return fmt.Errorf("case_list_route must not be empty")
	}
	if a.CheckInterval <= 0 {
		return fmt.Errorf("check_interval must be > 0 (got %v)", a.CheckInterval)
	}
	return nil
}
