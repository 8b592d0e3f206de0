package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Agreements.validate(); err != nil {
		return fmt.Errorf("agreements: %w", err)
	}

	return nil
}

func (a *AgreementsConfig) validate() error {
	if a.DefaultCheckInDays <= 0 {
		return fmt.Errorf("default_check_in_days must be > 0 (got %d)", a.DefaultCheckInDays)
	}
	if a.ExperimentCheckInDays <= 0 {
		return fmt.Errorf("experiment_check_in_days must be > 0 (got %d)", a.ExperimentCheckInDays)
	}
	if a.ApproveMaxRetries < 1 {
		return fmt.Errorf("approve_max_retries must be >= 1 (got %d)", a.ApproveMaxRetries)
	}
	return nil
}
