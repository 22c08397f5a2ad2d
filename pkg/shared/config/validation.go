package config

import (
	"fmt"
	"strings"

	"github.com/a11yscan/a11yscan/pkg/findings"
)

// ValidateConfig checks the loaded configuration for values that would
// only fail later, mid-run.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration object is nil")
	}
	if err := validateHTTPClient(&cfg.HTTPClient); err != nil {
		return fmt.Errorf("http_client directive is invalid: %w", err)
	}
	if err := validateScan(&cfg.Scan); err != nil {
		return fmt.Errorf("scan directive is invalid: %w", err)
	}
	return nil
}

func validateHTTPClient(h *HTTPClient) error {
	if h.RetryCount < 0 {
		return fmt.Errorf("retry_count must not be negative")
	}
	if h.RetryWaitTime < 0 || h.RetryMaxWaitTime < 0 || h.Timeout < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	return nil
}

func validateScan(s *Scan) error {
	if s.MinSeverity == "" {
		return nil
	}
	if findings.Severity(strings.ToLower(s.MinSeverity)).Rank() == 0 {
		return fmt.Errorf("unknown min_severity %q", s.MinSeverity)
	}
	return nil
}
