package scan

import (
	"fmt"
	"strings"

	"github.com/a11yscan/a11yscan/pkg/findings"
	"github.com/a11yscan/a11yscan/pkg/shared/config"
)

// validateScanArgs checks the command arguments and applies config
// defaults for the ones not given.
func validateScanArgs(options *RunOptionsScan, cfg *config.Config) error {
	if options.Surface == "" {
		return fmt.Errorf("the --surface flag is required")
	}
	if options.Input == "" {
		return fmt.Errorf("the --input flag is required")
	}

	if cfg != nil {
		if options.AppName == "" {
			options.AppName = cfg.Scan.AppName
		}
		if options.MinSeverity == "" {
			options.MinSeverity = cfg.Scan.MinSeverity
		}
		if len(options.DisabledRules) == 0 {
			options.DisabledRules = cfg.Scan.DisabledRules
		}
	}
	if options.AppName == "" {
		options.AppName = "unnamed-app"
	}

	if options.MinSeverity != "" {
		if findings.Severity(strings.ToLower(options.MinSeverity)).Rank() == 0 {
			return fmt.Errorf("unknown severity %q for --min-severity", options.MinSeverity)
		}
	}

	switch strings.ToLower(options.ReportFormat) {
	case "", "json", "sarif":
	default:
		return fmt.Errorf("unknown report format %q, expected json or sarif", options.ReportFormat)
	}
	return nil
}
