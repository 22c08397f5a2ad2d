package scan

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/a11yscan/a11yscan/internal/parser"
	"github.com/a11yscan/a11yscan/internal/report"
	"github.com/a11yscan/a11yscan/pkg/engine"
	"github.com/a11yscan/a11yscan/pkg/findings"
	"github.com/a11yscan/a11yscan/pkg/rules"
	"github.com/a11yscan/a11yscan/pkg/shared/config"
	"github.com/a11yscan/a11yscan/pkg/shared/httpclient"
	"github.com/a11yscan/a11yscan/pkg/shared/logger"
)

// RunOptionsScan holds the arguments for the scan command.
type RunOptionsScan struct {
	Surface       string
	Input         string
	AppName       string
	ReportFormat  string
	OutputPath    string
	MinSeverity   string
	DisabledRules []string
}

var (
	AppConfig        *config.Config
	scanOptions      RunOptionsScan
	exampleScanUsage = `  # Scanning a canvas app description
  a11yscan scan --surface CanvasApp --input app.yaml --app-name Expenses

  # Scanning a model-driven form and writing SARIF
  a11yscan scan --surface ModelDrivenApp --input account_main.xml --format sarif --output report.sarif

  # Scanning a live page as a DOM snapshot
  a11yscan scan --surface DomSnapshot --input https://example.org/portal

  # Scanning with a rule disabled and only medium findings and up
  a11yscan scan --surface CanvasApp --input app.yaml --disable-rule ACC007 --min-severity medium`
)

// ScanCmd represents the scan command.
var ScanCmd = &cobra.Command{
	Use:                   "scan --surface SURFACE --input PATH_OR_URL [--app-name NAME] [--format json|sarif] [--output PATH]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleScanUsage,
	Short:                 "Runs the accessibility rule set against a UI tree",
	RunE:                  runScanCommand,
}

func init() {
	flags := ScanCmd.Flags()
	flags.StringVarP(&scanOptions.Surface, "surface", "s", "", "surface type: CanvasApp, ModelDrivenApp, PortalPage, DomSnapshot")
	flags.StringVarP(&scanOptions.Input, "input", "i", "", "input file, or URL for DOM snapshot surfaces")
	flags.StringVarP(&scanOptions.AppName, "app-name", "a", "", "application name recorded in findings")
	flags.StringVarP(&scanOptions.ReportFormat, "format", "f", "json", "report format: json or sarif")
	flags.StringVarP(&scanOptions.OutputPath, "output", "o", "", "output file (default stdout)")
	flags.StringVar(&scanOptions.MinSeverity, "min-severity", "", "drop findings below this severity")
	flags.StringArrayVar(&scanOptions.DisabledRules, "disable-rule", nil, "rule id to skip (repeatable)")
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runScanCommand executes the scan command.
func runScanCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !hasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	log := logger.NewLogger(AppConfig, "core-scan")

	if err := validateScanArgs(&scanOptions, AppConfig); err != nil {
		log.Error("invalid scan arguments", "error", err)
		return err
	}

	surface, err := engine.ParseSurface(scanOptions.Surface)
	if err != nil {
		return err
	}

	data, err := loadInput(scanOptions.Input, surface)
	if err != nil {
		log.Error("failed to load scan input", "error", err)
		return err
	}

	parse, err := parser.ForSurface(surface)
	if err != nil {
		return err
	}
	root, err := parse(data)
	if err != nil {
		log.Error("failed to parse scan input", "error", err)
		return err
	}
	log.Debug("parsed input tree", "nodes", root.Count())

	registry := engine.NewRegistry()
	if err := registry.Register(selectRules(&scanOptions)...); err != nil {
		return err
	}

	result, err := engine.NewScanner(registry, log).Scan(root, surface, scanOptions.AppName)
	if err != nil {
		log.Error("scan failed", "error", err)
		return err
	}
	log.Info("scan completed",
		"nodes", result.NodesVisited,
		"findings", len(result.Findings),
		"rule_failures", len(result.Failures),
	)

	result.Findings = report.FilterBySeverity(result.Findings, findings.Severity(strings.ToLower(scanOptions.MinSeverity)))

	return writeReport(result, registry.Rules(), &scanOptions)
}

// selectRules returns the built-in catalog minus the disabled rules.
func selectRules(options *RunOptionsScan) []engine.Rule {
	disabled := make(map[string]bool, len(options.DisabledRules))
	for _, id := range options.DisabledRules {
		disabled[strings.ToUpper(id)] = true
	}
	var selected []engine.Rule
	for _, r := range rules.BuiltIn() {
		if !disabled[strings.ToUpper(r.ID())] {
			selected = append(selected, r)
		}
	}
	return selected
}

// loadInput reads the scan input from a file, or fetches it over HTTP
// for DOM-based surfaces given a URL.
func loadInput(input string, surface engine.Surface) ([]byte, error) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		if surface != engine.SurfaceDomSnapshot && surface != engine.SurfacePortalPage {
			return nil, fmt.Errorf("URL input is only supported for DomSnapshot and PortalPage surfaces")
		}
		return fetchSnapshot(input)
	}
	return os.ReadFile(input)
}

// fetchSnapshot downloads a live page body for a DOM snapshot scan.
func fetchSnapshot(url string) ([]byte, error) {
	log := logger.NewLogger(AppConfig, "snapshot-fetcher")
	client := httpclient.New(log, AppConfig)

	resp, err := client.R().Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetching %q: status %s", url, resp.Status())
	}
	return resp.Body(), nil
}

// writeReport renders the result in the requested format.
func writeReport(result *engine.ScanResult, ruleSet []engine.Rule, options *RunOptionsScan) error {
	out := os.Stdout
	if options.OutputPath != "" {
		file, err := os.OpenFile(options.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("error opening output file: %w", err)
		}
		defer func() { _ = file.Close() }()
		out = file
	}

	switch strings.ToLower(options.ReportFormat) {
	case "sarif":
		return report.WriteSarif(out, result, ruleSet)
	case "json":
		return report.New(result).WriteJSON(out)
	default:
		return fmt.Errorf("unknown report format %q", options.ReportFormat)
	}
}
