package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/a11yscan/a11yscan/cmd/scan"
	"github.com/a11yscan/a11yscan/cmd/version"
	"github.com/a11yscan/a11yscan/pkg/shared/config"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "a11yscan [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "A11yscan checks UI element trees against accessibility rules.",
		Long: `A11yscan evaluates UI descriptions extracted from canvas apps, model-driven
	forms, portal pages, and DOM snapshots against an extensible set of
	accessibility rules, and reports violations as JSON or SARIF.
	`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
	rootCmd.AddCommand(scan.ScanCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

func Execute() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func initConfig() {
	var err error

	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	scan.Init(AppConfig)
}
