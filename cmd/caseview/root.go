package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	flagEnvironment string
	flagDBPath      string
	flagDebugLog    string
)

var rootCmd = &cobra.Command{
	Use:   "caseview",
	Short: "Terminal case-status inspector",
	Long: `Caseview collects OAuth client credentials, runs a case-status
processing session against the configured engine, and renders multi-step
progress plus a tabbed result inspector.

The result inspector shows the case record, a live token countdown,
the effective configuration, and the raw result payload. The active tab
is remembered across sessions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&flagEnvironment, "environment", "", "Backend environment (overrides config)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "", "Preference database path (overrides config)")
	rootCmd.Flags().StringVar(&flagDebugLog, "debug-log", "", "Debug log file path (overrides config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}
