package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "driftwatch <config-history-dir> <new-config-path>",
	Short: "Pre-deployment guardrail for configuration changes",
	Long: `Driftwatch compares a proposed configuration file against a directory of
historical configuration snapshots and flags versions whose textual divergence
exceeds a configurable tolerance: "is this really what I meant to change?".`,
	Args:          cobra.ExactArgs(2),
	RunE:          runCompare,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
