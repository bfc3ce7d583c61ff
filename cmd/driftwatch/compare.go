package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emt/driftwatch/pkg/comparator"
	"github.com/emt/driftwatch/pkg/linter"
	"github.com/emt/driftwatch/pkg/logging"
	"github.com/emt/driftwatch/pkg/parser"
	"github.com/emt/driftwatch/pkg/renderer"
)

var (
	configType  string
	sensitivity float64
	concurrency int
	logLevel    string
	logFormat   string
	logFile     string
)

func init() {
	rootCmd.Flags().StringVar(&configType, "config_type", "yaml", "Type of configuration file (yaml or json)")
	rootCmd.Flags().Float64Var(&sensitivity, "sensitivity", 0.8, "Similarity threshold (0-1). Higher values require higher similarity")
	rootCmd.Flags().IntVar(&concurrency, "concurrency", 1, "Number of history files compared in parallel")

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format (console or json)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also log to this file, rotated by size")
}

func runCompare(cmd *cobra.Command, args []string) error {
	historyDir, newConfigPath := args[0], args[1]

	// Path validation happens eagerly, before any processing.
	if info, err := os.Stat(historyDir); err != nil || !info.IsDir() {
		return fmt.Errorf("config history directory %q does not exist", historyDir)
	}
	if info, err := os.Stat(newConfigPath); err != nil || info.IsDir() {
		return fmt.Errorf("new config file %q does not exist", newConfigPath)
	}

	format, err := parser.ParseFormat(configType)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{Level: logLevel, Format: logFormat, File: logFile})
	if err != nil {
		return err
	}

	comp, err := comparator.New(comparator.Options{
		HistoryDir:    historyDir,
		NewConfigPath: newConfigPath,
		Format:        format,
		Sensitivity:   sensitivity,
		Concurrency:   concurrency,
	}, linter.NewExecValidator(format), logger)
	if err != nil {
		return err
	}

	result, err := comp.Compare(cmd.Context())
	if err != nil {
		logger.Error().Err(err).Msg("comparison failed")
		return err
	}

	renderer.Render(cmd.OutOrStdout(), result)
	return nil
}
