package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emt/driftwatch/pkg/canonical"
	"github.com/emt/driftwatch/pkg/parser"
)

var normalizeConfigType string

var normalizeCmd = &cobra.Command{
	Use:   "normalize <file>",
	Short: "Print the canonical serialization of a configuration file",
	Long: `Parses a configuration file and prints the deterministic canonical text
used as diff input, useful for inspecting what a comparison actually sees.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := parser.ParseFormat(normalizeConfigType)
		if err != nil {
			return err
		}

		doc, err := parser.Load(args[0], format)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), canonical.Marshal(doc))
		return nil
	},
}

func init() {
	normalizeCmd.Flags().StringVar(&normalizeConfigType, "config_type", "yaml", "Type of configuration file (yaml or json)")
	rootCmd.AddCommand(normalizeCmd)
}
