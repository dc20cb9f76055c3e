// Copyright (c) 2025 MeetYourAI
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the AICoder application.
// It implements the interactive design studio and supporting subcommands using
// the Cobra CLI framework. The package handles command parsing, execution, and
// provides a rich terminal UI with spinners and boxed output.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MeetYourAI/AICoder/internal/config"
	"github.com/MeetYourAI/AICoder/internal/logging"
)

var (
	showVersion bool
	serverURL   string
	verbose     bool

	cfg config.Config
)

// rootCmd represents the base command when called without any subcommands.
// It serves as the entry point for the AICoder application.
var rootCmd = &cobra.Command{
	Use:           "aicoder",
	Short:         "AICoder CLI for AI-generated database designs",
	Long:          `AICoder is a terminal client for the MeetYourAI design service. Describe a data source (CSV, API, prompt, or an existing database) and view the recommended schema as an entity-relationship diagram.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		if serverURL != "" {
			cfg.ServerURL = serverURL
		}
		logging.Setup(verbose || cfg.Debug)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("aicoder %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Override the design service base URL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debug output on stderr")
}
