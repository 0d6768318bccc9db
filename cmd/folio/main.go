// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.


// Package main is the entry point for the Folio content server. The root
// command serves the API; subcommands run migrations and print the feed.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"folio/internal/config"
)

// version is set during build with -ldflags.
var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Blog and portfolio content server",
	Long: `Folio serves blog posts and portfolio projects over a JSON API and an
RSS feed. Content comes from PostgreSQL when enabled, otherwise from the
bundled seed catalog held in memory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			return os.Setenv(config.PathEnvVar, configPath)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Folio",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "folio version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newFeedCommand())
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
