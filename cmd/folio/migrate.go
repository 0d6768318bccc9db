// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.


package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/database"
	"folio/internal/seed"
)

var migrateSeed bool

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long: `Apply pending PostgreSQL migrations and exit. Unless --seed=false, the bundled
catalog is loaded into empty tables afterwards.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			slog.SetDefault(newLogger(os.Stderr, cfg.Log))

			if !cfg.Database.Enabled {
				return errors.New("database is disabled; set POSTGRES_ENABLED=true or database.enabled in the config file")
			}

			db, err := database.Connect(cfg.DSN())
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(db); err != nil {
				return err
			}
			slog.Info("migrations applied")

			if migrateSeed {
				c, err := seed.Default()
				if err != nil {
					return fmt.Errorf("load seed catalog: %w", err)
				}
				if err := database.Seed(cmd.Context(), db, c); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&migrateSeed, "seed", true, "load the bundled catalog into empty tables")
	return cmd
}
