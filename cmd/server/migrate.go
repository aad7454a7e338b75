package main

import (
	"github.com/spf13/cobra"

	"ai-website-builder/internal/infrastructure/database"
)

func migrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	for _, direction := range []string{database.MigrateUp, database.MigrateDown} {
		cmd.AddCommand(&cobra.Command{
			Use:   direction,
			Short: "Run migrations " + direction,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				return database.RunMigrations(cfg.MigrationsPath, poolConfig(cfg).URL(), direction)
			},
		})
	}

	return cmd
}
