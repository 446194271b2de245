package main

import (
	"errors"
	"fmt"

	pg "animal-rescue-portal/internal/adapters/storage/postgres"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		if cfg.Database.DSN == "" {
			return errors.New("database.dsn is not set (DB_DSN or DATABASE_URL)")
		}

		db, err := pg.Open(cmd.Context(), cfg.Database.DSN, cfg.Database.ConnectRetries, log)
		if err != nil {
			return err
		}
		defer db.Close()

		green := color.New(color.FgGreen, color.Bold)
		yellow := color.New(color.FgYellow)

		n, err := pg.Migrate(cmd.Context(), db, func(name string) {
			green.Print("  applied ")
			fmt.Println(name)
		})
		if err != nil {
			color.New(color.FgRed, color.Bold).Println("migration failed:", err)
			return err
		}
		if n == 0 {
			yellow.Println("Database is up to date.")
			return nil
		}
		green.Printf("Applied %d migration(s).\n", n)
		return nil
	},
}
