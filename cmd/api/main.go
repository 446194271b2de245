package main

import (
	"fmt"
	"os"

	"animal-rescue-portal/internal/platform/config"
	"animal-rescue-portal/internal/platform/logger"

	"github.com/spf13/cobra"
)

// @title Animal Rescue Portal API
// @version 1.0
// @description Endpoints JSON del portal de rescate: publicación de animales y solicitudes de adopción.
// @BasePath /

var configFile string

var rootCmd = &cobra.Command{
	Use:   "rescue-portal",
	Short: "Animal rescue web portal",
	Long: `rescue-portal sirve el portal web de rescate y adopción de animales.

Examples:

  rescue-portal serve
  rescue-portal serve --config config.yaml
  rescue-portal migrate
`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "optional YAML config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})
	return cfg, log, nil
}
