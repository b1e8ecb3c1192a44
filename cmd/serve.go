package cmd

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cother/cother/api"
	"github.com/cother/cother/config"
	"github.com/cother/cother/database"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Cother server",
	Long:  `Start the Cother server to handle account, authentication and steam proxy requests.`,
	Example: `cother serve --config config.yml
cother serve -c /path/to/config.yml --log-level debug`,
	Run: startServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func startServer(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if rootCmdPersistentFlags.LogLevel == "" {
		setLogLevel(cfg.LogLevel)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("failed to create database directory: %v", err)
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	server, err := api.New(cfg, db, log.GetLevel() == log.DebugLevel)
	if err != nil {
		log.Fatalf("failed to create API server: %v", err)
	}

	log.Info("starting API server", "listen", cfg.Listen)
	if err := server.Run(); err != nil {
		log.Fatalf("API server error: %v", err)
	}
}
