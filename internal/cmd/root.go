// Package cmd - команды CLI
package cmd

import (
	"fmt"

	"github.com/bagdasarian/project-team-rules/internal/config"
	"github.com/bagdasarian/project-team-rules/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "app",
	Short: "Project team rules service",
	Long: `Team registry, project visibility rules and task statistics
served over HTTP on top of PostgreSQL.`,
	SilenceUsage: true,
}

// Execute запускает корневую команду
func Execute() error {
	return rootCmd.Execute()
}

func bootstrap() (*config.Config, *zap.SugaredLogger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}
