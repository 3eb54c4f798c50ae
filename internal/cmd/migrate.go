package cmd

import (
	"github.com/bagdasarian/project-team-rules/internal/db"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	database, err := db.NewPostgres(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.Migrate(cmd.Context(), database, cfg.Database.MigrateTimeout); err != nil {
		return err
	}

	log.Infow("migrations applied")
	return nil
}
