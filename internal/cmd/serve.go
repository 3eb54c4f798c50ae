package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/bagdasarian/project-team-rules/internal/app"
	"github.com/bagdasarian/project-team-rules/internal/db"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start the HTTP server. Migrations are applied first when postgres.auto_migrate is set.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	database, err := db.NewPostgres(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()
	log.Infow("connected to database", "host", cfg.Database.Host, "db", cfg.Database.DBName)

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx, database, cfg.Database.MigrateTimeout); err != nil {
			return err
		}
	}

	srv := app.NewServer(cfg, database, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warnw("server shutdown", "timeout", cfg.Server.ShutdownTimeout, "error", err)
		return err
	}
	return nil
}
