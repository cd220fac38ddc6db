// Package main is the entry point for the news API server.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/docgen"
	"github.com/phrazzld/news-api/internal/config"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/platform/migrations"
)

func main() {
	routes := flag.Bool("routes", false, "print the route table as markdown and exit")
	migrate := flag.String("migrate", "", "run a migration command (up, down, reset, status, version) and exit")
	flag.Parse()

	if err := run(*routes, *migrate); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(printRoutes bool, migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"diag_port", cfg.Server.DiagPort,
		"log_level", cfg.Server.LogLevel,
		"rate_limit_rps", cfg.Server.RateLimitRPS)

	if printRoutes {
		return printRouteDocs(cfg, log)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer func() { _ = db.Close() }()
		log.Info("executing migrations", "command", migrateCmd)
		return migrations.Run(ctx, db, migrateCmd, migrations.NewSlogLogger(log))
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	return app.Run(ctx)
}

// printRouteDocs writes the route table as markdown. The pool is opened but
// never used, so no database needs to be reachable.
func printRouteDocs(cfg *config.Config, log *slog.Logger) error {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	fmt.Println(docgen.MarkdownRoutesDoc(app.setupRouter(), docgen.MarkdownOpts{
		ProjectPath: "github.com/phrazzld/news-api",
		Intro:       "Routes served by the news API.",
	}))
	return nil
}
