// Command seed fills the database with sample users, categories and
// products for local development.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"marketplace/config"
	"marketplace/internal/infra/auth"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/persistence/sqldb"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "seed failed:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := sqldb.Open(cfg, logger)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := sqldb.Migrate(db); err != nil {
		return err
	}
	if err := sqldb.NewCategoryRepository(db).SeedDefaults(ctx); err != nil {
		return err
	}
	if err := sqldb.SeedSamples(ctx, db, auth.NewBcryptHasher()); err != nil {
		return err
	}

	logger.Info("Sample data seeded", slog.String("env", cfg.Env.Env))

	return nil
}
