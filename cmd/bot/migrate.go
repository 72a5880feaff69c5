package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/portfolio-bot/internal/infra/postgres"
	"github.com/aliskhannn/portfolio-bot/internal/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database tables and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, true, false)
		if err != nil {
			return err
		}

		log, err := logger.New(cfg)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		dsn, err := cfg.DB.DSN()
		if err != nil {
			return err
		}

		pool, err := postgres.NewPool(cmd.Context(), dsn, postgres.PoolConfig{
			MaxConns:        cfg.DB.MaxConnections,
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := postgres.Migrate(cmd.Context(), pool); err != nil {
			return err
		}

		log.Info("schema is up to date", zap.String("env", cfg.Env))
		return nil
	},
}
