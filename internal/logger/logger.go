package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/portfolio-bot/internal/config"
)

// New returns a JSON production logger in production and a console
// development logger elsewhere. Debug lowers the level to debug in both.
// Every entry carries the env name.
func New(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	}
	if cfg.Debug {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	log, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return log.With(zap.String("env", cfg.Env)), nil
}
