package logger_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripgen/internal/config"
)

var Module = fx.Provide(provideLogger)

func provideLogger(lc fx.Lifecycle, cfg config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapCfg.Level = level

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			// stderr sync fails on some terminals; nothing to do about it
			_ = logger.Sync()
			return nil
		},
	})
	return logger, nil
}
