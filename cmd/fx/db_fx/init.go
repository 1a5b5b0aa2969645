package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripgen/internal/config"
	"tripgen/internal/infra"
)

var Module = fx.Provide(
	provideDB)

// provideDB may return nil; repositories treat that as an unavailable store.
func provideDB(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) *gorm.DB {
	db := infra.InitPostgresql(cfg, logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
	return db
}
