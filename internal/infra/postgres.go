package infra

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tripgen/internal/config"
	"tripgen/internal/models/db_models"
)

// InitPostgresql opens the optional hero image store. An empty POSTGRES_URL
// returns a nil handle and the service runs on the in-process cache alone.
func InitPostgresql(cfg config.Config, logger *zap.Logger) *gorm.DB {
	if cfg.PostgresURL == "" {
		logger.Info("POSTGRES_URL not set, country image store disabled")
		return nil
	}

	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		logger.Warn("error connecting to database, country image store disabled", zap.Error(err))
		return nil
	}

	if err := connectionPool.AutoMigrate(&db_models.CountryImage{}); err != nil {
		logger.Warn("country image migration failed, store disabled", zap.Error(err))
		ClosePostgresql(connectionPool, logger)
		return nil
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Warn("error closing database connection", zap.Error(err))
	} else {
		logger.Info("PostgreSQL database connection closed successfully")
	}
}
