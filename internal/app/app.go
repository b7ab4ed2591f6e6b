package app

import (
	"github.com/BMarcano/dispatcher/internal/config"
	"github.com/BMarcano/dispatcher/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const connectRetries = 5

// BuildApp connects the stores and registers every module on router.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	logger := zap.L().Named("app")

	if err := cfg.RequireJWTSecret(); err != nil {
		return err
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres, connectRetries)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	if cfg.AutoMigrate {
		if err := Migrate(gormDB); err != nil {
			return err
		}
		logger.Info("schema migrated")
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	return registerModules(router, cfg, sqlDB, gormDB, redisClient)
}

// OpenDatabase is used by the processes that only need postgres.
func OpenDatabase(cfg config.Config) (*gorm.DB, error) {
	return connection.ConnectGORMWithRetry(cfg.Postgres, connectRetries)
}
