package infra

import (
	"fmt"

	"accessitrip/internal/config"
	"accessitrip/internal/models/db_models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenSessionDB opens the database backing the local credential store and
// migrates its schema.
func OpenSessionDB(cfg config.SessionConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("session driver %q has no database", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open session database: %w", err)
	}
	if err := db.AutoMigrate(&db_models.SessionToken{}); err != nil {
		return nil, fmt.Errorf("migrate session database: %w", err)
	}
	return db, nil
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Warn("error getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Warn("error closing session database")
	} else {
		logrus.Debug("session database closed")
	}
}
