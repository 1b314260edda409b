package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GetDb opens the configured database and exits the process through
// logrus.Fatalf when it cannot be opened.
func GetDb(cfg *Config) *gorm.DB {
	db, err := OpenDb(cfg.Database)
	if err != nil {
		logrus.Fatalf("error opening %s database: %v", cfg.Database.Driver, err)
	}

	return db
}

// OpenDb opens a gorm session for the given driver.
func OpenDb(cfg DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		// unique index violations surface as gorm.ErrDuplicatedKey
		TranslateError: true,
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}

	switch cfg.Driver {
	case DriverSqlite, "":
		db, err := gorm.Open(sqlite.Open(sqliteDSN(cfg.DSN)), gormConfig)
		if err != nil {
			return nil, err
		}
		// a single writer avoids "database is locked" under concurrent requests
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	case DriverPostgres:
		return gorm.Open(postgres.Open(cfg.DSN), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_busy_timeout") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_busy_timeout=5000"
	}
	return dsn + "?_busy_timeout=5000"
}
