package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("GRPC_PORT", "5020")
	t.Setenv("GRPC_WORKERS", "3")
	t.Setenv("DB_DRIVER", "SQLITE")

	cfg := LoadConfig()
	assert.Equal(t, "5020", cfg.Server.GrpcPort)
	assert.Equal(t, "4021", cfg.Server.HttpPort)
	assert.Equal(t, 3, cfg.Server.Workers)
	assert.Equal(t, DriverSqlite, cfg.Database.Driver)
	assert.Equal(t, "glossary:events", cfg.Events.Channel)
	assert.False(t, cfg.IsProduction())
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "glossary.db?_busy_timeout=5000", sqliteDSN("glossary.db"))
	assert.Equal(t, "file:g.db?cache=shared&_busy_timeout=5000", sqliteDSN("file:g.db?cache=shared"))
	assert.Equal(t, "g.db?_busy_timeout=100", sqliteDSN("g.db?_busy_timeout=100"))
}

func TestOpenDb(t *testing.T) {
	_, err := OpenDb(DatabaseConfig{Driver: "mysql"})
	assert.EqualError(t, err, "unsupported database driver: mysql")

	db, err := OpenDb(DatabaseConfig{Driver: DriverSqlite, DSN: t.TempDir() + "/glossary.db"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	assert.NoError(t, sqlDB.Close())
}

func TestSetupLogger(t *testing.T) {
	defer logrus.SetLevel(logrus.GetLevel())

	SetupLogger(LogConfig{Level: "debug", Format: "json"})
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	SetupLogger(LogConfig{Level: "loud"})
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logrus.StandardLogger().Formatter)
}
