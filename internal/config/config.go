package config

import (
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverSqlite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the server configuration.
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Events   EventsConfig
	Log      LogConfig
}

type ServerConfig struct {
	GrpcPort string
	HttpPort string
	// Workers bounds the number of gRPC requests handled at once.
	Workers int
}

type DatabaseConfig struct {
	Driver string
	DSN    string
}

// EventsConfig configures the change feed. An empty RedisAddr disables it.
type EventsConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Channel       string
}

type LogConfig struct {
	Level  string
	Format string
}

func init() {
	viper.SetDefault("ENV", "dev")
	viper.SetDefault("GRPC_PORT", "4020")
	viper.SetDefault("HTTP_PORT", "4021")
	viper.SetDefault("GRPC_WORKERS", 10)
	viper.SetDefault("DB_DRIVER", DriverSqlite)
	viper.SetDefault("DB_DSN", "glossary.db")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_CHANNEL", "glossary:events")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
}

// LoadConfig reads the configuration from the environment (and a .env file when present).
func LoadConfig() *Config {
	viper.AutomaticEnv()

	return &Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			GrpcPort: viper.GetString("GRPC_PORT"),
			HttpPort: viper.GetString("HTTP_PORT"),
			Workers:  viper.GetInt("GRPC_WORKERS"),
		},
		Database: DatabaseConfig{
			Driver: strings.ToLower(viper.GetString("DB_DRIVER")),
			DSN:    viper.GetString("DB_DSN"),
		},
		Events: EventsConfig{
			RedisAddr:     viper.GetString("REDIS_ADDR"),
			RedisPassword: viper.GetString("REDIS_PASSWORD"),
			RedisDB:       viper.GetInt("REDIS_DB"),
			Channel:       viper.GetString("REDIS_CHANNEL"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "prod" || c.Env == "production"
}

// SetupLogger applies the log level and format to the standard logrus logger.
func SetupLogger(cfg LogConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", cfg.Level)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
