package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// Local store (MySQL) configuration
	Database DatabaseConfig `json:"database"`

	// Remote store (MongoDB) configuration
	MongoDB MongoDBConfig `json:"mongodb"`

	// Sync / operation queue configuration
	Sync SyncConfig `json:"sync"`

	// Tombstone retention configuration
	Tombstone TombstoneConfig `json:"tombstone"`

	// Logging Configuration
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	SyncServicePort string `json:"sync_service_port"`
	Host            string `json:"host"`
	Environment     string `json:"environment"` // development, staging, production
}

// DatabaseConfig contains local database connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

// MongoDBConfig contains the remote cloud-store connection configuration
type MongoDBConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
}

// SyncConfig contains operation queue retry configuration
type SyncConfig struct {
	MaxRetries       int `json:"max_retries"`        // attempts before a mutation goes terminal
	InitialBackoffMs int `json:"initial_backoff_ms"` // first retry delay
	MaxBackoffMs     int `json:"max_backoff_ms"`     // backoff ceiling
	QueueBufferSize  int `json:"queue_buffer_size"`  // per-connection lane buffer
}

// TombstoneConfig contains soft-delete retention configuration
type TombstoneConfig struct {
	RetentionDays        int `json:"retention_days"`
	CleanupIntervalHours int `json:"cleanup_interval_hours"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `json:"level"`       // debug, info, warn, error
	Format     string `json:"format"`      // json, text
	OutputPath string `json:"output_path"` // stdout, stderr, or file path
}

// LoadConfig builds the configuration from environment variables with
// development defaults. Call godotenv.Load() before this in main.
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			SyncServicePort: getEnv("SYNC_SERVICE_PORT", "7005"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("MYSQL_HOST", "localhost"),
			Port:         getEnv("MYSQL_PORT", "3306"),
			Username:     getEnv("MYSQL_USERNAME", "recipely"),
			Password:     getEnv("MYSQL_PASSWORD", "recipely123"),
			DatabaseName: getEnv("MYSQL_DATABASE", "recipely"),
			MaxOpenConns: getEnvAsInt("MYSQL_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("MYSQL_MAX_IDLE_CONNS", 5),
		},
		MongoDB: MongoDBConfig{
			Host:     getEnv("MONGO_HOST", "localhost"),
			Port:     getEnv("MONGO_PORT", "27017"),
			Username: getEnv("MONGO_USERNAME", ""),
			Password: getEnv("MONGO_PASSWORD", ""),
			Database: getEnv("MONGO_DATABASE", "recipely"),
		},
		Sync: SyncConfig{
			MaxRetries:       getEnvAsInt("SYNC_MAX_RETRIES", 5),
			InitialBackoffMs: getEnvAsInt("SYNC_INITIAL_BACKOFF_MS", 500),
			MaxBackoffMs:     getEnvAsInt("SYNC_MAX_BACKOFF_MS", 30000),
			QueueBufferSize:  getEnvAsInt("SYNC_QUEUE_BUFFER_SIZE", 64),
		},
		Tombstone: TombstoneConfig{
			RetentionDays:        getEnvAsInt("TOMBSTONE_RETENTION_DAYS", 30),
			CleanupIntervalHours: getEnvAsInt("TOMBSTONE_CLEANUP_INTERVAL_HOURS", 24),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "text"),
			OutputPath: getEnv("LOG_OUTPUT", "stdout"),
		},
	}
}

func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func (cfg *Config) GetMongoURI() string {
	if cfg.MongoDB.Username != "" && cfg.MongoDB.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin",
			cfg.MongoDB.Username,
			cfg.MongoDB.Password,
			cfg.MongoDB.Host,
			cfg.MongoDB.Port,
			cfg.MongoDB.Database,
		)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s",
		cfg.MongoDB.Host,
		cfg.MongoDB.Port,
		cfg.MongoDB.Database,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
