// Package config loads application configuration from a YAML file with
// environment variable overrides for deployment-sensitive values.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/minhvu/internhub/internal/pkg/helpers"
	"gopkg.in/yaml.v3"
)

// Config is the root application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Logging  LoggingConfig  `yaml:"logging"`
	Storage  StorageConfig  `yaml:"storage"`
	Import   ImportConfig   `yaml:"import"`
	Seed     SeedConfig     `yaml:"seed"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	ReadTimeout  string `yaml:"readTimeout"`
	WriteTimeout string `yaml:"writeTimeout"`
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslMode"`
	MaxConns int32  `yaml:"maxConns"`
}

// JWTConfig holds token issuance settings
type JWTConfig struct {
	SecretKey       string `yaml:"secretKey"`
	AccessTokenExp  string `yaml:"accessTokenExp"`
	RefreshTokenExp string `yaml:"refreshTokenExp"`
	Issuer          string `yaml:"issuer"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// StorageConfig holds uploaded-file storage settings
type StorageConfig struct {
	BasePath string `yaml:"basePath"`
	BaseURL  string `yaml:"baseUrl"`
}

// ImportConfig holds roster import settings
type ImportConfig struct {
	// MaxFileSizeMB caps uploaded roster spreadsheets
	MaxFileSizeMB int64 `yaml:"maxFileSizeMb"`
}

// SeedConfig holds the initial admin account provisioned on first start
type SeedConfig struct {
	AdminEmail    string `yaml:"adminEmail"`
	AdminPassword string `yaml:"adminPassword"`
	AdminName     string `yaml:"adminName"`
}

// Load reads configuration from path and applies environment overrides
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		// missing file is fine, env and defaults carry the config
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if cfg.JWT.SecretKey == "" {
		return nil, fmt.Errorf("jwt secret key is not configured")
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  "15s",
			WriteTimeout: "15s",
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Name:     "internhub",
			SSLMode:  "disable",
			MaxConns: 10,
		},
		JWT: JWTConfig{
			AccessTokenExp:  "1h",
			RefreshTokenExp: "720h",
			Issuer:          "internhub",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			BasePath: "./uploads",
			BaseURL:  "/files",
		},
		Import: ImportConfig{
			MaxFileSizeMB: 10,
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	setString(&cfg.Server.Host, "SERVER_HOST")
	setInt(&cfg.Server.Port, "SERVER_PORT")

	setString(&cfg.Database.Host, "DB_HOST")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.Database.SSLMode, "DB_SSLMODE")

	setString(&cfg.JWT.SecretKey, "JWT_SECRET")

	setString(&cfg.Logging.Level, "LOG_LEVEL")

	setString(&cfg.Storage.BasePath, "STORAGE_PATH")

	setString(&cfg.Seed.AdminEmail, "SEED_ADMIN_EMAIL")
	setString(&cfg.Seed.AdminPassword, "SEED_ADMIN_PASSWORD")
}

func setString(target *string, envKey string) {
	if value := os.Getenv(envKey); value != "" {
		*target = value
	}
}

func setInt(target *int, envKey string) {
	if value := os.Getenv(envKey); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			*target = parsed
		}
	}
}

// DSN builds the PostgreSQL connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// AccessTokenDuration parses the configured access token lifetime
func (c JWTConfig) AccessTokenDuration() time.Duration {
	return helpers.ParseDuration(c.AccessTokenExp, time.Hour)
}

// RefreshTokenDuration parses the configured refresh token lifetime
func (c JWTConfig) RefreshTokenDuration() time.Duration {
	return helpers.ParseDuration(c.RefreshTokenExp, 30*24*time.Hour)
}

// MaxFileSizeBytes converts the configured roster size cap to bytes
func (c ImportConfig) MaxFileSizeBytes() int64 {
	return c.MaxFileSizeMB * 1024 * 1024
}
