package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported database drivers
const (
	DriverPgx      = "pgx"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverLibSQL   = "libsql"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Riot     RiotConfig     `yaml:"riot"`
	Archive  ArchiveConfig  `yaml:"archive"`
	LogLevel string         `yaml:"log_level"`
}

// DatabaseConfig holds the store connection settings. Name, User, Password,
// Host and Port apply to the Postgres drivers; Path to sqlite and libsql.
type DatabaseConfig struct {
	Driver    string `yaml:"driver"`
	Name      string `yaml:"name"`
	User      string `yaml:"user"`
	Password  string `yaml:"password"`
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	SSLMode   string `yaml:"sslmode"`
	Path      string `yaml:"path"`
	AuthToken string `yaml:"auth_token"`
}

// RiotConfig holds the match API settings
type RiotConfig struct {
	APIKey      string `yaml:"api_key"`
	PlatformURL string `yaml:"platform_url"`
}

// ArchiveConfig holds raw payload archive settings. An empty Path disables archiving.
type ArchiveConfig struct {
	Path              string        `yaml:"path"`
	MaxMatchesPerFile int           `yaml:"max_matches_per_file"`
	MaxFileAge        time.Duration `yaml:"max_file_age"`
}

func defaults() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:  DriverPgx,
			Name:    "riftstats",
			User:    "postgres",
			Host:    "localhost",
			Port:    5432,
			SSLMode: "disable",
			Path:    "riftstats.db",
		},
		Riot: RiotConfig{
			PlatformURL: "https://euw1.api.riotgames.com",
		},
		Archive: ArchiveConfig{
			MaxMatchesPerFile: 1000,
			MaxFileAge:        time.Hour,
		},
		LogLevel: "info",
	}
}

// Load reads configuration in three layers: built-in defaults, then the YAML
// file at path (skipped when path is empty), then environment variables.
// A .env file in the working directory is loaded into the environment first.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := defaults()
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Database = DatabaseConfig{
		Driver:    getEnv("DB_DRIVER", c.Database.Driver),
		Name:      getEnv("DB", c.Database.Name),
		User:      getEnv("DBUSER", c.Database.User),
		Password:  getEnv("DBPASSWD", c.Database.Password),
		Host:      getEnv("DBHOST", c.Database.Host),
		Port:      getIntEnv("DBPORT", c.Database.Port),
		SSLMode:   getEnv("DB_SSLMODE", c.Database.SSLMode),
		Path:      getEnv("DB_PATH", c.Database.Path),
		AuthToken: getEnv("DB_AUTH_TOKEN", c.Database.AuthToken),
	}
	c.Riot = RiotConfig{
		APIKey:      getEnv("RIOT_API_KEY", c.Riot.APIKey),
		PlatformURL: getEnv("RIOT_PLATFORM_URL", c.Riot.PlatformURL),
	}
	c.Archive = ArchiveConfig{
		Path:              getEnv("ARCHIVE_PATH", c.Archive.Path),
		MaxMatchesPerFile: getIntEnv("ARCHIVE_MAX_MATCHES", c.Archive.MaxMatchesPerFile),
		MaxFileAge:        getDurationEnv("ARCHIVE_MAX_AGE", c.Archive.MaxFileAge),
	}
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Database.Validate(); err != nil {
		errs = append(errs, err)
	}

	if _, err := c.Level(); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	if c.Archive.Path != "" && c.Archive.MaxMatchesPerFile <= 0 {
		errs = append(errs, errors.New("ARCHIVE_MAX_MATCHES must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// ValidateRiot checks the settings needed to call the match API
func (c *Config) ValidateRiot() error {
	var missing []string
	if c.Riot.APIKey == "" {
		missing = append(missing, "RIOT_API_KEY")
	}
	if c.Riot.PlatformURL == "" {
		missing = append(missing, "RIOT_PLATFORM_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error")
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}

// Validate checks the fields the configured driver needs
func (d DatabaseConfig) Validate() error {
	var errs []error

	switch d.Driver {
	case DriverPgx, DriverPostgres:
		if d.Name == "" {
			errs = append(errs, errors.New("DB is required"))
		}
		if d.Host == "" {
			errs = append(errs, errors.New("DBHOST is required"))
		}
		if d.Port <= 0 || d.Port > 65535 {
			errs = append(errs, fmt.Errorf("DBPORT must be a valid port, got %d", d.Port))
		}
	case DriverSQLite, DriverLibSQL:
		if d.Path == "" {
			errs = append(errs, errors.New("DB_PATH is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be one of %s, %s, %s, %s, got '%s'",
			DriverPgx, DriverPostgres, DriverSQLite, DriverLibSQL, d.Driver))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// DSN builds the data source name passed to sql.Open for the configured driver
func (d DatabaseConfig) DSN() string {
	switch d.Driver {
	case DriverSQLite:
		return d.Path
	case DriverLibSQL:
		if d.AuthToken != "" {
			return fmt.Sprintf("%s?authToken=%s", d.Path, url.QueryEscape(d.AuthToken))
		}
		return d.Path
	default:
		u := url.URL{
			Scheme: "postgres",
			Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
			Path:   "/" + d.Name,
		}
		if d.User != "" {
			if d.Password != "" {
				u.User = url.UserPassword(d.User, d.Password)
			} else {
				u.User = url.User(d.User)
			}
		}
		if d.SSLMode != "" {
			u.RawQuery = url.Values{"sslmode": {d.SSLMode}}.Encode()
		}
		return u.String()
	}
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
