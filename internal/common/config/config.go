package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DataFile  string
	Directory DirectoryConfig
	Lines     LinesConfig
	Database  DatabaseConfig
	Logging   LoggingConfig
	Notify    NotifyConfig
}

// DirectoryConfig selects and tunes the station/line directory
type DirectoryConfig struct {
	APIURL       string
	APITimeout   time.Duration
	StationsFile string // offline directory, replaces the API when set
	CacheSize    int
	CacheTTL     time.Duration
}

type LinesConfig struct {
	AliasesFile string // empty means the built-in table
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type LoggingConfig struct {
	Level    string
	FilePath string
}

type NotifyConfig struct {
	DiscordURL string
}

func Load() (*Config, error) {
	cfg := &Config{
		DataFile: getEnv("DATA_FILE", "./data.ndjson"),
		Directory: DirectoryConfig{
			APIURL:       getEnv("VBB_API_URL", "https://v6.vbb.transport.rest"),
			APITimeout:   getDurationEnv("VBB_API_TIMEOUT", 30*time.Second),
			StationsFile: getEnv("STATIONS_FILE", ""),
			CacheSize:    getIntEnv("CACHE_SIZE", 1000),
			CacheTTL:     getDurationEnv("CACHE_TTL", time.Hour),
		},
		Lines: LinesConfig{
			AliasesFile: getEnv("LINE_ALIASES_FILE", ""),
		},
		Database: DatabaseConfig{
			Enabled:  getBoolEnv("DB_ENABLED", false),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "change_positions"),
		},
		Logging: LoggingConfig{
			Level:    getEnv("LOG_LEVEL", "warn"),
			FilePath: getEnv("LOG_FILE", "change-positions.log"),
		},
		Notify: NotifyConfig{
			DiscordURL: getEnv("DISCORD_WEBHOOK_URL", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("data file path must not be empty")
	}
	if c.Directory.StationsFile == "" && c.Directory.APIURL == "" {
		return fmt.Errorf("either VBB_API_URL or STATIONS_FILE must be set")
	}
	if c.Directory.CacheSize < 0 {
		return fmt.Errorf("CACHE_SIZE must not be negative, got %d", c.Directory.CacheSize)
	}
	if c.Database.Enabled {
		return c.Database.Validate()
	}
	return nil
}

func (c *DatabaseConfig) Validate() error {
	if c.Host == "" || c.DBName == "" {
		return fmt.Errorf("database host and name are required when DB_ENABLED is set")
	}
	return nil
}

func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.DBName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
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

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
