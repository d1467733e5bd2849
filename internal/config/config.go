package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DBDriver       string `yaml:"db_driver"`
	DBPath         string `yaml:"db_path"`
	DBHost         string `yaml:"db_host"`
	DBPort         string `yaml:"db_port"`
	DBUser         string `yaml:"db_user"`
	DBPassword     string `yaml:"db_password"`
	DBName         string `yaml:"db_name"`
	RedisHost      string `yaml:"redis_host"`
	RedisPort      string `yaml:"redis_port"`
	StoreBackend   string `yaml:"store_backend"`
	StateKey       string `yaml:"state_key"`
	SessionSecret  string `yaml:"session_secret"`
	SessionBackend string `yaml:"session_backend"`
	GinMode        string `yaml:"gin_mode"`
	LogLevel       string `yaml:"log_level"`
	Port           string `yaml:"port"`
}

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"

	BackendDatabase = "database"
	BackendRedis    = "redis"

	SessionRedis  = "redis"
	SessionCookie = "cookie"
)

func Load() *Config {
	return &Config{
		DBDriver:       getEnv("DB_DRIVER", DriverSQLite),
		DBPath:         getEnv("DB_PATH", "taskboard.db"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", ""),
		DBUser:         getEnv("DB_USER", "taskuser"),
		DBPassword:     getEnv("DB_PASSWORD", "taskpassword"),
		DBName:         getEnv("DB_NAME", "taskboard"),
		RedisHost:      getEnv("REDIS_HOST", "localhost"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		StoreBackend:   getEnv("STORE_BACKEND", BackendDatabase),
		StateKey:       getEnv("STATE_KEY", "taskboard-app-data"),
		SessionSecret:  getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		SessionBackend: getEnv("SESSION_BACKEND", SessionCookie),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Port:           getEnv("PORT", "8080"),
	}
}

// LoadFile overlays the settings present in a YAML file onto cfg.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate rejects unknown driver and backend names.
func (c *Config) Validate() error {
	var errs []error
	switch c.DBDriver {
	case DriverSQLite, DriverMySQL, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver))
	}
	switch c.StoreBackend {
	case BackendDatabase, BackendRedis:
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend))
	}
	switch c.SessionBackend {
	case SessionRedis, SessionCookie:
	default:
		errs = append(errs, fmt.Errorf("unknown SESSION_BACKEND %q", c.SessionBackend))
	}
	return errors.Join(errs...)
}

// DatabasePort returns DBPort, or the driver's usual port when unset.
func (c *Config) DatabasePort() string {
	if c.DBPort != "" {
		return c.DBPort
	}
	if c.DBDriver == DriverPostgres {
		return "5432"
	}
	return "3306"
}

func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
