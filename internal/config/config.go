package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIBaseURL = "https://worksafe-api.onrender.com/api"
	DefaultCEPBaseURL = "https://viacep.com.br/ws"
)

type Config struct {
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`

	APIBaseURL string        `yaml:"api_base_url"`
	APITimeout time.Duration `yaml:"api_timeout"`
	CEPBaseURL string        `yaml:"cep_base_url"`
	CEPTimeout time.Duration `yaml:"cep_timeout"`

	NotFoundRetries int           `yaml:"not_found_retries"`
	RetryDelay      time.Duration `yaml:"retry_delay"`

	TokenStore  string `yaml:"token_store"` // file, memory, sqlite, postgres
	TokenFile   string `yaml:"token_file"`
	SQLitePath  string `yaml:"sqlite_path"`
	PostgresDSN string `yaml:"postgres_dsn"`

	FakeAPIAddr string `yaml:"fake_api_addr"`
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		c, err := LoadFrom(".env", os.Getenv("WORKSAFE_CONFIG"))
		if err != nil {
			panic("Invalid config: " + err.Error())
		}
		cfg = c
	})
	return cfg
}

// LoadFrom builds a Config from defaults, an optional YAML file and the
// environment (after loading dotenvPath, if it exists), in that order.
func LoadFrom(dotenvPath, yamlPath string) (*Config, error) {
	if dotenvPath != "" {
		if _, err := os.Stat(dotenvPath); err == nil {
			if err := godotenv.Load(dotenvPath); err != nil {
				return nil, fmt.Errorf("load %s: %w", dotenvPath, err)
			}
		}
	}
	c := Defaults()
	if yamlPath != "" {
		if err := c.mergeYAML(yamlPath); err != nil {
			return nil, err
		}
	}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func Defaults() *Config {
	return &Config{
		Env:             "development",
		LogLevel:        "info",
		APIBaseURL:      DefaultAPIBaseURL,
		APITimeout:      10 * time.Second,
		CEPBaseURL:      DefaultCEPBaseURL,
		CEPTimeout:      5 * time.Second,
		NotFoundRetries: 2,
		RetryDelay:      time.Second,
		TokenStore:      "file",
		TokenFile:       defaultTokenFile(),
		SQLitePath:      "worksafe.db",
		FakeAPIAddr:     ":8088",
	}
}

func (c *Config) Validate() error {
	switch c.TokenStore {
	case "file":
		if c.TokenFile == "" {
			return errors.New("TOKEN_FILE is required when TOKEN_STORE=file")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required when TOKEN_STORE=sqlite")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when TOKEN_STORE=postgres")
		}
	case "memory":
	default:
		return fmt.Errorf("TOKEN_STORE must be one of: file, memory, sqlite, postgres (got %q)", c.TokenStore)
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.APIBaseURL == "" || c.CEPBaseURL == "" {
		return errors.New("API_BASE_URL and CEP_BASE_URL must not be empty")
	}
	if c.APITimeout <= 0 || c.CEPTimeout <= 0 {
		return errors.New("API_TIMEOUT and CEP_TIMEOUT must be positive")
	}
	if c.NotFoundRetries < 0 || c.RetryDelay < 0 {
		return errors.New("NOT_FOUND_RETRIES and RETRY_DELAY must not be negative")
	}
	return nil
}

func (c *Config) mergeYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Env = getEnv("APP_ENV", c.Env)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.APIBaseURL = getEnv("API_BASE_URL", c.APIBaseURL)
	c.CEPBaseURL = getEnv("CEP_BASE_URL", c.CEPBaseURL)
	c.TokenStore = getEnv("TOKEN_STORE", c.TokenStore)
	c.TokenFile = getEnv("TOKEN_FILE", c.TokenFile)
	c.SQLitePath = getEnv("SQLITE_PATH", c.SQLitePath)
	c.PostgresDSN = getEnv("POSTGRES_DSN", c.PostgresDSN)
	c.FakeAPIAddr = getEnv("FAKE_API_ADDR", c.FakeAPIAddr)

	var err error
	if c.APITimeout, err = getDuration("API_TIMEOUT", c.APITimeout); err != nil {
		return err
	}
	if c.CEPTimeout, err = getDuration("CEP_TIMEOUT", c.CEPTimeout); err != nil {
		return err
	}
	if c.RetryDelay, err = getDuration("RETRY_DELAY", c.RetryDelay); err != nil {
		return err
	}
	if v := os.Getenv("NOT_FOUND_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("NOT_FOUND_RETRIES: %w", err)
		}
		c.NotFoundRetries = n
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".worksafe", "session.json")
	}
	return filepath.Join(dir, "worksafe", "session.json")
}
