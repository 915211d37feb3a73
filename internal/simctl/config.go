package simctl

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aussiebroadwan/simapi/pkg/simsdk"
)

type Config struct {
	ClientID     string        // Required: OAuth2 client id
	ClientSecret string        // Required: OAuth2 client secret
	BaseURL      string        // Optional: API root (default: https://api.1nce.com/management-api)
	APIVersion   string        // Optional: API version path segment (default: v1)
	HTTPTimeout  time.Duration // Optional: timeout of a single HTTP exchange (default: 30s)
	Env          string        // Environment (dev, prod) (default: prod)
	LogLevel     string        // Log level (debug, info, warn, error) (default: warn)
	LogFormat    string        // Log format (json, text) (default: text)
}

// fileConfig is the YAML shape of a --config file. Every key is optional.
type fileConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	BaseURL      string `yaml:"base_url"`
	APIVersion   string `yaml:"api_version"`
	HTTPTimeout  string `yaml:"http_timeout"`
	Env          string `yaml:"env"`
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`
}

var (
	ErrMissingClientID     = errors.New("ONCE_CLIENT_ID is required")
	ErrMissingClientSecret = errors.New("ONCE_CLIENT_SECRET is required")
)

// LoadConfig resolves configuration from defaults, the optional YAML file at
// path and the environment, in increasing order of precedence. A .env file in
// the working directory is loaded into the environment first.
func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:     simsdk.DefaultBaseURL,
		APIVersion:  simsdk.APIVersionV1,
		HTTPTimeout: simsdk.DefaultTimeout,
		Env:         "prod",
		LogLevel:    "warn",
		LogFormat:   "text",
	}

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.ClientID = getEnvOrDefault("ONCE_CLIENT_ID", cfg.ClientID)
	cfg.ClientSecret = getEnvOrDefault("ONCE_CLIENT_SECRET", cfg.ClientSecret)
	cfg.BaseURL = getEnvOrDefault("ONCE_BASE_URL", cfg.BaseURL)
	cfg.APIVersion = getEnvOrDefault("ONCE_API_VERSION", cfg.APIVersion)
	cfg.HTTPTimeout = getEnvDurationOrDefault("ONCE_HTTP_TIMEOUT", cfg.HTTPTimeout)
	cfg.Env = getEnvOrDefault("ENV", cfg.Env)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", cfg.LogFormat)

	return cfg, nil
}

// Validate reports the first missing required setting.
func (c Config) Validate() error {
	if c.ClientID == "" {
		return ErrMissingClientID
	}
	if c.ClientSecret == "" {
		return ErrMissingClientSecret
	}
	return nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	setIfNotEmpty(&c.ClientID, fc.ClientID)
	setIfNotEmpty(&c.ClientSecret, fc.ClientSecret)
	setIfNotEmpty(&c.BaseURL, fc.BaseURL)
	setIfNotEmpty(&c.APIVersion, fc.APIVersion)
	setIfNotEmpty(&c.Env, fc.Env)
	setIfNotEmpty(&c.LogLevel, fc.LogLevel)
	setIfNotEmpty(&c.LogFormat, fc.LogFormat)

	if fc.HTTPTimeout != "" {
		d, err := parseDuration(fc.HTTPTimeout)
		if err != nil {
			return fmt.Errorf("invalid http_timeout %q in %s: %w", fc.HTTPTimeout, path, err)
		}
		c.HTTPTimeout = d
	}

	return nil
}

func setIfNotEmpty(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if d, err := parseDuration(value); err == nil {
		return d
	}

	return defaultValue
}

// parseDuration accepts Go durations ("45s", "2m") or a bare number of seconds.
func parseDuration(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if d, err := time.ParseDuration(value); err == nil {
		return d, nil
	}

	seconds, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("not a duration: %q", value)
	}
	return time.Duration(seconds) * time.Second, nil
}
