package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	// HTTP server configuration
	HTTP HTTPConfig `yaml:"http"`

	// Feature flags
	Features FeatureFlags `yaml:"features"`

	// SuperAdminEmail gets the extra super-admin affordances (exact match)
	SuperAdminEmail string `yaml:"super_admin_email"`

	Auth     AuthConfig     `yaml:"auth"`
	Storage  StorageConfig  `yaml:"storage"`
	Settings SettingsConfig `yaml:"settings"`
	Backend  BackendConfig  `yaml:"backend"`
	LLM      LLMConfig      `yaml:"llm"`

	LogLevel string `yaml:"log_level"`
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// FeatureFlags holds deployment-mode toggles
type FeatureFlags struct {
	EnableCloud            bool `yaml:"enable_cloud"`
	EnableEnterprise       bool `yaml:"enable_enterprise"`
	KnowledgeGraphExposed  bool `yaml:"knowledge_graph_exposed"`
	CustomAnalyticsEnabled bool `yaml:"custom_analytics_enabled"`
}

// Auth modes
const (
	AuthModeHeader = "header"
	AuthModeDev    = "dev"
)

// AuthConfig holds user resolution settings
type AuthConfig struct {
	Mode          string `yaml:"mode"`
	SessionSecret string `yaml:"session_secret"`
	SecureCookies bool   `yaml:"secure_cookies"`
	EmailHeader   string `yaml:"email_header"`
	RoleHeader    string `yaml:"role_header"`
}

// StorageConfig selects where UI preferences are persisted
type StorageConfig struct {
	Backend         string `yaml:"backend"`
	SQLitePath      string `yaml:"sqlite_path"`
	MongoURI        string `yaml:"mongo_uri"`
	MongoDatabase   string `yaml:"mongo_database"`
	MongoCollection string `yaml:"mongo_collection"`
}

// SettingsConfig points at the product settings snapshot
type SettingsConfig struct {
	Path string `yaml:"path"`
}

// BackendConfig holds the API the console reads tools, assistants and usage from
type BackendConfig struct {
	URL     string        `yaml:"url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

// LLMConfig holds the provider used by the LLM configuration page
type LLMConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ShutdownTimeout: 5 * time.Second,
		},
		Auth: AuthConfig{
			Mode:        AuthModeHeader,
			EmailHeader: "X-Forwarded-Email",
			RoleHeader:  "X-Forwarded-Role",
		},
		Storage: StorageConfig{
			Backend:         "cookie",
			SQLitePath:      "./data/preferences.db",
			MongoURI:        "mongodb://localhost:27017",
			MongoDatabase:   "adminshell",
			MongoCollection: "preferences",
		},
		Settings: SettingsConfig{
			Path: "./settings.yaml",
		},
		Backend: BackendConfig{
			URL:     "http://localhost:8081/api",
			Timeout: 10 * time.Second,
		},
		LogLevel: "info",
	}
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return LoadFile(os.Getenv("ADMINSHELL_CONFIG"))
}

// LoadFile loads the YAML file at path (if any) on top of the defaults,
// then applies environment overrides
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides cfg with any ADMINSHELL_* variables that are set
func applyEnv(cfg *Config) {
	cfg.HTTP.Host = getEnvString("ADMINSHELL_HTTP_HOST", cfg.HTTP.Host)
	cfg.HTTP.Port = getEnvInt("ADMINSHELL_HTTP_PORT", cfg.HTTP.Port)
	cfg.HTTP.ShutdownTimeout = getEnvDuration("ADMINSHELL_HTTP_SHUTDOWN_TIMEOUT", cfg.HTTP.ShutdownTimeout)

	cfg.Features.EnableCloud = getEnvBool("ADMINSHELL_ENABLE_CLOUD", cfg.Features.EnableCloud)
	cfg.Features.EnableEnterprise = getEnvBool("ADMINSHELL_ENABLE_ENTERPRISE", cfg.Features.EnableEnterprise)
	cfg.Features.KnowledgeGraphExposed = getEnvBool("ADMINSHELL_KG_EXPOSED", cfg.Features.KnowledgeGraphExposed)
	cfg.Features.CustomAnalyticsEnabled = getEnvBool("ADMINSHELL_CUSTOM_ANALYTICS_ENABLED", cfg.Features.CustomAnalyticsEnabled)

	cfg.SuperAdminEmail = getEnvString("ADMINSHELL_SUPER_ADMIN_EMAIL", cfg.SuperAdminEmail)

	cfg.Auth.Mode = getEnvString("ADMINSHELL_AUTH_MODE", cfg.Auth.Mode)
	cfg.Auth.SessionSecret = getEnvString("ADMINSHELL_SESSION_SECRET", cfg.Auth.SessionSecret)
	cfg.Auth.SecureCookies = getEnvBool("ADMINSHELL_SECURE_COOKIES", cfg.Auth.SecureCookies)
	cfg.Auth.EmailHeader = getEnvString("ADMINSHELL_AUTH_EMAIL_HEADER", cfg.Auth.EmailHeader)
	cfg.Auth.RoleHeader = getEnvString("ADMINSHELL_AUTH_ROLE_HEADER", cfg.Auth.RoleHeader)

	cfg.Storage.Backend = getEnvString("ADMINSHELL_STORAGE_BACKEND", cfg.Storage.Backend)
	cfg.Storage.SQLitePath = getEnvString("ADMINSHELL_SQLITE_PATH", cfg.Storage.SQLitePath)
	cfg.Storage.MongoURI = getEnvString("ADMINSHELL_MONGODB_URI", cfg.Storage.MongoURI)
	cfg.Storage.MongoDatabase = getEnvString("ADMINSHELL_MONGODB_DATABASE", cfg.Storage.MongoDatabase)
	cfg.Storage.MongoCollection = getEnvString("ADMINSHELL_MONGODB_COLLECTION", cfg.Storage.MongoCollection)

	cfg.Settings.Path = getEnvString("ADMINSHELL_SETTINGS_PATH", cfg.Settings.Path)

	cfg.Backend.URL = getEnvString("ADMINSHELL_BACKEND_URL", cfg.Backend.URL)
	cfg.Backend.APIKey = getEnvString("ADMINSHELL_BACKEND_API_KEY", cfg.Backend.APIKey)
	cfg.Backend.Timeout = getEnvDuration("ADMINSHELL_BACKEND_TIMEOUT", cfg.Backend.Timeout)

	cfg.LLM.APIKey = getEnvString("ADMINSHELL_LLM_API_KEY", cfg.LLM.APIKey)
	cfg.LLM.BaseURL = getEnvString("ADMINSHELL_LLM_BASE_URL", cfg.LLM.BaseURL)

	cfg.LogLevel = getEnvString("ADMINSHELL_LOG_LEVEL", cfg.LogLevel)
}

// Validate rejects settings the server cannot start with
func (c *Config) Validate() error {
	var errs []error

	switch c.Storage.Backend {
	case "cookie", "memory", "sqlite", "mongodb":
	default:
		errs = append(errs, fmt.Errorf("unknown storage backend %q", c.Storage.Backend))
	}

	switch c.Auth.Mode {
	case AuthModeHeader, AuthModeDev:
	default:
		errs = append(errs, fmt.Errorf("unknown auth mode %q", c.Auth.Mode))
	}

	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid http port %d", c.HTTP.Port))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// GetAddress returns the HTTP server address
func (c *Config) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}

// Helper functions for environment variables
func getEnvString(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration accepts Go durations ("500ms", "2m") or bare seconds
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
