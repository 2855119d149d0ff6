package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Movi agent specifics
	Backend   BackendConfig
	OpenAI    OpenAIConfig
	Pending   PendingConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// BackendConfig points at the Movi operations backend.
type BackendConfig struct {
	URL     string
	Timeout time.Duration
}

// OpenAIConfig configures the optional LLM classifier. An empty APIKey
// disables the LLM path entirely; the rule classifier then handles everything.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// PendingConfig bounds the pending-action store.
type PendingConfig struct {
	TTL      time.Duration
	Capacity int
}

// RateLimitConfig throttles /agent per client IP.
type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Backend collaborator
	cfg.Backend.URL = viper.GetString("backend.url")
	cfg.Backend.Timeout = viper.GetDuration("backend.timeout")
	if backendURL := viper.GetString("node_backend"); backendURL != "" {
		cfg.Backend.URL = backendURL
	}
	cfg.Backend.URL = strings.TrimRight(cfg.Backend.URL, "/")

	// OpenAI collaborator (optional)
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	cfg.OpenAI.Timeout = viper.GetDuration("openai.timeout")
	if apiKey := viper.GetString("openai_api_key"); apiKey != "" {
		cfg.OpenAI.APIKey = apiKey
	}
	if model := viper.GetString("openai_model"); model != "" {
		cfg.OpenAI.Model = model
	}

	// Pending-action store
	cfg.Pending.TTL = viper.GetDuration("pending.ttl")
	cfg.Pending.Capacity = viper.GetInt("pending.capacity")

	// Rate limiting
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	if cfg.Backend.URL == "" {
		return nil, fmt.Errorf("backend.url is required (or set NODE_BACKEND)")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8090)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("backend.url", "http://localhost:5000")
	viper.SetDefault("backend.timeout", "10s")

	viper.SetDefault("openai.model", "gpt-4o")
	viper.SetDefault("openai.base_url", "https://api.openai.com/v1")
	viper.SetDefault("openai.timeout", "15s")

	viper.SetDefault("pending.ttl", "15m")
	viper.SetDefault("pending.capacity", 512)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)
}
