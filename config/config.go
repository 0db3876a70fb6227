package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage & sessions
	Redis   RedisConfig
	Session SessionConfig

	// OAuth providers
	Google    GoogleConfig
	Microsoft MicrosoftConfig

	// Sync engine
	Sync  SyncConfig
	Admin AdminConfig
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

type RedisConfig struct {
	URL string
}

type SessionConfig struct {
	Secret  string
	TTLDays int
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type MicrosoftConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Tenant       string
}

type SyncConfig struct {
	PageSize        int
	RateLimitPerMin int
}

type AdminConfig struct {
	APIKey string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
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

	// Redis
	cfg.Redis.URL = viper.GetString("redis.url")
	if redisURL := viper.GetString("redis_url"); redisURL != "" {
		cfg.Redis.URL = redisURL
	}

	// Session
	cfg.Session.Secret = viper.GetString("session.secret")
	cfg.Session.TTLDays = viper.GetInt("session.ttl_days")
	if secret := viper.GetString("session_secret"); secret != "" {
		cfg.Session.Secret = secret
	}

	// Google OAuth
	cfg.Google.ClientID = viper.GetString("google.client_id")
	cfg.Google.ClientSecret = viper.GetString("google.client_secret")
	cfg.Google.RedirectURL = viper.GetString("google.redirect_url")
	if id := viper.GetString("google_client_id"); id != "" {
		cfg.Google.ClientID = id
	}
	if secret := viper.GetString("google_client_secret"); secret != "" {
		cfg.Google.ClientSecret = secret
	}

	// Microsoft OAuth
	cfg.Microsoft.ClientID = viper.GetString("microsoft.client_id")
	cfg.Microsoft.ClientSecret = viper.GetString("microsoft.client_secret")
	cfg.Microsoft.RedirectURL = viper.GetString("microsoft.redirect_url")
	cfg.Microsoft.Tenant = viper.GetString("microsoft.tenant")
	if id := viper.GetString("microsoft_client_id"); id != "" {
		cfg.Microsoft.ClientID = id
	}
	if secret := viper.GetString("microsoft_client_secret"); secret != "" {
		cfg.Microsoft.ClientSecret = secret
	}

	// Sync engine
	cfg.Sync.PageSize = viper.GetInt("sync.page_size")
	cfg.Sync.RateLimitPerMin = viper.GetInt("sync.rate_limit_per_min")

	// Admin
	cfg.Admin.APIKey = viper.GetString("admin.api_key")
	if key := viper.GetString("admin_api_key"); key != "" {
		cfg.Admin.APIKey = key
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Session.Secret == "" {
		return fmt.Errorf("session secret is required - set SESSION_SECRET or session.secret")
	}
	if cfg.Redis.URL == "" {
		return fmt.Errorf("redis url is required - set REDIS_URL or redis.url")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("redis.url", "redis://localhost:6379")
	viper.SetDefault("session.ttl_days", 7)
	viper.SetDefault("microsoft.tenant", "common")
	viper.SetDefault("sync.page_size", 50)
	viper.SetDefault("sync.rate_limit_per_min", 10)
}
