package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

var Cfg *AppConfig

type AppConfig struct {
	Dev      bool           `yaml:"dev"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    Redis          `yaml:"redis"`
	Auth     AuthConfig     `yaml:"auth"`
	Webhook  WebhookConfig  `yaml:"webhook"`
	Cache    CacheConfig    `yaml:"cache"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CorsOrigins []string `yaml:"cors_origins"`
}

type DatabaseConfig struct {
	Driver          string `yaml:"driver"` // mysql or sqlite
	DataSourceName  string `yaml:"data_source_name"`
	MaxIdleCount    int    `yaml:"max_idle_count"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

type Redis struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
}

type AuthConfig struct {
	SessionTTLHours int    `yaml:"session_ttl_hours"`
	AdminJwtSecret  string `yaml:"admin_jwt_secret"`
}

type WebhookConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
	MaxAttempts    int `yaml:"max_attempts"`
}

type CacheConfig struct {
	TTLHours int `yaml:"ttl_hours"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Output string `yaml:"output"`
}

// MustLoad reads the yaml config and populates the package global. The path
// defaults to ./config.yml when empty.
func MustLoad(path string) {
	if path == "" {
		path = "config.yml"
	}

	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("Error opening config file: %v", err)
	}
	defer func() {
		err := file.Close()
		if err != nil {
			log.Printf("Error close config file: %v", err)
		}
	}()

	Cfg = &AppConfig{}
	if err := yaml.NewDecoder(file).Decode(Cfg); err != nil {
		log.Fatalf("Error decoding config file: %v", err)
	}

	applyDefaults(Cfg)
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":3001"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "mysql"
	}
	if cfg.Auth.SessionTTLHours <= 0 {
		cfg.Auth.SessionTTLHours = 24 * 7
	}
	if cfg.Webhook.TimeoutSeconds <= 0 {
		cfg.Webhook.TimeoutSeconds = 10
	}
	if cfg.Webhook.MaxAttempts <= 0 {
		cfg.Webhook.MaxAttempts = 3
	}
	if cfg.Cache.TTLHours <= 0 {
		cfg.Cache.TTLHours = 24 * 30
	}
}
