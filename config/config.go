package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Session store backends.
const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// DatabaseConfig locates the Postgres session store.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// RedisConfig locates the Redis server used for sessions and catalogue caching.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type Config struct {
	Server struct {
		Host string `mapstructure:"host"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Backend struct {
		BaseURL string        `mapstructure:"base_url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"backend"`
	Session struct {
		Store          string `mapstructure:"store"`
		FilePath       string `mapstructure:"file_path"`
		TokenKey       string `mapstructure:"token_key"`
		PermissionsKey string `mapstructure:"permissions_key"`
		RedisPrefix    string `mapstructure:"redis_prefix"`
	} `mapstructure:"session"`
	Auth struct {
		LoginRoute  string   `mapstructure:"login_route"`
		ExemptPaths []string `mapstructure:"exempt_paths"`
	} `mapstructure:"auth"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "3000")
	v.SetDefault("backend.base_url", "http://127.0.0.1:8080")
	v.SetDefault("backend.timeout", 15*time.Second)
	v.SetDefault("session.store", StoreFile)
	v.SetDefault("session.file_path", DefaultSessionFilePath())
	v.SetDefault("session.token_key", "@ged-apae-token")
	v.SetDefault("session.permissions_key", "@ged-apae-permissions")
	v.SetDefault("session.redis_prefix", "ged-apae:session:")
	v.SetDefault("auth.login_route", "/entrar")
	v.SetDefault("auth.exempt_paths", []string{"/user/login"})
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")
}

// ListenAddr is the address the console listens on. The default host keeps
// it reachable from the operator's machine only.
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}

// CacheEnabled reports whether a Redis server is configured for catalogue caching.
func (c *Config) CacheEnabled() bool {
	return c.Redis.Host != ""
}

// LoadConfig reads config.yml from path, overlaid with environment variables
// (SESSION_STORE, BACKEND_BASE_URL, ...). A missing config file is not an error;
// the defaults and the environment are enough to run the console.
func LoadConfig(path string) error {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	AppConfig = cfg
	return nil
}

// Validate rejects settings the console cannot start with.
func (c *Config) Validate() error {
	switch c.Session.Store {
	case StoreMemory, StoreFile, StoreRedis, StorePostgres:
	default:
		return fmt.Errorf("unknown session store %q", c.Session.Store)
	}
	if c.Backend.BaseURL == "" {
		return errors.New("backend.base_url is required")
	}
	if c.Session.TokenKey == "" || c.Session.PermissionsKey == "" {
		return errors.New("session keys must not be empty")
	}
	if c.Session.TokenKey == c.Session.PermissionsKey {
		return errors.New("session.token_key and session.permissions_key must differ")
	}
	if c.Session.Store == StorePostgres && c.Database.Host == "" {
		return errors.New("database.host is required for the postgres session store")
	}
	if c.Session.Store == StoreRedis && c.Redis.Host == "" {
		return errors.New("redis.host is required for the redis session store")
	}
	return nil
}
