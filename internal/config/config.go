package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Stream    StreamConfig
}

type AppConfig struct {
	Name        string
	Description string
	Version     string
}

type ServerConfig struct {
	Port          string
	ProjectsPort  string // cmd/projects only
	Host          string
	Environment   string
	ReadTimeout   time.Duration
	HealthTimeout time.Duration
}

type MongoDBConfig struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// RateLimitConfig controls the optional global limiter. UseRedis selects the
// fixed-window Redis limiter when a Redis host is configured.
type RateLimitConfig struct {
	Enabled       bool
	UseRedis      bool
	RPS           float64
	Burst         int
	WindowSeconds int
}

type StreamConfig struct {
	Delay time.Duration
}

// LoadConfig loads configuration from environment variables and .env file.
// An empty MONGODB_URI is allowed: callers fall back to the in-memory store.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "demo-service")
	v.SetDefault("APP_DESCRIPTION", "Reactive projects resource and word-count demo")
	v.SetDefault("APP_VERSION", "0.1.0")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("PROJECTS_SERVICE_PORT", "5010")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_ENVIRONMENT", "development")
	v.SetDefault("HEALTH_TIMEOUT_MS", 2000)
	v.SetDefault("MONGODB_DATABASE", "demo")
	v.SetDefault("MONGODB_COLLECTION", "project")
	v.SetDefault("MONGODB_TIMEOUT", 10)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RATE_LIMIT_ENABLED", false)
	v.SetDefault("RATE_LIMIT_USE_REDIS", false)
	v.SetDefault("RATE_LIMIT_RPS", 50.0)
	v.SetDefault("RATE_LIMIT_BURST", 100)
	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)
	v.SetDefault("STREAM_DELAY_MS", 1000)

	cfg := &Config{
		App: AppConfig{
			Name:        v.GetString("APP_NAME"),
			Description: v.GetString("APP_DESCRIPTION"),
			Version:     v.GetString("APP_VERSION"),
		},
		Server: ServerConfig{
			Port:          v.GetString("SERVER_PORT"),
			ProjectsPort:  v.GetString("PROJECTS_SERVICE_PORT"),
			Host:          v.GetString("SERVER_HOST"),
			Environment:   v.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:   30 * time.Second,
			HealthTimeout: time.Duration(v.GetInt("HEALTH_TIMEOUT_MS")) * time.Millisecond,
		},
		MongoDB: MongoDBConfig{
			URI:        v.GetString("MONGODB_URI"),
			Database:   v.GetString("MONGODB_DATABASE"),
			Collection: v.GetString("MONGODB_COLLECTION"),
			Timeout:    time.Duration(v.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       v.GetBool("RATE_LIMIT_ENABLED"),
			UseRedis:      v.GetBool("RATE_LIMIT_USE_REDIS"),
			RPS:           v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         v.GetInt("RATE_LIMIT_BURST"),
			WindowSeconds: v.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		Stream: StreamConfig{
			Delay: time.Duration(v.GetInt("STREAM_DELAY_MS")) * time.Millisecond,
		},
	}
	return cfg, nil
}

// Addr is the listen address host:port.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}
