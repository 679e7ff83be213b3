package config

import (
	"time"

	"github.com/akhilkushwaha/portfolio-backend/internal/logger"
)

// Config is the root configuration tree loaded from config.yaml plus the
// APP_-prefixed environment overlay.
type Config struct {
	App      AppConfig           `mapstructure:"app"`
	Logger   logger.LoggerConfig `mapstructure:"logger"`
	Mongo    MongoConfig         `mapstructure:"mongo"`
	LeetCode LeetCodeConfig      `mapstructure:"leetcode"`
}

// AppConfig holds process-level settings.
type AppConfig struct {
	Name      string `mapstructure:"name"`
	Version   string `mapstructure:"version"`
	Env       string `mapstructure:"env" validate:"oneof=dev staging prod"`
	Port      int    `mapstructure:"port" validate:"gt=0,lte=65535"`
	StaticDir string `mapstructure:"static_dir"`
}

// MongoConfig holds connection settings for the contact store.
// URI is typically supplied via the MONGO_URI environment variable.
type MongoConfig struct {
	URI            string `mapstructure:"uri" validate:"required"`
	Database       string `mapstructure:"database" validate:"required"`
	MaxPoolSize    uint64 `mapstructure:"max_pool_size"`
	ConnectTimeout int    `mapstructure:"connect_timeout"` // seconds
}

// LeetCodeConfig holds the upstream GraphQL endpoint and the aggregation
// policy. The target username is a server-side value, never client-supplied.
type LeetCodeConfig struct {
	Endpoint string `mapstructure:"endpoint" validate:"required,url"`
	Username string `mapstructure:"username" validate:"required"`
	Attempts int    `mapstructure:"attempts" validate:"gte=1"`
	// RetryDelay is the fixed inter-attempt pause. No backoff, no jitter.
	RetryDelay time.Duration `mapstructure:"retry_delay"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

func (c *Config) setDefaults() {
	if c.App.Name == "" {
		c.App.Name = "portfolio-backend"
	}
	if c.App.Version == "" {
		c.App.Version = "0.1.0"
	}
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.App.Port == 0 {
		c.App.Port = 3001
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = "portfolio"
	}
	if c.Mongo.MaxPoolSize == 0 {
		c.Mongo.MaxPoolSize = 10
	}
	if c.Mongo.ConnectTimeout == 0 {
		c.Mongo.ConnectTimeout = 10
	}
	if c.LeetCode.Endpoint == "" {
		c.LeetCode.Endpoint = "https://leetcode.com/graphql"
	}
	if c.LeetCode.Attempts == 0 {
		c.LeetCode.Attempts = 3
	}
	if c.LeetCode.RetryDelay == 0 {
		c.LeetCode.RetryDelay = time.Second
	}
	if c.LeetCode.Timeout == 0 {
		c.LeetCode.Timeout = 10 * time.Second
	}
}
