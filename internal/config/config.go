package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	LogFormat         string        `mapstructure:"log_format" yaml:"log_format"` // console or json

	// WebSocket
	MaxMessageBytes int64         `mapstructure:"max_message_bytes" yaml:"max_message_bytes"`
	PingInterval    time.Duration `mapstructure:"ping_interval" yaml:"ping_interval"`
	ClientBuffer    int           `mapstructure:"client_buffer" yaml:"client_buffer"`
	RateLimit       float64       `mapstructure:"rate_limit" yaml:"rate_limit"` // events per second, 0 disables
	RateBurst       int           `mapstructure:"rate_burst" yaml:"rate_burst"`

	// Identity
	JWTSecret   string `mapstructure:"jwt_secret" yaml:"jwt_secret"`
	JWTIssuer   string `mapstructure:"jwt_issuer" yaml:"jwt_issuer"`
	JWTAudience string `mapstructure:"jwt_audience" yaml:"jwt_audience"`
	JWTRequired bool   `mapstructure:"jwt_required" yaml:"jwt_required"`

	MetricsEnabled bool `mapstructure:"metrics_enabled" yaml:"metrics_enabled"`

	// Assistant data; empty paths select the built-in tables.
	CorpusPath  string `mapstructure:"corpus_path" yaml:"corpus_path"`
	LexiconPath string `mapstructure:"lexicon_path" yaml:"lexicon_path"`
	RepliesPath string `mapstructure:"replies_path" yaml:"replies_path"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		LogFormat:         "console",
		MaxMessageBytes:   64 << 10,
		PingInterval:      30 * time.Second,
		ClientBuffer:      32,
		RateLimit:         20,
		RateBurst:         40,
		MetricsEnabled:    true,
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.ReadHeaderTimeout != 0 {
		c.ReadHeaderTimeout = other.ReadHeaderTimeout
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.LogFormat != "" {
		c.LogFormat = other.LogFormat
	}
	if other.MaxMessageBytes != 0 {
		c.MaxMessageBytes = other.MaxMessageBytes
	}
	if other.PingInterval != 0 {
		c.PingInterval = other.PingInterval
	}
	if other.ClientBuffer != 0 {
		c.ClientBuffer = other.ClientBuffer
	}
	if other.RateLimit != 0 {
		c.RateLimit = other.RateLimit
	}
	if other.RateBurst != 0 {
		c.RateBurst = other.RateBurst
	}
	if other.JWTSecret != "" {
		c.JWTSecret = other.JWTSecret
	}
	if other.JWTIssuer != "" {
		c.JWTIssuer = other.JWTIssuer
	}
	if other.JWTAudience != "" {
		c.JWTAudience = other.JWTAudience
	}
	if other.JWTRequired {
		c.JWTRequired = true
	}
	if other.CorpusPath != "" {
		c.CorpusPath = other.CorpusPath
	}
	if other.LexiconPath != "" {
		c.LexiconPath = other.LexiconPath
	}
	if other.RepliesPath != "" {
		c.RepliesPath = other.RepliesPath
	}
}
