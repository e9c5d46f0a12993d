package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	SendGrid   SendGridConfig   `mapstructure:"sendgrid"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Summarizer SummarizerConfig `mapstructure:"summarizer"`
	CORS       CORSConfig       `mapstructure:"cors"`
	Logger     LoggerConfig     `mapstructure:"logger"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	TrustedProxies string `mapstructure:"trusted_proxies"`
}

// DatabaseConfig holds database configuration. URL selects postgres when
// set; otherwise Path names the sqlite store file.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url"`
	Path            string        `mapstructure:"path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret    string        `mapstructure:"secret"`
	ExpiresIn time.Duration `mapstructure:"expires_in"`
	Issuer    string        `mapstructure:"issuer"`
}

// SendGridConfig holds outbound email configuration
type SendGridConfig struct {
	APIKey    string `mapstructure:"api_key"`
	FromEmail string `mapstructure:"from_email"`
	FromName  string `mapstructure:"from_name"`
}

// OpenAIConfig holds the embeddings/LLM provider configuration
type OpenAIConfig struct {
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	EmbeddingModel string `mapstructure:"embedding_model"`
}

// SummarizerConfig holds the per-user retrieval store configuration
type SummarizerConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// CORSConfig holds the allowed browser origins
type CORSConfig struct {
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from the environment, with an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors)
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &cfg, nil
}

// Default returns the built-in defaults without touching the environment.
// Used by tests.
func Default() *Config {
	return &Config{
		Server:     ServerConfig{Host: "0.0.0.0", Port: 8080, TrustedProxies: "127.0.0.1"},
		Database:   DatabaseConfig{Path: "data/app.db", MaxOpenConns: 100, MaxIdleConns: 10, ConnMaxLifetime: time.Hour},
		JWT:        JWTConfig{Secret: "test-secret", ExpiresIn: 24 * time.Hour, Issuer: "booksmart"},
		Summarizer: SummarizerConfig{DataDir: "data/vectors"},
		OpenAI:     OpenAIConfig{Model: "gpt-4", EmbeddingModel: "text-embedding-ada-002"},
		CORS:       CORSConfig{AllowedOrigins: "http://localhost:3000"},
		Logger:     LoggerConfig{Level: "info", Format: "console"},
	}
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.trusted_proxies", "127.0.0.1")

	viper.SetDefault("database.url", "")
	viper.SetDefault("database.path", "data/app.db")
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.conn_max_lifetime", time.Hour)

	viper.SetDefault("jwt.secret", "")
	viper.SetDefault("jwt.expires_in", 24*time.Hour)
	viper.SetDefault("jwt.issuer", "booksmart")

	viper.SetDefault("sendgrid.api_key", "")
	viper.SetDefault("sendgrid.from_email", "")
	viper.SetDefault("sendgrid.from_name", "BookSmart")

	viper.SetDefault("openai.api_key", "")
	viper.SetDefault("openai.model", "gpt-4")
	viper.SetDefault("openai.embedding_model", "text-embedding-ada-002")

	viper.SetDefault("summarizer.data_dir", "data/vectors")

	viper.SetDefault("cors.allowed_origins", "http://localhost:3000")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
}

// Addr returns the listen address for the HTTP server
func (cfg *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}

// Origins returns the configured CORS origins as a slice
func (cfg *CORSConfig) Origins() []string {
	parts := strings.Split(cfg.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
