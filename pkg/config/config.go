package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	// SecretKey signs the session cookie that carries flash messages
	SecretKey string `envconfig:"SECRET_KEY" default:"dev-secret"`

	Server   ServerConfig     `envconfig:"SERVER"`
	Database DatabaseConfig   `envconfig:"DB"`
	Redis    RedisConfig      `envconfig:"REDIS"`
	Storage  StorageConfig    `envconfig:"STORAGE"`
	Upload   UploadConfig     `envconfig:"UPLOAD"`
	Flash    FlashConfig      `envconfig:"FLASH"`
	AI       AIConfig         `envconfig:"AI"`
	Gemini   GeminiConfig     `envconfig:"GEMINI"`
	Assembly AssemblyAIConfig `envconfig:"ASSEMBLYAI"`
	OpenAI   OpenAIConfig     `envconfig:"OPENAI"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string `envconfig:"PORT" default:"5000"`
	Host            string `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ShutdownTimeout int    `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string `envconfig:"DRIVER" default:"sqlite"` // "sqlite" or "postgres"
	Path     string `envconfig:"PATH" default:"meetings.db"`
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5432"`
	User     string `envconfig:"USER" default:"postgres"`
	Password string `envconfig:"PASSWORD" default:"postgres"`
	Name     string `envconfig:"NAME" default:"meeting_minutes"`
	SSLMode  string `envconfig:"SSLMODE" default:"disable"`
	MaxConns int    `envconfig:"MAX_CONNS" default:"25"`
	MinConns int    `envconfig:"MIN_CONNS" default:"5"`

	// ConnectRetries bounds the startup ping retries
	ConnectRetries uint64 `envconfig:"CONNECT_RETRIES" default:"5"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

// StorageConfig holds storage configuration for uploaded audio
type StorageConfig struct {
	Type            string `envconfig:"TYPE" default:"local"` // "local" or "minio"
	Endpoint        string `envconfig:"ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"BUCKET" default:"meeting-minutes"`
	UseSSL          bool   `envconfig:"USE_SSL" default:"false"`
}

// UploadConfig holds upload handling configuration
type UploadConfig struct {
	Dir               string   `envconfig:"DIR" default:"uploads"`
	AllowedExtensions []string `envconfig:"ALLOWED_EXTENSIONS" default:"mp3,wav,m4a,flac,ogg"`
}

// FlashConfig holds flash message storage configuration
type FlashConfig struct {
	Store string        `envconfig:"STORE" default:"memory"` // "memory" or "redis"
	TTL   time.Duration `envconfig:"TTL" default:"10m"`
}

// AIConfig selects the providers behind the AI gateway
type AIConfig struct {
	TranscriptionProvider string `envconfig:"TRANSCRIPTION_PROVIDER" default:"gemini"` // "gemini" or "assemblyai"
	SummaryProvider       string `envconfig:"SUMMARY_PROVIDER" default:"gemini"`       // "gemini" or "openai"
	MaxPoints             int    `envconfig:"MAX_POINTS" default:"6"`
}

// GeminiConfig holds Google Gemini configuration
type GeminiConfig struct {
	APIKey string `envconfig:"API_KEY"`
	Model  string `envconfig:"MODEL" default:"gemini-2.5-flash"`
}

// AssemblyAIConfig holds AssemblyAI configuration
type AssemblyAIConfig struct {
	APIKey string `envconfig:"API_KEY"`
}

// OpenAIConfig holds configuration for an OpenAI-compatible chat completions API
type OpenAIConfig struct {
	APIKey  string `envconfig:"API_KEY"`
	BaseURL string `envconfig:"BASE_URL" default:"https://api.groq.com/openai/v1"`
	Model   string `envconfig:"MODEL" default:"llama-3.1-70b-versatile"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	for i, ext := range cfg.Upload.AllowedExtensions {
		cfg.Upload.AllowedExtensions[i] = strings.ToLower(strings.TrimSpace(ext))
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("DB_DRIVER must be sqlite or postgres, got %q", c.Database.Driver)
	}
	switch c.Storage.Type {
	case "local", "minio":
	default:
		return fmt.Errorf("STORAGE_TYPE must be local or minio, got %q", c.Storage.Type)
	}
	switch c.Flash.Store {
	case "memory", "redis":
	default:
		return fmt.Errorf("FLASH_STORE must be memory or redis, got %q", c.Flash.Store)
	}
	switch c.AI.TranscriptionProvider {
	case "gemini", "assemblyai":
	default:
		return fmt.Errorf("AI_TRANSCRIPTION_PROVIDER must be gemini or assemblyai, got %q", c.AI.TranscriptionProvider)
	}
	switch c.AI.SummaryProvider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("AI_SUMMARY_PROVIDER must be gemini or openai, got %q", c.AI.SummaryProvider)
	}
	if c.AI.MaxPoints <= 0 {
		return fmt.Errorf("AI_MAX_POINTS must be positive")
	}
	if len(c.Upload.AllowedExtensions) == 0 {
		return fmt.Errorf("UPLOAD_ALLOWED_EXTENSIONS is required")
	}
	if c.Server.Environment == "production" && c.SecretKey == "dev-secret" {
		return fmt.Errorf("SECRET_KEY must be set in production")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetDatabaseDSN returns the database connection string for the configured driver
func (c *Config) GetDatabaseDSN() string {
	if c.Database.Driver == "sqlite" {
		return c.Database.Path
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
