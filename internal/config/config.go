package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultMaxFileSize = 5 * 1024 * 1024

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Qdrant   QdrantConfig
	Gemini   GeminiConfig
	Tika     TikaConfig
	Storage  StorageConfig
	Scoring  ScoringConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type QdrantConfig struct {
	URL        string
	APIKey     string
	Collection string
	VectorSize uint64
}

type GeminiConfig struct {
	APIKey     string
	Model      string
	EmbedModel string
	MaxRetries int
}

type TikaConfig struct {
	URL     string
	Timeout time.Duration
}

// StorageConfig bounds uploads. Files are read into memory and never written.
type StorageConfig struct {
	MaxFileSize int64
}

type ScoringConfig struct {
	TipsEnabled  bool
	MaxChunkSize int
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

// Load reads .env.local and .env (if present) and then the process
// environment. Missing variables fall back to defaults.
func Load() (*Config, error) {
	// Both files are optional.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Enabled:  getEnvAsBool("DB_ENABLED", false),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "jobfluence"),
		},
		Qdrant: QdrantConfig{
			URL:        getEnv("QDRANT_URL", ""),
			APIKey:     getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "jobfluence_job_embeddings"),
			VectorSize: uint64(getEnvAsInt64("QDRANT_VECTOR_SIZE", 768)),
		},
		Gemini: GeminiConfig{
			APIKey:     getEnv("GEMINI_API_KEY", ""),
			Model:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			EmbedModel: getEnv("GEMINI_EMBED_MODEL", "text-embedding-004"),
			MaxRetries: getEnvAsInt("GEMINI_MAX_RETRIES", 3),
		},
		Tika: TikaConfig{
			URL:     getEnv("TIKA_URL", "http://localhost:9998"),
			Timeout: getEnvAsDuration("TIKA_TIMEOUT", "30s"),
		},
		Storage: StorageConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", defaultMaxFileSize),
		},
		Scoring: ScoringConfig{
			TipsEnabled:  getEnvAsBool("TIPS_ENABLED", false),
			MaxChunkSize: getEnvAsInt("EMBED_MAX_CHUNK_SIZE", 8000),
		},
		Log: LogConfig{
			JSON:  getEnvAsBool("LOG_JSON", false),
			Debug: getEnvAsBool("LOG_DEBUG", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	if c.Storage.MaxFileSize <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive, got %d", c.Storage.MaxFileSize)
	}
	if c.Scoring.MaxChunkSize <= 0 {
		return fmt.Errorf("EMBED_MAX_CHUNK_SIZE must be positive, got %d", c.Scoring.MaxChunkSize)
	}
	if c.Tika.Timeout <= 0 {
		return fmt.Errorf("TIKA_TIMEOUT must be positive, got %s", c.Tika.Timeout)
	}
	if c.Qdrant.URL != "" && c.Qdrant.VectorSize == 0 {
		return fmt.Errorf("QDRANT_VECTOR_SIZE must be positive when QDRANT_URL is set")
	}
	return nil
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

// MaxFileSizeLabel renders the upload limit for client-facing messages, e.g. "5MB".
func (s StorageConfig) MaxFileSizeLabel() string {
	const mb = 1024 * 1024
	if s.MaxFileSize%mb == 0 {
		return fmt.Sprintf("%dMB", s.MaxFileSize/mb)
	}
	return fmt.Sprintf("%d bytes", s.MaxFileSize)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := strings.TrimSpace(getEnv(key, ""))
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
