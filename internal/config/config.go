package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/ytbili/subpipe/internal/llm"
	"github.com/ytbili/subpipe/internal/subtitle"
	"github.com/ytbili/subpipe/internal/translator"
)

// Config holds all application configuration.
// Supports environment variables with sensible defaults.
//
// Environment Variables:
// LLM Configuration (see internal/llm):
// - LLM_API_KEY: API key for the LLM provider (required for translation)
// - LLM_API_URL: API endpoint URL (default: https://openrouter.ai/api/v1)
// - LLM_MODEL: Model name to use (default: openai/gpt-4o-mini)
// - LLM_MAX_TOKENS: Maximum tokens for responses (default: 16384)
// - LLM_TEMPERATURE: Temperature for responses (default: 0.3)
// - LLM_TIMEOUT: Request timeout in seconds (default: 120)
//
// Pipeline Configuration:
// - SUBPIPE_FPS: Frame rate used for overlap repair (default: 60)
// - SUBPIPE_BATCH_SIZE: Captions per translation batch (default: 10)
// - SUBPIPE_MAX_ATTEMPTS: Retry attempts per batch (default: 5)
// - SUBPIPE_SOURCE_LANG: Source language name for the prompt (default: English)
// - SUBPIPE_TARGET_LANG: Target language name for the prompt (default: Chinese)
//
// Render Configuration:
// - SUBPIPE_PRIMARY_FONT_SIZE: CJK font size in ASS output (default: 20)
// - SUBPIPE_SECONDARY_FONT_SIZE: Latin font size in ASS output (default: 16)
//
// Watch Configuration:
// - SUBPIPE_WATCH_DIRS: Comma-separated directories to scan (default: /media)
// - SUBPIPE_CRON_EXPR: Scan schedule (default: "*/10 * * * *")
// - SUBPIPE_DB_PATH: History database path (default: subpipe.db)

type Config struct {
	LLM      llm.Config     `json:"llm"`
	Pipeline PipelineConfig `json:"pipeline"`
	Render   RenderConfig   `json:"render"`
	Watch    WatchConfig    `json:"watch"`
}

// PipelineConfig holds the knobs of the transformation pipeline itself.
type PipelineConfig struct {
	FPS            float64      `json:"fps"`
	BatchSize      int          `json:"batch_size"`
	MaxAttempts    int          `json:"max_attempts"`
	SourceLanguage string       `json:"source_language"`
	TargetLanguage string       `json:"target_language"`
	TargetTag      language.Tag `json:"target_tag"`
}

// RenderConfig holds the ASS presentation settings.
type RenderConfig struct {
	PrimaryFontSize   int `json:"primary_font_size"`
	SecondaryFontSize int `json:"secondary_font_size"`
}

// WatchConfig holds the scheduled directory scan settings.
type WatchConfig struct {
	Dirs     []string `json:"dirs"`
	CronExpr string   `json:"cron_expr"`
	DBPath   string   `json:"db_path"`
}

// Option is a function type for configuring Config
type Option func(*Config)

// NewFromEnv creates a new Config instance with values from environment
// variables and options.
func NewFromEnv(opts ...Option) (*Config, error) {
	config := &Config{
		LLM: llm.NewConfigFromEnv(),
		Pipeline: PipelineConfig{
			FPS:            getEnvFloat("SUBPIPE_FPS", subtitle.DefaultFPS),
			BatchSize:      getEnvInt("SUBPIPE_BATCH_SIZE", translator.DefaultBatchSize),
			MaxAttempts:    getEnvInt("SUBPIPE_MAX_ATTEMPTS", translator.DefaultMaxAttempts),
			SourceLanguage: getEnvString("SUBPIPE_SOURCE_LANG", "English"),
			TargetLanguage: getEnvString("SUBPIPE_TARGET_LANG", "Chinese"),
			TargetTag:      language.Chinese,
		},
		Render: RenderConfig{
			PrimaryFontSize:   getEnvInt("SUBPIPE_PRIMARY_FONT_SIZE", 20),
			SecondaryFontSize: getEnvInt("SUBPIPE_SECONDARY_FONT_SIZE", 16),
		},
		Watch: WatchConfig{
			Dirs:     getEnvList("SUBPIPE_WATCH_DIRS", []string{"/media"}),
			CronExpr: getEnvString("SUBPIPE_CRON_EXPR", "*/10 * * * *"),
			DBPath:   getEnvString("SUBPIPE_DB_PATH", "subpipe.db"),
		},
	}

	// Apply custom options
	for _, opt := range opts {
		opt(config)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate checks the values translation does not tolerate being wrong.
// The LLM key is checked lazily by the client so offline commands (fix,
// merge, bilingual, ass) work without one.
func (c *Config) validate() error {
	if c.Pipeline.FPS <= 0 {
		return fmt.Errorf("SUBPIPE_FPS must be positive, got %v", c.Pipeline.FPS)
	}
	if c.Pipeline.BatchSize < 1 {
		return fmt.Errorf("SUBPIPE_BATCH_SIZE must be at least 1, got %d", c.Pipeline.BatchSize)
	}
	if c.Pipeline.MaxAttempts < 1 {
		return fmt.Errorf("SUBPIPE_MAX_ATTEMPTS must be at least 1, got %d", c.Pipeline.MaxAttempts)
	}
	return nil
}

// getEnvString gets a string value from environment variables with default
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment variables with default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat gets a float value from environment variables with default
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvList gets a comma-separated list from environment variables
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	ret := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ret = append(ret, p)
		}
	}
	if len(ret) == 0 {
		return defaultValue
	}
	return ret
}
