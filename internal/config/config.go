package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// OpenAI
	OpenAIAPIKey      string
	OpenAIAPIBaseURL  string
	OpenAIImageModel  string
	OpenAIVisionModel string

	// Gemini
	GeminiAPIKey     string
	GeminiAPIBaseURL string
	GeminiImageModel string

	// Auth
	JWTSecret    string
	AdminUserIDs []string

	// Storage
	StorageProvider        string // "supabase" or "s3"
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseStorageBucket  string
	S3Bucket               string
	S3PublicBaseURL        string
	AWSRegion              string
	AWSEndpoint            string
	AWSAccessKeyID         string
	AWSSecretAccessKey     string

	// Database
	DatabaseDriver string // "postgres" or "sqlite"
	DatabaseURL    string

	// Generation rate limit per user
	GenerationRatePerMinute int
	GenerationBurst         int

	// Texture catalog assets served under /textures
	TextureAssetDir string

	// Server
	Port        string
	Environment string
	BaseURL     string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIAPIBaseURL:  getEnv("OPENAI_API_BASE_URL", "https://api.openai.com/v1/"),
		OpenAIImageModel:  getEnv("OPENAI_IMAGE_MODEL", "dall-e-3"),
		OpenAIVisionModel: getEnv("OPENAI_VISION_MODEL", "gpt-4.1"),

		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiAPIBaseURL: getEnv("GEMINI_API_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/"),
		GeminiImageModel: getEnv("GEMINI_IMAGE_MODEL", "gemini-2.0-flash-preview-image-generation"),

		JWTSecret:    getEnv("JWT_SECRET", ""),
		AdminUserIDs: splitList(getEnv("ADMIN_USER_IDS", "")),

		StorageProvider:        getEnv("STORAGE_PROVIDER", "supabase"),
		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "custom-orders"),
		S3Bucket:               getEnv("S3_BUCKET", ""),
		S3PublicBaseURL:        getEnv("S3_PUBLIC_BASE_URL", ""),
		AWSRegion:              getEnv("AWS_REGION", "ap-southeast-1"),
		AWSEndpoint:            getEnv("AWS_ENDPOINT", ""),
		AWSAccessKeyID:         getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:     getEnv("AWS_SECRET_ACCESS_KEY", ""),

		DatabaseDriver: getEnv("DATABASE_DRIVER", "postgres"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),

		GenerationRatePerMinute: getEnvInt("GENERATION_RATE_PER_MINUTE", 10),
		GenerationBurst:         getEnvInt("GENERATION_BURST", 3),

		TextureAssetDir: getEnv("TEXTURE_ASSET_DIR", ""),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	switch c.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("DATABASE_DRIVER must be postgres or sqlite, got %q", c.DatabaseDriver)
	}
	switch c.StorageProvider {
	case "supabase":
		if c.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL is required")
		}
		if c.SupabasePublishableKey == "" {
			return fmt.Errorf("SUPABASE_PUBLISHABLE_KEY is required")
		}
	case "s3":
		if c.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required")
		}
	default:
		return fmt.Errorf("STORAGE_PROVIDER must be supabase or s3, got %q", c.StorageProvider)
	}
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.GenerationRatePerMinute <= 0 || c.GenerationBurst <= 0 {
		return fmt.Errorf("GENERATION_RATE_PER_MINUTE and GENERATION_BURST must be positive")
	}
	return nil
}

// IsAdmin reports whether userID is listed in ADMIN_USER_IDS.
func (c *Config) IsAdmin(userID string) bool {
	for _, id := range c.AdminUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
