package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type LLMConfig struct {
	Enabled      bool
	Provider     string
	APIKey       string
	Model        string
	VisionModel  string
	BaseURL      string
	MaxTokens    int
	Temperature  float32
	Timeout      time.Duration
	RetryBackoff time.Duration
}

type Config struct {
	Port               string
	LogLevel           string
	CORSOrigins        []string
	RateLimitPerMinute int
	UnsplashAccessKey  string
	PostgresURL        string
	HeroImageTTL       time.Duration
	LLM                LLMConfig
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	provider := strings.ToLower(getEnvWithDefault("LLM_PROVIDER", "openai"))
	llm := LLMConfig{
		Enabled:      getBool("OPENAI_USE_GPT", true),
		Provider:     provider,
		BaseURL:      os.Getenv("OPENAI_BASE_URL"),
		MaxTokens:    getInt("OPENAI_MAX_COMPLETION_TOKENS", 2000),
		Temperature:  float32(getFloat("OPENAI_TEMPERATURE", 0.4)),
		Timeout:      time.Duration(getInt("OPENAI_GPT_TIMEOUT_MS", 25000)) * time.Millisecond,
		RetryBackoff: time.Duration(getInt("LLM_RETRY_BACKOFF_MS", 1000)) * time.Millisecond,
	}

	switch provider {
	case "openai":
		llm.APIKey = os.Getenv("OPENAI_API_KEY")
		llm.Model = getEnvWithDefault("OPENAI_MODEL", "gpt-4-turbo")
		llm.VisionModel = getEnvWithDefault("OPENAI_VISION_MODEL", "gpt-4o-mini")
	case "gemini":
		llm.APIKey = os.Getenv("GEMINI_API_KEY")
		llm.Model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		llm.VisionModel = getEnvWithDefault("GEMINI_VISION_MODEL", llm.Model)
	default:
		return Config{}, fmt.Errorf("unsupported LLM provider: %s. Use 'openai' or 'gemini'", provider)
	}
	if llm.Enabled && llm.APIKey == "" {
		return Config{}, fmt.Errorf("%s API key is required when OPENAI_USE_GPT is true", provider)
	}

	ttl, err := time.ParseDuration(getEnvWithDefault("HERO_IMAGE_CACHE_TTL", "24h"))
	if err != nil || ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return Config{
		Port:               getEnvWithDefault("PORT", "3001"),
		LogLevel:           getEnvWithDefault("LOG_LEVEL", "info"),
		CORSOrigins:        getList("CORS_ORIGIN", "*"),
		RateLimitPerMinute: getInt("API_RATE_LIMIT", 10),
		UnsplashAccessKey:  os.Getenv("UNSPLASH_ACCESS_KEY"),
		PostgresURL:        os.Getenv("POSTGRES_URL"),
		HeroImageTTL:       ttl,
		LLM:                llm,
	}, nil
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnvWithDefault(key, ""))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func getFloat(key string, defaultValue float64) float64 {
	f, err := strconv.ParseFloat(getEnvWithDefault(key, ""), 64)
	if err != nil || f < 0 {
		return defaultValue
	}
	return f
}

func getBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(getEnvWithDefault(key, ""))
	if err != nil {
		return defaultValue
	}
	return b
}

// getList splits a comma separated value, dropping empty items.
func getList(key, defaultValue string) []string {
	var out []string
	for _, item := range strings.Split(getEnvWithDefault(key, defaultValue), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return []string{defaultValue}
	}
	return out
}
