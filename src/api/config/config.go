package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	Provider  string
	Model     string
	GeminiKey string
	OpenAIKey string

	MySQLDSN  string
	RedisURL  string
	JWTSecret string

	RateLimit  int
	RateWindow time.Duration
	CacheTTL   time.Duration

	StaticDir   string
	CORSOrigins []string
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return d
}

// Load reads configuration from the environment, merging an optional
// .env file first. Storage and cache are off unless their endpoints are
// configured.
func Load() Config {
	_ = godotenv.Load()

	var origins []string
	for _, o := range strings.Split(getenv("CORS_ORIGINS", "http://localhost:3000"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Config{
		Port:        getenv("PORT", "8080"),
		Env:         getenv("APP_ENV", "development"),
		Provider:    getenv("AI_PROVIDER", "gemini"),
		Model:       os.Getenv("AI_MODEL"),
		GeminiKey:   os.Getenv("GEMINI_API_KEY"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		MySQLDSN:    os.Getenv("MYSQL_DSN"),
		RedisURL:    os.Getenv("REDIS_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		RateLimit:   getenvInt("RATE_LIMIT", 30),
		RateWindow:  getenvDuration("RATE_WINDOW", time.Minute),
		CacheTTL:    getenvDuration("CACHE_TTL", 15*time.Minute),
		StaticDir:   os.Getenv("STATIC_DIR"),
		CORSOrigins: origins,
	}
}

// IsProduction gates whether raw upstream error text may leak into
// responses.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}
