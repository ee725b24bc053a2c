package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/jyotish/internal/logging"
)

// Config holds environment-based settings
type Config struct {
	Environment   string
	ServerAddress string
	FrontendURL   string

	EphemerisURL     string
	EphemerisTimeout time.Duration

	GeocoderURL       string
	GeocoderUserAgent string
	GeocoderTimeout   time.Duration

	RedisAddress  string
	RedisUsername string
	RedisPassword string
	CacheTTL      time.Duration

	AdvisorAPIKey  string
	AdvisorModel   string
	AdvisorBaseURL string
	MaxQuestions   int

	Logging logging.Config
}

// CacheEnabled reports whether a redis address was configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisAddress != ""
}

// AdvisorEnabled reports whether the advisory service can be reached.
func (c *Config) AdvisorEnabled() bool {
	return c.AdvisorAPIKey != ""
}

// LoadDotEnv seeds the environment from the given files (".env" when none),
// ignoring files that do not exist. Variables already set win.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			log.Warn().Err(err).Str("file", f).Msg("failed to load env file")
		}
	}
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	ephemerisURL := os.Getenv("EPHEMERIS_URL")
	if ephemerisURL == "" {
		return nil, fmt.Errorf("EPHEMERIS_URL is required")
	}

	cfg := &Config{
		Environment:       getenv("APP_ENV", "development"),
		ServerAddress:     getenv("SERVER_ADDRESS", ":8000"),
		FrontendURL:       getenv("FRONTEND_URL", "http://localhost:3000"),
		EphemerisURL:      ephemerisURL,
		GeocoderURL:       getenv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
		GeocoderUserAgent: getenv("GEOCODER_USER_AGENT", "vedic_astro_secure"),
		RedisAddress:      os.Getenv("REDIS_ADDRESS"),
		RedisUsername:     os.Getenv("REDIS_USERNAME"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		AdvisorAPIKey:     os.Getenv("ADVISOR_API_KEY"),
		AdvisorModel:      getenv("ADVISOR_MODEL", "gemini-1.5-flash"),
		AdvisorBaseURL:    getenv("ADVISOR_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),
		Logging:           logging.DefaultConfig(),
	}
	cfg.Logging.Level = getenv("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getenv("LOG_FORMAT", cfg.Logging.Format)
	cfg.Logging.FilePath = os.Getenv("LOG_FILE")

	var err error
	if cfg.EphemerisTimeout, err = durationEnv("EPHEMERIS_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.GeocoderTimeout, err = durationEnv("GEOCODER_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = durationEnv("CACHE_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.MaxQuestions, err = intEnv("MAX_QUESTIONS", 3); err != nil {
		return nil, err
	}
	if cfg.MaxQuestions < 0 {
		return nil, fmt.Errorf("MAX_QUESTIONS must not be negative")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, v, err)
	}
	return d, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q: %w", key, v, err)
	}
	return n, nil
}
