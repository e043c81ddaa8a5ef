package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	LexiconWordNet = "wordnet"
	LexiconSQL     = "sql"
	LexiconYAML    = "yaml"
)

type Env struct {
	AppPort string
	AppEnv  string

	LexiconSource    string
	WordNetDir       string
	LexiconSQLDriver string
	LexiconSQLDSN    string
	LexiconYAMLPath  string

	RedisAddress       string
	RedisPassword      string
	RedisDB            int
	TranscriptTTL      time.Duration
	TranscriptMaxTurns int

	RateLimitRPS   float64
	RateLimitBurst int
}

// LoadEnv reads the process environment. Unset values fall back to their
// defaults; malformed ones are an error.
func LoadEnv() (*Env, error) {
	env := &Env{
		AppPort:          getEnv("APP_PORT", "3000"),
		AppEnv:           getEnv("APP_ENV", "development"),
		LexiconSource:    os.Getenv("LEXICON_SOURCE"),
		WordNetDir:       os.Getenv("WORDNET_DIR"),
		LexiconSQLDriver: getEnv("LEXICON_SQL_DRIVER", "postgres"),
		LexiconSQLDSN:    os.Getenv("LEXICON_SQL_DSN"),
		LexiconYAMLPath:  os.Getenv("LEXICON_YAML_PATH"),
		RedisAddress:     os.Getenv("REDIS_ADDRESS"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
	}

	var err error
	if env.RedisDB, err = intEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if env.TranscriptTTL, err = durationEnv("TRANSCRIPT_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if env.TranscriptMaxTurns, err = intEnv("TRANSCRIPT_MAX_TURNS", 200); err != nil {
		return nil, err
	}
	if env.RateLimitRPS, err = floatEnv("RATE_LIMIT_RPS", 50); err != nil {
		return nil, err
	}
	if env.RateLimitBurst, err = intEnv("RATE_LIMIT_BURST", 100); err != nil {
		return nil, err
	}

	return env, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
