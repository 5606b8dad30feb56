package config

import (
	"fmt"
	"log"
	"os"
	"time"
)

// App holds the runtime configuration loaded from environment variables.
type App struct {
	Env             string
	HTTPPort        string
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPort          string
	DBSSLMode       string
	RedisAddr       string
	KafkaBroker     string
	JWTSecret       string
	Timezone        string
	GeocodeBaseURL  string
	GeocodeTimeout  time.Duration
	AssistantURL    string
	AssistantAPIKey string
	AssistantModel  string
	RateLimitPerSec int
}

// Load returns application config populated from environment variables with sensible defaults.
func Load() App {
	return App{
		Env:             getEnv("APP_ENV", "dev"),
		HTTPPort:        getEnv("PORT", "3000"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBUser:          getEnv("DB_USER", "presensi"),
		DBPassword:      getEnv("DB_PASSWORD", "presensi"),
		DBName:          getEnv("DB_NAME", "presensi"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:     getEnv("KAFKA_BROKER", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		Timezone:        getEnv("APP_TIMEZONE", "Asia/Jakarta"),
		GeocodeBaseURL:  getEnv("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeocodeTimeout:  durationEnv("GEOCODE_TIMEOUT", 3*time.Second),
		AssistantURL:    getEnv("ASSISTANT_BASE_URL", ""),
		AssistantAPIKey: getEnv("ASSISTANT_API_KEY", ""),
		AssistantModel:  getEnv("ASSISTANT_MODEL", "gemini-3-flash-preview"),
		RateLimitPerSec: intEnv("RATE_LIMIT_PER_SEC", 10),
	}
}

// Location resolves the configured timezone, falling back to UTC when invalid.
func (a App) Location() *time.Location {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		log.Printf("invalid timezone %q, falling back to UTC: %v", a.Timezone, err)
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using fallback %s", key, err, fallback)
			return fallback
		}
		return d
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var parsed int
		if _, err := fmt.Sscanf(val, "%d", &parsed); err == nil {
			return parsed
		}
		log.Printf("invalid int for %s, using fallback %d", key, fallback)
	}
	return fallback
}
