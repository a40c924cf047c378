package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once at startup and passed to the components that need
// it. Nothing mutates it after Load returns.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   []byte
	AdminAPIKey string

	Razorpay RazorpayConfig
	Redis    RedisConfig
	Media    MediaConfig

	CORSOrigins []string
}

// RazorpayConfig carries the gateway credentials and the minimum charge
// accepted by the gateway, in paise.
type RazorpayConfig struct {
	KeyID          string
	KeySecret      string
	APIURL         string
	MinAmountPaise int64
	Timeout        time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// GuestCartTTL bounds how long an abandoned guest cart survives.
	GuestCartTTL time.Duration
}

type MediaConfig struct {
	Root string // filesystem directory for uploaded images
	URL  string // public path prefix the images are served under
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=kanishop port=5432 sslmode=disable"),
		JWTSecret:   []byte(os.Getenv("JWT_SECRET")),
		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),
		Razorpay: RazorpayConfig{
			KeyID:          os.Getenv("RAZORPAY_KEY_ID"),
			KeySecret:      os.Getenv("RAZORPAY_KEY_SECRET"),
			APIURL:         getEnv("RAZORPAY_API_URL", "https://api.razorpay.com"),
			MinAmountPaise: getEnvInt64("RAZORPAY_MIN_AMOUNT_PAISE", 100),
			Timeout:        getEnvDuration("RAZORPAY_TIMEOUT", 15*time.Second),
		},
		Redis: RedisConfig{
			Addr:         getEnv("REDIS_ADDR", "localhost:6379"),
			Password:     os.Getenv("REDIS_PASSWORD"),
			DB:           int(getEnvInt64("REDIS_DB", 0)),
			GuestCartTTL: getEnvDuration("GUEST_CART_TTL", 72*time.Hour),
		},
		Media: MediaConfig{
			Root: getEnv("MEDIA_ROOT", "./media"),
			URL:  getEnv("MEDIA_URL", "/media"),
		},
		CORSOrigins: []string{getEnv("CORS_ORIGIN", "*")},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
