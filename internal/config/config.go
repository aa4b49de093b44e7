package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Port int

	// document store
	MongoURI string
	DBName   string

	// signing secret for /jwt tokens
	Secret   string
	TokenTTL time.Duration

	StripeSecretKey string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	OTLPEndpoint   string
	AllowedOrigins []string

	// optional bootstrap admin
	AdminEmail string
}

func Load() (Config, error) {
	// a missing .env is fine, the process env still applies
	_ = godotenv.Load()

	var missing []string

	secret := getEnv("SECRET", "")
	if secret == "" {
		missing = append(missing, "SECRET")
	}

	stripeKey := getEnv("STRIPE_SECRET_KEY", "")
	if stripeKey == "" {
		missing = append(missing, "STRIPE_SECRET_KEY")
	}

	mongoURI := getEnv("MONGO_URI", "")
	if mongoURI == "" {
		user := getEnv("DB_USER", "")
		pass := getEnv("DB_PASS", "")
		if user == "" {
			missing = append(missing, "DB_USER")
		}
		if pass == "" {
			missing = append(missing, "DB_PASS")
		}
		mongoURI = buildMongoURI(user, pass, getEnv("DB_HOST", "cluster0.dospc0a.mongodb.net"))
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}

	return Config{
		Env:             getEnv("APP_ENV", "dev"),
		Port:            getEnvInt("PORT", 5000),
		MongoURI:        mongoURI,
		DBName:          getEnv("DB_NAME", "cookingDB"),
		Secret:          secret,
		TokenTTL:        time.Hour,
		StripeSecretKey: stripeKey,
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		CacheTTL:        time.Duration(getEnvInt("CACHE_TTL_SECONDS", 30)) * time.Second,
		OTLPEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		AllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		AdminEmail:      getEnv("ADMIN_EMAIL", ""),
	}, nil
}

var ErrMissingConfig = errors.New("missing required configuration")

func buildMongoURI(user, pass, host string) string {
	return "mongodb+srv://" + url.QueryEscape(user) + ":" + url.QueryEscape(pass) + "@" + host + "/?retryWrites=true&w=majority"
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)

		if err != nil {
			return fallback
		}

		return num
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
