package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

func Load() App {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := App{
		Port:                getenv("APP_PORT", "8080"),
		MongoURL:            must("MONGO_URL"),
		MongoDatabase:       getenv("MONGO_DATABASE", "carrental"),
		JWTSecret:           getenv("JWT_SECRET", "local_dev_secret"),
		StripeSecretKey:     must("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		BaseURL:             getenv("BASE_URL", "http://localhost:3000"),
		Env:                 getenv("APP_ENV", "dev"),
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
