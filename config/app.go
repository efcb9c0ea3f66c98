package config

type App struct {
	Port                string `env:"APP_PORT" default:"8080"`
	MongoURL            string `env:"MONGO_URL,required"`
	MongoDatabase       string `env:"MONGO_DATABASE" default:"carrental"`
	JWTSecret           string `env:"JWT_SECRET,required"`
	StripeSecretKey     string `env:"STRIPE_SECRET_KEY,required"`
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`
	BaseURL             string `env:"BASE_URL" default:"http://localhost:3000"`
	Env                 string `env:"APP_ENV" default:"dev"`
}
