package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisBookingDB int    `mapstructure:"REDIS_BOOKING_DB"`
	RedisAuthDB    int    `mapstructure:"REDIS_AUTH_DB"`

	// Payment gateway. Empty key means the simulated handler is used.
	StripeKey string `mapstructure:"STRIPE_KEY"`

	// Concierge pricing. Kept in config so the deposit and service fee can
	// be changed without touching the catalog.
	ConciergeDeposit    float64 `mapstructure:"CONCIERGE_DEPOSIT"`
	ConciergeServiceFee float64 `mapstructure:"CONCIERGE_SERVICE_FEE"`
	Currency            string  `mapstructure:"CURRENCY"`

	// Submission timeout in seconds.
	SubmitTimeout int `mapstructure:"SUBMIT_TIMEOUT"`

	// Guest auth token lifetime in minutes.
	GuestTokenTTL int `mapstructure:"GUEST_TOKEN_TTL"`

	// Gemini API key for recommendation narration. Optional.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_BOOKING_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("CONCIERGE_DEPOSIT", 500.0)
	viper.SetDefault("CONCIERGE_SERVICE_FEE", 0.0)
	viper.SetDefault("CURRENCY", "AUD")
	viper.SetDefault("SUBMIT_TIMEOUT", 15)
	viper.SetDefault("GUEST_TOKEN_TTL", 60)
	viper.SetDefault("GEMINI_API_KEY", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
