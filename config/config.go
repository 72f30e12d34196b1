package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	PreviewSecret     string `mapstructure:"PREVIEW_TOKEN_SECRET"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Persistence configuration. Driver is either "mongo" or "firestore".
	DatabaseDriver    string `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	MongoConnectSecs  int    `mapstructure:"MONGO_CONNECT_TIMEOUT_S"`
	MongoDatabase     string `mapstructure:"MONGO_DATABASE"`
	FirebaseProjectID string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseCredFile  string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	PagesCollection   string `mapstructure:"COLLECTION_PAGES"`
	BlocksCollection  string `mapstructure:"COLLECTION_BLOCKS"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Content configuration.
	DefaultLanguage    string `mapstructure:"DEFAULT_LANGUAGE"`
	AvailableLanguages string `mapstructure:"AVAILABLE_LANGUAGES"`

	// Editor behaviour.
	AutosaveDebounceMS int `mapstructure:"EDITOR_AUTOSAVE_DEBOUNCE_MS"`

	// Third-party API keys.
	StripeKey    string `mapstructure:"STRIPE_KEY"`
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
	viper.SetDefault("DATABASE_DRIVER", "mongo")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_CONNECT_TIMEOUT_S", 10)
	viper.SetDefault("MONGO_DATABASE", "pagecraft")
	viper.SetDefault("COLLECTION_PAGES", "pages")
	viper.SetDefault("COLLECTION_BLOCKS", "blocks")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DEFAULT_LANGUAGE", "pt-BR")
	viper.SetDefault("AVAILABLE_LANGUAGES", "pt-BR,en,es")
	viper.SetDefault("EDITOR_AUTOSAVE_DEBOUNCE_MS", 1500)

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

// Languages returns the configured available language tags.
func Languages() []string {
	parts := strings.Split(AppConfig.AvailableLanguages, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			out = append(out, tag)
		}
	}
	if len(out) == 0 {
		out = []string{AppConfig.DefaultLanguage}
	}
	return out
}
