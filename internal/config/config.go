package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database
	MongoURI string `mapstructure:"MONGO_URI"`
	MongoDB  string `mapstructure:"MONGO_DB"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`

	// Uploads
	UploadsPath string `mapstructure:"UPLOADS_PATH"`
	// PublicBaseURL is the externally reachable base used to build file URLs,
	// e.g. https://omicron-api.onrender.com
	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 4000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "omicronpos")
	viper.SetDefault("JWT_SECRET", "secret_key_omicron")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 12)
	viper.SetDefault("UPLOADS_PATH", "uploads")
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:4000")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
