package config

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	GeminiApiKey string
	JWT          JWT
	RateLimit    RateLimit
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWT struct {
	Secret        string
	ExpiryMinutes int
}

type RateLimit struct {
	RequestsPerMinute int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("JWT_EXPIRY_MINUTES", 30)
	// Gemini free tier allows 15 requests/minute; stay one under.
	viper.SetDefault("RATE_LIMIT_REQUESTS_PER_MINUTE", 14)

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.JWT.Secret = viper.GetString("JWT_SECRET")
	config.JWT.ExpiryMinutes = viper.GetInt("JWT_EXPIRY_MINUTES")
	config.RateLimit.RequestsPerMinute = viper.GetInt("RATE_LIMIT_REQUESTS_PER_MINUTE")

	if config.GeminiApiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
