package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Database  DatabaseConfig
	APIPort   string
	LogLevel  string
	LogFormat string
	Gemini    GeminiConfig
	Tavily    TavilyConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int
	MinConns int
}

// GeminiConfig holds the language-model credential. An empty key is valid:
// the assistant then skips its summarization stages and degrades to the
// static fallback.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// TavilyConfig holds the web-search credential. An empty key disables web
// evidence retrieval without error.
type TavilyConfig struct {
	APIKey string
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_NAME", "toyota_finder")
	viper.SetDefault("DB_USER", "toyota")
	viper.SetDefault("DB_PASSWORD", "")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 25)
	viper.SetDefault("DB_MIN_CONNS", 5)
	viper.SetDefault("API_PORT", "8000")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("TAVILY_API_KEY", "")

	return &Config{
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetInt("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
			MaxConns: viper.GetInt("DB_MAX_CONNS"),
			MinConns: viper.GetInt("DB_MIN_CONNS"),
		},
		APIPort:   viper.GetString("API_PORT"),
		LogLevel:  viper.GetString("LOG_LEVEL"),
		LogFormat: viper.GetString("LOG_FORMAT"),
		Gemini: GeminiConfig{
			APIKey: viper.GetString("GEMINI_API_KEY"),
			Model:  viper.GetString("GEMINI_MODEL"),
		},
		Tavily: TavilyConfig{
			APIKey: viper.GetString("TAVILY_API_KEY"),
		},
	}
}
