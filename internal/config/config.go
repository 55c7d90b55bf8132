// Package config loads server and CLI settings from .env files and the
// environment.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle-solver/internal/words"
)

// Config holds application configuration.
type Config struct {
	Port         string
	LogLevel     string
	LogPretty    bool
	DBPath       string
	ClientOrigin string
	Production   bool
	DailySalt    string
	TopK         int
	Auth         AuthConfig
	Words        words.Sources
}

// AuthConfig holds JWT and cookie settings.
type AuthConfig struct {
	JWTSecret      string
	JWTExpiresDays int
	CookieName     string
}

// Load reads an optional .env file, then the environment. Keys keep the
// plain upper-case names used in deployment (PORT, LOG_LEVEL, ...).
func Load(v *viper.Viper) (Config, error) {
	_ = godotenv.Load()

	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)
	v.AutomaticEnv()

	c := Config{
		Port:         v.GetString("PORT"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		LogPretty:    v.GetBool("LOG_PRETTY"),
		DBPath:       v.GetString("DB_PATH"),
		ClientOrigin: v.GetString("CLIENT_ORIGIN"),
		Production:   v.GetString("NODE_ENV") == "production",
		DailySalt:    v.GetString("DAILY_SALT"),
		TopK:         v.GetInt("SOLVER_TOP_K"),
		Auth: AuthConfig{
			JWTSecret:      v.GetString("JWT_SECRET"),
			JWTExpiresDays: v.GetInt("JWT_EXPIRES_DAYS"),
			CookieName:     v.GetString("COOKIE_NAME"),
		},
		Words: words.Sources{
			JSONFile:      v.GetString("WORDS_JSON_FILE"),
			SolutionsFile: v.GetString("WORDS_SOLUTIONS_FILE"),
			ValidFile:     v.GetString("WORDS_VALID_FILE"),
		},
	}
	if c.TopK <= 0 {
		return Config{}, fmt.Errorf("config: SOLVER_TOP_K must be positive, got %d", c.TopK)
	}
	if c.Production && c.Auth.JWTSecret == devSecret {
		return Config{}, fmt.Errorf("config: JWT_SECRET must be set in production")
	}
	return c, nil
}

const devSecret = "dev_secret_change_me"

// SetDefaults registers the default for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5175")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
	v.SetDefault("DB_PATH", "./data/solver.db")
	v.SetDefault("CLIENT_ORIGIN", "http://localhost:5173")
	v.SetDefault("NODE_ENV", "development")
	v.SetDefault("DAILY_SALT", "local_dev_salt")
	v.SetDefault("SOLVER_TOP_K", 5)
	v.SetDefault("JWT_SECRET", devSecret)
	v.SetDefault("JWT_EXPIRES_DAYS", 14)
	v.SetDefault("COOKIE_NAME", "solver_token")
	v.SetDefault("WORDS_JSON_FILE", "")
	v.SetDefault("WORDS_SOLUTIONS_FILE", "")
	v.SetDefault("WORDS_VALID_FILE", "")
}
