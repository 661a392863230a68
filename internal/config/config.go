package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration, loaded from environment
// variables or an optional .env file. Verification defaults can be tuned per
// deployment; callers may still override them per request.
type Config struct {
	ServerPort   string `mapstructure:"SERVER_PORT"`
	ClientOrigin string `mapstructure:"CLIENT_ORIGIN"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	JWTSecret    string `mapstructure:"JWT_SECRET"`

	HereAPIKey         string `mapstructure:"HERE_API_KEY"`
	HereTimeoutSeconds int    `mapstructure:"HERE_TIMEOUT_SECONDS"`

	VerifyLevel              string  `mapstructure:"VERIFY_LEVEL"`
	VerifyMinConfidence      float64 `mapstructure:"VERIFY_MIN_CONFIDENCE"`
	VerifyRequirePostalCode  bool    `mapstructure:"VERIFY_REQUIRE_POSTAL_CODE"`
	VerifyRequireHouseNumber bool    `mapstructure:"VERIFY_REQUIRE_HOUSE_NUMBER"`
}

// LoadConfig reads configuration from the environment, optionally overlaid
// by a .env file in the given path. Missing file is not an error; missing
// required values are.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("CLIENT_ORIGIN", "http://localhost:5173")
	v.SetDefault("HERE_TIMEOUT_SECONDS", 15)
	v.SetDefault("VERIFY_LEVEL", "standard")
	v.SetDefault("VERIFY_MIN_CONFIDENCE", 0.7)
	v.SetDefault("VERIFY_REQUIRE_POSTAL_CODE", true)
	v.SetDefault("VERIFY_REQUIRE_HOUSE_NUMBER", false)

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config.LoadConfig: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config.LoadConfig unmarshal: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("config.LoadConfig: missing required settings: %s", strings.Join(missing, ", "))
	}
	return nil
}
