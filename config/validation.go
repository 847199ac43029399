package config

import (
	"fmt"
	"strconv"
)

// ValidateConfig checks that the loaded configuration is usable. Production
// environments must supply a real JWT secret; the development fallback is
// rejected there.
func ValidateConfig(cfg *Config) error {
	if cfg.ServerPort == "" {
		return fmt.Errorf("server port is required")
	}
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return fmt.Errorf("invalid server port %q", cfg.ServerPort)
	}

	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBUser == "" || cfg.DBName == "" {
		return fmt.Errorf("database host, port, user and name are required")
	}

	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if IsProduction() && cfg.JWTSecret == devJWTSecret {
		return fmt.Errorf("JWT_SECRET must not use the development default in production")
	}

	if cfg.MealDBBaseURL == "" {
		return fmt.Errorf("meal catalog base URL is required")
	}

	return nil
}
