package env

import (
	"fmt"
	"log/slog"
	"os"

	cenv "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from .env files.
// ENV_PATH, when set, replaces the given paths. A missing file is only an
// error in local mode.
func LoadDotEnv(env string, paths ...string) error {
	if p := os.Getenv("ENV_PATH"); p != "" {
		paths = []string{p}
	} else {
		slog.Debug("ENV_PATH is not set, using default paths", "paths", paths)
	}

	err := godotenv.Load(paths...)
	if err != nil {
		if env == "local" {
			slog.Error("Failed to load environment variables in local mode", "error", err)
			return err
		}
		slog.Debug("Skipping .env ...", "error", err)
	}

	return nil
}

// Parse fills target from environment variables using `env` struct tags.
func Parse(target any) error {
	if err := cenv.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
