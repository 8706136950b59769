package server

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/DjordjeVuckovic/heaviside/pkg/config/env"
	"github.com/DjordjeVuckovic/heaviside/pkg/utils"
)

type Config struct {
	Port         string   `env:"PORT" envDefault:"8080"`
	UseHttp2     bool     `env:"USE_HTTP2"`
	CorsOrigins  []string `env:"CORS_ORIGINS" envSeparator:","`
	ScenarioPath string   `env:"SCENARIO_PATH"`
}

// LoadConfig reads the server settings from the environment, after loading
// the API's .env file when present.
func LoadConfig(appEnv string) (*Config, error) {
	if err := env.LoadDotEnv(appEnv, "cmd/heaviside_api/.env"); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	if err := validatePort(c.Port); err != nil {
		return fmt.Errorf("invalid port: %w", err)
	}

	c.CorsOrigins = utils.CleanList(c.CorsOrigins)
	if len(c.CorsOrigins) == 0 {
		c.CorsOrigins = []string{"*"}
	}
	return nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
