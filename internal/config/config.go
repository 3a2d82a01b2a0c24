// Package config loads service configuration from the environment.
package config

import "github.com/ilyakaznacheev/cleanenv"

// Config holds everything the service needs at startup.
type Config struct {
	Addr      string `env:"WELLQUEST_ADDR" env-default:":8080"`
	DBPath    string `env:"WELLQUEST_DB_PATH" env-default:"data/wellquest.db"`
	StaticDir string `env:"WELLQUEST_STATIC_DIR" env-default:"web/dist"`
	LogLevel  string `env:"WELLQUEST_LOG_LEVEL" env-default:"info"`
}

// Read populates a Config from the environment.
func Read() (*Config, error) {
	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
