package config

import (
	"flag"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultRunAddress  = ":8080"
	DefaultDatabaseURL = ""
)

type Config struct {
	RunAddress  string `env:"RUN_ADDRESS"`
	DatabaseURL string `env:"DATABASE_URL"`
}

func Read() (Config, error) {
	config := Config{}

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Server run address")
	flag.StringVar(&config.DatabaseURL, "d", DefaultDatabaseURL, "Database connect string")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
