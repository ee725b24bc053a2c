package main

import (
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/jyotish/internal/config"
)

// LoadEnvironment reads .env (if present) and the process environment,
// exiting when the configuration is invalid.
func LoadEnvironment() *config.Config {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Missing or invalid environment variables")
	}
	return cfg
}
