// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing). Every package that needs
// settings declares its own Config struct with `env` and `envDefault` tags;
// the command line entry point composes them and calls Load once.
//
//	type Config struct {
//		Loader loader.Config
//		Theme  theme.Config
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
package config
