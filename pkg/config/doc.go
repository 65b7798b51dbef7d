// Package config loads application configuration from environment
// variables into typed structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is loaded once (if present), then struct fields are
// populated from env tags. Each configuration type is parsed at most once
// per process; later calls return the cached copy.
//
//	type AppConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
package config
