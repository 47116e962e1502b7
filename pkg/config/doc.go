// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv, for optional .env files, and
// github.com/caarlos0/env/v11, which fills struct fields from their `env`
// tags. Options select a variable prefix and explicit .env files.
//
//	type Config struct {
//	    Schema string `env:"SCHEMA,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("FIELDCHECK_")); err != nil {
//	    // errors.Is(err, config.ErrParsingConfig)
//	}
package config
