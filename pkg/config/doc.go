// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv, which reads optional .env files, with
// github.com/caarlos0/env/v11, which maps variables onto struct fields through
// `env` and `envDefault` tags. Parsed values are cached per type so repeated
// Load calls from different packages see the same configuration.
//
// Sentinel errors (ErrParsingConfig, ErrLoadingEnvFile, ErrNilPointer) can be
// matched with errors.Is. Tests that change the environment call Reset first.
package config
