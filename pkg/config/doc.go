// Package config loads typed configuration structs from environment
// variables using github.com/caarlos0/env/v11, with optional .env files
// read through github.com/joho/godotenv.
//
// Load parses and caches one value per configuration type. LoadEnv reads
// extra .env files before the first Load.
package config
