// Package config centralizes application configuration.
//
// Configuration is loaded from environment variables, optionally seeded from
// a .env file via godotenv. Defaults are declared on the partial config
// structs themselves through `default` struct tags and registered in Viper by
// reflection, so every key is overridable through the environment
// (STORAGE_ACCESS_KEY, MODEL_API_KEY, SERVER_PORT, ...).
//
// The core never reads configuration directly; the cmd layer loads it once
// and hands each collaborator its own section.
package config
