// Package config aggregates the application configuration.
//
// Each subsystem declares its own partial Config struct next to the code it
// configures (core/server, core/database, core/storage, core/fetch,
// feature/library/catalog); this package composes them and loads values from
// a .env file and environment variables through Viper.
//
// Defaults are declared as `default:` struct tags and bound via reflection,
// so adding a new key never requires touching this package. Environment
// variables map onto nested keys with underscores: SERVER_PORT sets
// server.port, CATALOG_API_KEY sets catalog.api_key.
package config
