// Package config handles configuration loading, parsing, and validation
// from environment variables, an optional .env file and an optional config
// file. Environment variables use the NEWS_ prefix, e.g. NEWS_SERVER_PORT or
// NEWS_DATABASE_URL.
package config
