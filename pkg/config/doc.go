// Package config handles configuration management for modsync.
// It loads configuration from layered sources with koanf: the embedded
// defaults, the user's TOML file, MODSYNC_* environment variables and
// finally explicit overrides (usually command-line flags).
package config
