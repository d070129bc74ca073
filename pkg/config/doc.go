// Package config loads confrec settings from embedded defaults and
// optional TOML config files, layered with koanf.
package config
