// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from an optional YAML file, overridden by RSALAB_* environment
// variables and validated before use. Every binary (CLI and REST API) shares the
// same Config shape.
package config
