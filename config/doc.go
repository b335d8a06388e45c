// Package config provides configuration loading for applications embedding
// fillkit.
//
// It uses Viper to load settings from a YAML file, a .env file and
// environment variables, and converts the fill section into ready-to-use
// pipeline options.
//
// Environment variables override file values using the FILLKIT_ prefix with
// underscore-separated paths (e.g., FILLKIT_FILL_STRATEGY).
package config
