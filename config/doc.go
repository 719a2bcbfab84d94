// Package config provides application configuration loading and validation.
//
// Configuration is read from config.yml, validated with
// go-playground/validator, and exposed through the package-level Config
// variable. Missing values fall back to sensible defaults so an empty file
// yields a runnable configuration.
package config
