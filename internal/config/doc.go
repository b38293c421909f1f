// Package config loads, normalizes, and validates cinepick configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// CINEPICK_MOVIES_CSV. The Config type centralizes every knob the CLI needs so
// dataset locations, the catalog database, and recommendation limits are
// discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
