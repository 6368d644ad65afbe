// Package config manages tool settings stored at ~/.visionforge/config.yaml,
// overridable via VISIONFORGE_* environment variables.
package config
