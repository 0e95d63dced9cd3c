package config

import (
	"errors"
	"fmt"
	"strings"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// DefaultSpeciesFile is where the installed species list lives.
const DefaultSpeciesFile = "/usr/local/lib/groblad/species"

// Input encodings.
const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin1"
)

// Config holds the settings shared by the groblad commands, populated from
// environment variables. Command-line flags override individual fields.
type Config struct {
	SpeciesFile string
	Encoding    string
	LogLevel    string
	LogFormat   string
	MetricsFile string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	cfg := &Config{
		SpeciesFile: sharedcfg.EnvOrDefault("GROBLAD_SPECIES", DefaultSpeciesFile),
		Encoding:    strings.ToLower(sharedcfg.EnvOrDefault("GROBLAD_ENCODING", EncodingUTF8)),
		LogLevel:    strings.ToLower(sharedcfg.EnvOrDefault("LOG_LEVEL", "warn")),
		LogFormat:   strings.ToLower(sharedcfg.EnvOrDefault("LOG_FORMAT", "text")),
		MetricsFile: sharedcfg.EnvOrDefault("METRICS_FILE", ""),
	}

	switch cfg.Encoding {
	case EncodingUTF8, "utf8":
		cfg.Encoding = EncodingUTF8
	case EncodingLatin1, "iso-8859-1", "iso8859-1":
		cfg.Encoding = EncodingLatin1
	default:
		return nil, fmt.Errorf("invalid GROBLAD_ENCODING %q: must be utf-8 or latin1", cfg.Encoding)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be text or json", cfg.LogFormat)
	}

	if strings.TrimSpace(cfg.SpeciesFile) == "" {
		return nil, errors.New("GROBLAD_SPECIES is empty")
	}

	return cfg, nil
}

// Latin1 reports whether input is to be decoded as ISO 8859-1.
func (c *Config) Latin1() bool {
	return c.Encoding == EncodingLatin1
}
