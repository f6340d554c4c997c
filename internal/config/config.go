// Package config loads runtime settings for the pattern demos.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/sghaida/designpatterns/internal/logger"
	"github.com/sghaida/designpatterns/widget"
)

// EnvPrefix prefixes every environment variable, e.g. PATTERNS_PLATFORM.
const EnvPrefix = "PATTERNS"

// Keys shared by viper, env vars and CLI flags.
const (
	KeyPlatform = "platform"
	KeyLogLevel = "log-level"
	KeyLogFile  = "log-file"
	KeyDocument = "document"
)

// Config holds the resolved settings shared by the CLI commands.
type Config struct {
	// Platform is an os.name-style string, resolved by widget.ParsePlatform.
	Platform string
	// LogLevel is one of debug|info|warn|error|fatal, already lower-cased.
	LogLevel string
	// LogFile is empty for stderr.
	LogFile  string
	// Document is an optional JSON or YAML file seeding the document demo.
	Document string
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Load reads an optional .env file, then resolves settings from v.
// Flags bound to v win over PATTERNS_* env vars, which win over defaults.
// A nil v uses a fresh viper instance.
//
// The platform name is not parsed here; selecting the widget family is the
// caller's step and fails there with widget.ErrUnknownPlatform.
func Load(v *viper.Viper, envFiles ...string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	if err := loadDotEnv(envFiles...); err != nil {
		return Config{}, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyPlatform, widget.HostPlatformName())
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyDocument, "")

	cfg := Config{
		Platform: strings.TrimSpace(v.GetString(KeyPlatform)),
		LogLevel: strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		LogFile:  v.GetString(KeyLogFile),
		Document: v.GetString(KeyDocument),
	}
	if cfg.Platform == "" {
		return Config{}, fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, KeyPlatform)
	}
	if !logger.ValidLevel(cfg.LogLevel) {
		return Config{}, fmt.Errorf("%w: %s %q (want debug|info|warn|error|fatal)", ErrInvalidConfig, KeyLogLevel, cfg.LogLevel)
	}
	return cfg, nil
}

// loadDotEnv loads the given env files (default ".env") without overriding
// variables already set. Missing files are skipped.
func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}
