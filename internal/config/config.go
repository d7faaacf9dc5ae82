package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/lintkit/create-eslint-config/internal/branding"
	"github.com/lintkit/create-eslint-config/internal/compose"
	"github.com/lintkit/create-eslint-config/internal/pkgmanager"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyStyleGuide     = "style_guide"
	KeyPackageManager = "package_manager"
	KeyIndent         = "indent"
)

// Keys lists the known setting keys.
var Keys = []string{KeyStyleGuide, KeyPackageManager, KeyIndent}

// ErrUnknownKey is returned for keys outside Keys.
var ErrUnknownKey = errors.New("unknown config key")

var v = viper.New()

// Dir returns the path to the config directory (~/.create-eslint-config/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes settings from the config file and environment. A missing
// file is not an error; a malformed one is.
func Load() error {
	v = viper.New()
	v.SetConfigFile(FilePath())
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	v.SetDefault(KeyStyleGuide, string(compose.StyleDefault))

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a setting by key. Returns an empty string if not set.
func Get(key string) string {
	return v.GetString(key)
}

// Set validates and writes a setting, then saves the config file.
func Set(key, value string) error {
	if err := Validate(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	v.Set(key, value)

	configFile := FilePath()
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks a value for key.
func Validate(key, value string) error {
	switch key {
	case KeyStyleGuide:
		_, err := compose.ParseStyleGuide(value)
		return err
	case KeyPackageManager:
		switch pkgmanager.Manager(value) {
		case pkgmanager.NPM, pkgmanager.Yarn, pkgmanager.PNPM:
			return nil
		}
		return fmt.Errorf("invalid package manager %q: choose npm, yarn, or pnpm", value)
	case KeyIndent:
		_, err := ParseIndent(value)
		return err
	default:
		return fmt.Errorf("%w %q (known keys: %s)", ErrUnknownKey, key, strings.Join(Keys, ", "))
	}
}

// StyleGuide returns the configured default style guide, falling back to
// the default guide when the setting is invalid.
func StyleGuide() compose.StyleGuide {
	sg, err := compose.ParseStyleGuide(Get(KeyStyleGuide))
	if err != nil {
		return compose.StyleDefault
	}
	return sg
}

// Indent returns the configured package.json indent and whether one is set.
func Indent() (string, bool) {
	raw := Get(KeyIndent)
	if raw == "" {
		return "", false
	}
	indent, err := ParseIndent(raw)
	if err != nil {
		return "", false
	}
	return indent, true
}

// ParseIndent converts "tab" or a space count between 0 and 8 into the
// indent string.
func ParseIndent(value string) (string, error) {
	if strings.EqualFold(value, "tab") {
		return "\t", nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n > 8 {
		return "", fmt.Errorf("invalid indent %q: use \"tab\" or a number of spaces from 0 to 8", value)
	}
	return strings.Repeat(" ", n), nil
}
