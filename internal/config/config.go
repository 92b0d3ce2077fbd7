package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/overleaf-sync/setup-overleaf-sync/internal/branding"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/remote"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized keys.
const (
	KeyTemplate   = "template"
	KeyHost       = "host"
	KeyRemote     = "remote"
	KeyOverleafID = "overleaf_id"
)

// Keys lists every recognized configuration key in sorted order.
func Keys() []string {
	keys := []string{KeyTemplate, KeyHost, KeyRemote, KeyOverleafID}
	sort.Strings(keys)
	return keys
}

// IsKnownKey reports whether key is a recognized configuration key.
func IsKnownKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Dir returns the path to the config directory (~/.overleaf-sync/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.overleaf-sync/config.yaml).
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

// Load initializes Viper to read from the config file and environment.
// A missing config file is not an error; a malformed one is.
func Load() error {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyHost, remote.DefaultHost)
	viper.SetDefault(KeyRemote, "origin")

	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(FilePath()); os.IsNotExist(statErr) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file. Only keys
// already in the file plus key itself are written; defaults, environment
// values and flags stay out of it.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	file.Set(key, value)
	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}

// Template returns the configured template path override, if any.
func Template() string { return Get(KeyTemplate) }

// Host returns the hosting domain remotes are matched against.
func Host() string { return Get(KeyHost) }

// Remote returns the name of the remote used to derive coordinates.
func Remote() string { return Get(KeyRemote) }

// OverleafID returns the default Overleaf project ID echoed in guidance.
func OverleafID() string { return Get(KeyOverleafID) }
