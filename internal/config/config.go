// Package config resolves runtime settings from flags, PHONECMP_* environment
// variables, an optional YAML config file and built-in defaults via viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/tayloree/phonecmp/internal/storage"
	"github.com/tayloree/phonecmp/internal/theme"
)

// Config keys.
const (
	KeyStorageBackend = "storage.backend"
	KeyStoragePath    = "storage.path"
	KeyLogLevel       = "log.level"
	KeyThemeDefault   = "theme.default"
)

// EnvPrefix prefixes every environment override (PHONECMP_STORAGE_BACKEND, ...).
const EnvPrefix = "PHONECMP"

// Config holds the resolved settings.
type Config struct {
	StorageBackend string
	StoragePath    string
	LogLevel       string
	DefaultTheme   theme.Mode
	ConfigFile     string
}

// New returns a viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyStorageBackend, storage.BackendFile)
	v.SetDefault(KeyStoragePath, "")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyThemeDefault, string(theme.Light))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile loads path, or the default config file when path is empty. A
// missing default file is not an error; a missing explicit file is.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
		return nil
	}

	dir, err := DefaultConfigDir()
	if err != nil {
		return nil
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config in %s: %w", dir, err)
	}
	return nil
}

// Load resolves and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	backend := strings.ToLower(strings.TrimSpace(v.GetString(KeyStorageBackend)))
	switch backend {
	case storage.BackendFile, storage.BackendSQLite, storage.BackendMemory:
	case "":
		backend = storage.BackendFile
	default:
		return Config{}, fmt.Errorf("invalid %s %q (use file, sqlite, or memory)", KeyStorageBackend, backend)
	}

	mode, err := theme.Parse(v.GetString(KeyThemeDefault))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", KeyThemeDefault, err)
	}

	path := ExpandPath(v.GetString(KeyStoragePath))
	if path == "" && backend != storage.BackendMemory {
		path, err = DefaultStatePath(backend)
		if err != nil {
			return Config{}, err
		}
	}

	return Config{
		StorageBackend: backend,
		StoragePath:    path,
		LogLevel:       v.GetString(KeyLogLevel),
		DefaultTheme:   mode,
		ConfigFile:     v.ConfigFileUsed(),
	}, nil
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/phonecmp or ~/.config/phonecmp.
func DefaultConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "phonecmp"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".config", "phonecmp"), nil
}

// DefaultStatePath returns where the given backend keeps state by default.
func DefaultStatePath(backend string) (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locating home directory: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	name := "state.json"
	if backend == storage.BackendSQLite {
		name = "state.db"
	}
	return filepath.Join(base, "phonecmp", name), nil
}

// ExpandPath expands a leading ~ and $VAR references.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return os.ExpandEnv(path)
}
