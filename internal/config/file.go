package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "gexfviz"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// EnvConfig names an explicit config file, like --config.
	EnvConfig = "GEXFVIZ_CONFIG"
)

// defaultCache caches the config loaded from the default location.
var defaultCache *Config

// DefaultPath returns the path to the user config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/gexfviz/config.yml.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Resolve returns the config file to read and whether it was named
// explicitly: the flag value first, then $GEXFVIZ_CONFIG, then DefaultPath.
func Resolve(flagPath string) (path string, explicit bool) {
	if flagPath != "" {
		return ExpandPath(flagPath), true
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return ExpandPath(env), true
	}
	return DefaultPath(), false
}

// Load reads the configuration. An explicitly named file must exist; a
// missing default file yields the built-in defaults.
// It returns the path that was read, or "" when defaults were used.
func Load(flagPath string) (*Config, string, error) {
	path, explicit := Resolve(flagPath)
	if !explicit && defaultCache != nil {
		return defaultCache, path, nil
	}
	if path == "" {
		return Default(), "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			defaultCache = Default()
			return defaultCache, "", nil
		}
		return nil, "", fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	if !explicit {
		defaultCache = cfg
	}
	return cfg, path, nil
}

// ResetCache clears the cached default config.
// Useful for testing.
func ResetCache() {
	defaultCache = nil
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
