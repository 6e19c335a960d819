package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// Environment variable overriding the config file location.
const envConfigFile = "CZA_CONFIG"

// Store loads and saves the persisted configuration document.
type Store struct {
	path string
}

// NewStore creates a store bound to the default config file location:
// $CZA_CONFIG if set, otherwise <xdg-config-home>/cza/config.toml.
func NewStore() *Store {
	return &Store{path: configFilePath()}
}

// NewStoreAt creates a store bound to an explicit file path. Used by tests
// and the --config flag.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the config file location this store reads and writes.
func (s *Store) Path() string {
	return s.path
}

func configFilePath() string {
	if env := os.Getenv(envConfigFile); env != "" {
		return env
	}
	return filepath.Join(xdg.ConfigHome, "cza", "config.toml")
}

// Load reads and parses the persisted file. A missing file yields the
// all-defaults document; a present but unparsable file is an error so
// corruption stays visible.
func (s *Store) Load() (*Config, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("toml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", s.path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", s.path, err)
	}

	return &cfg, nil
}

// setDefaults registers the total defaults so a sparse file still yields
// a fully-populated document.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("user.git_init", def.User.GitInit)
	v.SetDefault("development.verbose", def.Development.Verbose)
	v.SetDefault("development.color", def.Development.Color)
	v.SetDefault("development.confirm_overwrite", def.Development.ConfirmOverwrite)
	v.SetDefault("post_generation.auto_install_deps", def.PostGeneration.AutoInstallDeps)
	v.SetDefault("post_generation.auto_setup_hooks", def.PostGeneration.AutoSetupHooks)
}

// Save serializes the document and writes it, creating parent directories
// as needed. Only called after a successful in-memory mutation so a failed
// set never corrupts the on-disk file.
func (s *Store) Save(cfg *Config) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file %s: %w", s.path, err)
	}

	return nil
}

// Exists reports whether the persisted file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username form is not supported, return as-is.
	return path, nil
}
