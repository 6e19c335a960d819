// Package config provides configuration loading and management.
package config

// UserConfig contains user identity and project defaults.
type UserConfig struct {
	// Author is the default author name for new projects.
	Author string `mapstructure:"author" toml:"author,omitempty"`

	// Email is the default email for project metadata.
	Email string `mapstructure:"email" toml:"email,omitempty"`

	// GitInit controls whether new projects get a git repository.
	// Default: true.
	GitInit bool `mapstructure:"git_init" toml:"git_init"`

	// DefaultTemplate is the template used when --template is omitted.
	DefaultTemplate string `mapstructure:"default_template" toml:"default_template,omitempty"`
}

// DevelopmentConfig contains development and output settings.
type DevelopmentConfig struct {
	// Verbose enables debug logging by default. Default: false.
	Verbose bool `mapstructure:"verbose" toml:"verbose"`

	// Color enables styled terminal output. Default: true.
	Color bool `mapstructure:"color" toml:"color"`

	// ConfirmOverwrite makes an existing target directory a hard error.
	// When false the collision is only warned about. Default: true.
	ConfirmOverwrite bool `mapstructure:"confirm_overwrite" toml:"confirm_overwrite"`
}

// PostGenerationConfig contains post-generation pipeline settings.
type PostGenerationConfig struct {
	// AutoInstallDeps runs the dependency installer after generation.
	// Default: true.
	AutoInstallDeps bool `mapstructure:"auto_install_deps" toml:"auto_install_deps"`

	// AutoSetupHooks installs git hooks after generation. Requires git
	// init to have run. Default: true.
	AutoSetupHooks bool `mapstructure:"auto_setup_hooks" toml:"auto_setup_hooks"`

	// OpenEditor is the editor command to spawn on the new project.
	// Empty means no editor is opened.
	OpenEditor string `mapstructure:"open_editor" toml:"open_editor,omitempty"`
}

// Config is the persisted cza configuration document.
// Loaded from <config-dir>/cza/config.toml; every field has a total
// default so the document is fully constructible when the file is absent.
type Config struct {
	User           UserConfig           `mapstructure:"user" toml:"user"`
	Development    DevelopmentConfig    `mapstructure:"development" toml:"development"`
	PostGeneration PostGenerationConfig `mapstructure:"post_generation" toml:"post_generation"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		User: UserConfig{
			GitInit: true,
		},
		Development: DevelopmentConfig{
			Verbose:          false,
			Color:            true,
			ConfirmOverwrite: true,
		},
		PostGeneration: PostGenerationConfig{
			AutoInstallDeps: true,
			AutoSetupHooks:  true,
		},
	}
}

// Reset replaces the document with all-defaults in place.
func (c *Config) Reset() {
	*c = *DefaultConfig()
}
