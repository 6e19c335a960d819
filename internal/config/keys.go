package config

import (
	"errors"
	"fmt"
	"strconv"
)

// NotSet is the display placeholder for unset optional values.
const NotSet = "<not set>"

// Sentinel errors for key-path operations.
var (
	// ErrUnknownKey indicates a key path outside the schema.
	ErrUnknownKey = errors.New("unknown configuration key")

	// ErrInvalidValue indicates a value that does not parse into the
	// field's native type.
	ErrInvalidValue = errors.New("invalid value")
)

// field describes one addressable configuration key.
type field struct {
	key      string
	boolean  bool
	get      func(c *Config) string
	setStr   func(c *Config, v string)
	setBool  func(c *Config, v bool)
	optional bool
}

// fields is the schema of addressable keys, in stable display order.
var fields = []field{
	{
		key: "user.author", optional: true,
		get:    func(c *Config) string { return c.User.Author },
		setStr: func(c *Config, v string) { c.User.Author = v },
	},
	{
		key: "user.email", optional: true,
		get:    func(c *Config) string { return c.User.Email },
		setStr: func(c *Config, v string) { c.User.Email = v },
	},
	{
		key: "user.git_init", boolean: true,
		get:     func(c *Config) string { return strconv.FormatBool(c.User.GitInit) },
		setBool: func(c *Config, v bool) { c.User.GitInit = v },
	},
	{
		key: "user.default_template", optional: true,
		get:    func(c *Config) string { return c.User.DefaultTemplate },
		setStr: func(c *Config, v string) { c.User.DefaultTemplate = v },
	},
	{
		key: "development.verbose", boolean: true,
		get:     func(c *Config) string { return strconv.FormatBool(c.Development.Verbose) },
		setBool: func(c *Config, v bool) { c.Development.Verbose = v },
	},
	{
		key: "development.color", boolean: true,
		get:     func(c *Config) string { return strconv.FormatBool(c.Development.Color) },
		setBool: func(c *Config, v bool) { c.Development.Color = v },
	},
	{
		key: "development.confirm_overwrite", boolean: true,
		get:     func(c *Config) string { return strconv.FormatBool(c.Development.ConfirmOverwrite) },
		setBool: func(c *Config, v bool) { c.Development.ConfirmOverwrite = v },
	},
	{
		key: "post_generation.auto_install_deps", boolean: true,
		get:     func(c *Config) string { return strconv.FormatBool(c.PostGeneration.AutoInstallDeps) },
		setBool: func(c *Config, v bool) { c.PostGeneration.AutoInstallDeps = v },
	},
	{
		key: "post_generation.auto_setup_hooks", boolean: true,
		get:     func(c *Config) string { return strconv.FormatBool(c.PostGeneration.AutoSetupHooks) },
		setBool: func(c *Config, v bool) { c.PostGeneration.AutoSetupHooks = v },
	},
	{
		key: "post_generation.open_editor", optional: true,
		get:    func(c *Config) string { return c.PostGeneration.OpenEditor },
		setStr: func(c *Config, v string) { c.PostGeneration.OpenEditor = v },
	},
}

func lookupField(key string) (field, bool) {
	for _, f := range fields {
		if f.key == key {
			return f, true
		}
	}
	return field{}, false
}

// Get returns the string representation of the value at key.
// The second return is false for unset optional fields and unknown keys.
func (c *Config) Get(key string) (string, bool) {
	f, ok := lookupField(key)
	if !ok {
		return "", false
	}

	v := f.get(c)
	if f.optional && v == "" {
		return "", false
	}
	return v, true
}

// Set parses value into the field's native type and stores it.
// Boolean fields require the exact literals "true" or "false".
func (c *Config) Set(key, value string) error {
	f, ok := lookupField(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	if f.boolean {
		switch value {
		case "true":
			f.setBool(c, true)
		case "false":
			f.setBool(c, false)
		default:
			return fmt.Errorf("%w: %q is not a boolean (use \"true\" or \"false\")", ErrInvalidValue, value)
		}
		return nil
	}

	f.setStr(c, value)
	return nil
}

// KeyValue is one entry of the configuration listing.
type KeyValue struct {
	Key   string
	Value string
}

// List returns every key with its display value, in stable schema order.
// Unset optional fields render as the NotSet placeholder.
func (c *Config) List() []KeyValue {
	entries := make([]KeyValue, 0, len(fields))
	for _, f := range fields {
		v := f.get(c)
		if f.optional && v == "" {
			v = NotSet
		}
		entries = append(entries, KeyValue{Key: f.key, Value: v})
	}
	return entries
}

// Keys returns all addressable key paths in schema order.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.key)
	}
	return keys
}
