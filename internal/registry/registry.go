// Package registry provides the embedded template registry.
package registry

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	oerrors "github.com/create-zk-app/cza/internal/errors"
)

//go:embed templates.toml
var templatesTOML []byte

// Template is an immutable entry of the static registry.
type Template struct {
	// Name is the display name of the template.
	Name string `toml:"name" json:"name"`

	// Description explains what the template provides.
	Description string `toml:"description" json:"description"`

	// Repository is the git URL the template is fetched from.
	Repository string `toml:"repository" json:"repository"`

	// Subfolder is the template's path within the repository.
	Subfolder string `toml:"subfolder" json:"subfolder"`

	// Frameworks are the ZK frameworks the template ships with.
	Frameworks []string `toml:"frameworks" json:"frameworks"`

	// Revision optionally pins the repository to a fixed ref.
	Revision string `toml:"revision,omitempty" json:"revision,omitempty"`
}

// Registry maps template keys to their records. Read-only after Load.
type Registry struct {
	Templates map[string]Template `toml:"templates"`
}

// Load parses the embedded registry. Called once per invocation.
func Load() (*Registry, error) {
	var reg Registry
	if err := toml.Unmarshal(templatesTOML, &reg); err != nil {
		return nil, fmt.Errorf("parsing template registry: %w", err)
	}
	return &reg, nil
}

// Get looks up a template key. Lookup is case-sensitive exact-match.
func (r *Registry) Get(key string) (Template, error) {
	t, ok := r.Templates[key]
	if !ok {
		return Template{}, oerrors.NewNotFoundError(
			fmt.Sprintf("template %q not found", key),
			"Use 'cza list' to see available templates.",
		)
	}
	return t, nil
}

// Keys returns all template keys in sorted order for stable listings.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.Templates))
	for k := range r.Templates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks that a record's source locator is usable.
func Validate(t Template) error {
	if t.Repository == "" {
		return fmt.Errorf("template repository URL cannot be empty")
	}
	if t.Subfolder == "" {
		return fmt.Errorf("template subfolder cannot be empty")
	}
	if !strings.HasPrefix(t.Repository, "https://") && !strings.HasPrefix(t.Repository, "git@") {
		return fmt.Errorf("template repository must be a valid git URL")
	}
	return nil
}
