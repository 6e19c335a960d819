// Package scaffold drives project generation: input validation, the
// generation request, materialization, and the post-generation pipeline.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"unicode"

	oerrors "github.com/create-zk-app/cza/internal/errors"
	"github.com/create-zk-app/cza/internal/output"
)

// Distinct project-name failure categories. Each wraps ErrValidation so
// the command layer maps them all to a fatal exit.
var (
	// ErrNameEmpty indicates an empty project name.
	ErrNameEmpty = errors.New("project name cannot be empty")

	// ErrNameBadStart indicates a name not starting with a letter.
	ErrNameBadStart = errors.New("project name must start with a letter")

	// ErrNameBadCharacter indicates a disallowed character in the name.
	ErrNameBadCharacter = errors.New("project name can only contain alphanumeric characters, hyphens, and underscores")

	// ErrTargetExists indicates the target directory already exists.
	ErrTargetExists = errors.New("directory already exists")
)

// ValidateProjectName enforces the project-name syntax rules and the
// directory-collision policy. Rules are checked in order; the first
// failure wins. The only side effects are a read-only existence check
// and a warning when an existing directory is allowed to be overwritten.
func ValidateProjectName(name string, confirmOverwrite bool) error {
	if name == "" {
		return fmt.Errorf("%w: %w", oerrors.ErrValidation, ErrNameEmpty)
	}

	runes := []rune(name)
	if !unicode.IsLetter(runes[0]) {
		return fmt.Errorf("%w: %w (got %q)", oerrors.ErrValidation, ErrNameBadStart, name)
	}

	for _, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return fmt.Errorf("%w: %w (got %q)", oerrors.ErrValidation, ErrNameBadCharacter, name)
		}
	}

	if _, err := os.Stat(name); err == nil {
		if confirmOverwrite {
			return &oerrors.DetailError{
				Type:    "validation failed",
				Message: fmt.Sprintf("directory %q already exists", name),
				Hint:    "Choose a different project name or remove the existing directory.",
				Cause:   fmt.Errorf("%w: %w", oerrors.ErrValidation, ErrTargetExists),
			}
		}
		output.Warning(fmt.Sprintf("directory %q already exists, continuing anyway", name))
	}

	return nil
}
