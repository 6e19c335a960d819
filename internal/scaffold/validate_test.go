package scaffold

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/create-zk-app/cza/internal/errors"
)

func TestValidateProjectName_Valid(t *testing.T) {
	chdirTemp(t)

	for _, name := range []string{"abc", "a1", "z-test", "test_123", "myapp"} {
		assert.NoError(t, ValidateProjectName(name, true), "name %q", name)
	}
}

func TestValidateProjectName_Invalid(t *testing.T) {
	chdirTemp(t)

	tests := []struct {
		name     string
		category error
	}{
		{"", ErrNameEmpty},
		{"1abc", ErrNameBadStart},
		{"_abc", ErrNameBadStart},
		{"-abc", ErrNameBadStart},
		{"a b", ErrNameBadCharacter},
		{"a.b", ErrNameBadCharacter},
		{"a/b", ErrNameBadCharacter},
		{"a@b", ErrNameBadCharacter},
	}

	for _, tt := range tests {
		err := ValidateProjectName(tt.name, true)
		require.Error(t, err, "name %q", tt.name)
		assert.ErrorIs(t, err, tt.category, "name %q", tt.name)
		assert.ErrorIs(t, err, oerrors.ErrValidation, "name %q", tt.name)
	}
}

func TestValidateProjectName_Collision(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.Mkdir("d", 0o755))

	// Strict mode: existing directory is a hard error.
	err := ValidateProjectName("d", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTargetExists)

	// Relaxed mode: warn and proceed.
	assert.NoError(t, ValidateProjectName("d", false))
}

// chdirTemp moves the test into a fresh directory so the collision
// check never sees repo files.
func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
