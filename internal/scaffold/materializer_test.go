package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstituteVars(t *testing.T) {
	vars := map[string]string{
		"project_name": "myapp",
		"author":       "Ada",
	}

	out := SubstituteVars([]byte("# {{project_name}} by {{author}}"), vars)
	assert.Equal(t, "# myapp by Ada", string(out))

	// Unknown placeholders stay untouched.
	out = SubstituteVars([]byte("{{project_name}} {{license}}"), vars)
	assert.Equal(t, "myapp {{license}}", string(out))

	// No placeholders, no change.
	out = SubstituteVars([]byte("plain content"), vars)
	assert.Equal(t, "plain content", string(out))
}

func TestIsProbablyText(t *testing.T) {
	assert.True(t, isProbablyText([]byte("package main\n")))
	assert.True(t, isProbablyText([]byte{}))
	assert.False(t, isProbablyText([]byte{0x89, 'P', 'N', 'G', 0x00, 0x1a}))
}

func TestRenderTree(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.Mkdir(dst, 0o755))

	require.NoError(t, os.MkdirAll(filepath.Join(src, "src", "circuits"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(src, ".git", "objects"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "README.md"), []byte("# {{project_name}}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "src", "circuits", "main.nr"), []byte("// by {{author}}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, ".git", "objects", "x"), []byte("gitdata"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "logo.bin"), []byte{0x00, 0x01, '{', '{', 'a', '}', '}'}, 0o644))

	vars := map[string]string{"project_name": "myapp", "author": "Ada"}
	require.NoError(t, renderTree(src, dst, vars))

	readme, err := os.ReadFile(filepath.Join(dst, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# myapp", string(readme))

	circuit, err := os.ReadFile(filepath.Join(dst, "src", "circuits", "main.nr"))
	require.NoError(t, err)
	assert.Equal(t, "// by Ada", string(circuit))

	// Binary files are copied verbatim, placeholders included.
	bin, err := os.ReadFile(filepath.Join(dst, "logo.bin"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, '{', '{', 'a', '}', '}'}, bin)

	// The template's .git directory never carries over.
	_, statErr := os.Stat(filepath.Join(dst, ".git"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestMoveIntoPlace_Rename(t *testing.T) {
	base := t.TempDir()
	staging := filepath.Join(base, ".stage")
	require.NoError(t, os.Mkdir(staging, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(staging, "a.txt"), []byte("a"), 0o644))

	target := filepath.Join(base, "proj")
	require.NoError(t, moveIntoPlace(staging, target))

	data, err := os.ReadFile(filepath.Join(target, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))
}

func TestMoveIntoPlace_MergeIntoExisting(t *testing.T) {
	base := t.TempDir()
	staging := filepath.Join(base, ".stage")
	require.NoError(t, os.MkdirAll(filepath.Join(staging, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(staging, "nested", "b.txt"), []byte("b"), 0o644))

	target := filepath.Join(base, "proj")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep.txt"), []byte("keep"), 0o644))

	require.NoError(t, moveIntoPlace(staging, target))

	kept, err := os.ReadFile(filepath.Join(target, "keep.txt"))
	require.NoError(t, err)
	assert.Equal(t, "keep", string(kept))

	merged, err := os.ReadFile(filepath.Join(target, "nested", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "b", string(merged))
}
