package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListJSON(t *testing.T) {
	out, err := execute(t, "list", "--json")
	require.NoError(t, err)

	var listings []struct {
		Key        string   `json:"key"`
		Name       string   `json:"name"`
		Repository string   `json:"repository"`
		Subfolder  string   `json:"subfolder"`
		Frameworks []string `json:"frameworks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &listings))
	require.NotEmpty(t, listings)

	keys := make([]string, 0, len(listings))
	for _, l := range listings {
		keys = append(keys, l.Key)
		assert.NotEmpty(t, l.Name, "template %s", l.Key)
		assert.NotEmpty(t, l.Repository, "template %s", l.Key)
		assert.NotEmpty(t, l.Subfolder, "template %s", l.Key)
	}
	assert.Contains(t, keys, "noir-vite")
	assert.Contains(t, keys, "cairo-vite")
	assert.IsNonDecreasing(t, keys)
}

func TestListRejectsArgs(t *testing.T) {
	_, err := execute(t, "list", "extra")
	assert.Error(t, err)
}
