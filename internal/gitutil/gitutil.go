// Package gitutil queries the local git installation.
package gitutil

import (
	"os/exec"
	"strings"

	"github.com/create-zk-app/cza/internal/output"
)

// ConfigValue returns the local git configuration value for key
// (e.g. "user.name"), or empty if unset or on any error.
func ConfigValue(key string) string {
	output.Debug("querying git config", "key", key)

	out, err := exec.Command("git", "config", key).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// Available reports whether a usable git binary is on PATH.
func Available() bool {
	err := exec.Command("git", "--version").Run()
	return err == nil
}
