// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Isolate tests from the user's config, state and terminal

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestEnvironment points every user-level lookup at temp directories
type TestEnvironment struct {
	ConfigHome string
	StateHome  string

	t *testing.T
}

// NewTestEnvironment creates an isolated environment for the duration of t.
// Colors are disabled so rendered output is stable.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		ConfigHome: t.TempDir(),
		StateHome:  t.TempDir(),
		t:          t,
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("NO_COLOR", "1")

	return env
}

// WriteUserConfig writes config.toml where the config loader looks for it
func (env *TestEnvironment) WriteUserConfig(content string) string {
	env.t.Helper()
	return WriteFile(env.t, filepath.Join(env.ConfigHome, "petrovich"), "config.toml", content)
}

// WriteFile writes content to dir/name, creating dir, and returns the path
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// TempFile writes content to a fresh temp directory and returns the path
func TempFile(t *testing.T, name, content string) string {
	t.Helper()
	return WriteFile(t, t.TempDir(), name, content)
}
