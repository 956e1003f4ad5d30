package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist")

	p, err := Load(path)
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("Expected ErrConfigNotFound, got %v", err)
	}
	if p != nil {
		t.Errorf("Expected nil properties, got %d keys", p.Len())
	}
}

func TestLoadDirectoryIsNotFound(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("Expected ErrConfigNotFound for a directory, got %v", err)
	}
}

func TestLoadProperties(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".ecwsrc", `# workspaces
b_workspace=/w2
a_workspace = /w1
! another comment
a_eclipse: /bin/a
columns=3
a_workspace=/w1-override
icon_path=/usr/share/icons/ws.png
long=one \
    two
`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	testCases := []struct {
		key  string
		want string
	}{
		{"b_workspace", "/w2"},
		{"a_workspace", "/w1-override"},
		{"a_eclipse", "/bin/a"},
		{"columns", "3"},
		{"icon_path", "/usr/share/icons/ws.png"},
		{"long", "one two"},
	}

	for _, tc := range testCases {
		got, ok := p.Get(tc.key)
		if !ok {
			t.Errorf("Key %s missing", tc.key)
			continue
		}
		if got != tc.want {
			t.Errorf("Key %s: expected %q, got %q", tc.key, tc.want, got)
		}
	}

	keys := p.Keys()
	if len(keys) != 6 {
		t.Fatalf("Expected 6 keys, got %d: %v", len(keys), keys)
	}
	if keys[0] != "b_workspace" || keys[1] != "a_workspace" {
		t.Errorf("Expected file order to be kept, got %v", keys)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ecws.toml", `columns = 2
clean = true

[main]
workspace = "/w/main"
eclipse = "/opt/eclipse/eclipse"

[test]
workspace = "/w/test"
`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	testCases := []struct {
		key  string
		want string
	}{
		{"columns", "2"},
		{"clean", "true"},
		{"main_workspace", "/w/main"},
		{"main_eclipse", "/opt/eclipse/eclipse"},
		{"test_workspace", "/w/test"},
	}

	for _, tc := range testCases {
		if got, _ := p.Get(tc.key); got != tc.want {
			t.Errorf("Key %s: expected %q, got %q", tc.key, tc.want, got)
		}
	}
}

func TestPropertiesSetKeepsFirstPosition(t *testing.T) {
	p := NewProperties()
	p.Set("a", "1")
	p.Set("b", "2")
	p.Set("a", "3")

	if p.Len() != 2 {
		t.Fatalf("Expected 2 keys, got %d", p.Len())
	}
	if keys := p.Keys(); keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Unexpected key order %v", keys)
	}
	if v, _ := p.Get("a"); v != "3" {
		t.Errorf("Expected last value to win, got %q", v)
	}
	if v := p.GetDefault("missing", "x"); v != "x" {
		t.Errorf("Expected default, got %q", v)
	}
}

func TestDefaultPathFromEnvironment(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/ecwsrc")
	if got := DefaultPath(); got != "/etc/ecwsrc" {
		t.Errorf("Expected env override, got %s", got)
	}

	t.Setenv(EnvConfigPath, "")
	if got := DefaultPath(); filepath.Base(got) != ".ecwsrc" {
		t.Errorf("Expected ~/.ecwsrc, got %s", got)
	}
}
