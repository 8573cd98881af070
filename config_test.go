package hillclimb

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	test "testing"
)

func writeConfig(t *test.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadToolConfigTOML(t *test.T) {
	path := writeConfig(t, "config.toml", `
seed = 42
max_age = 50
max_group_size = 3

[persistence]
name = "runs.db"
path = "/tmp"

[sort]
numbers = [3, 2, 1]
`)

	config, err := LoadToolConfig(path)
	if err != nil {
		t.Fatalf("LoadToolConfig failed: %v", err)
	}
	if config.Seed != 42 || config.MaxAge != 50 || config.MaxGroupSize != 3 {
		t.Errorf("Unexpected scalar settings: %+v", config)
	}
	if config.Persistence == nil || config.Persistence.Name != "runs.db" || config.Persistence.Path != "/tmp" {
		t.Errorf("Unexpected persistence settings: %+v", config.Persistence)
	}
	if !reflect.DeepEqual(config.Sort.Numbers, []int{3, 2, 1}) {
		t.Errorf("Unexpected sort numbers: %v", config.Sort.Numbers)
	}
	if config.Phrase.Target != DefaultToolConfig().Phrase.Target {
		t.Errorf("Phrase defaults were lost: %+v", config.Phrase)
	}
}

func TestLoadToolConfigYAML(t *test.T) {
	path := writeConfig(t, "config.yaml", `
seed: 7
debug: true
phrase:
  target: "abc"
  gene_set: "abc"
`)

	config, err := LoadToolConfig(path)
	if err != nil {
		t.Fatalf("LoadToolConfig failed: %v", err)
	}
	if config.Seed != 7 || !config.Debug {
		t.Errorf("Unexpected scalar settings: %+v", config)
	}
	if config.Phrase.Target != "abc" || config.Phrase.GeneSet != "abc" {
		t.Errorf("Unexpected phrase settings: %+v", config.Phrase)
	}
	if config.MaxGroupSize != 4 {
		t.Errorf("Default max group size lost: %v", config.MaxGroupSize)
	}
}

func TestLoadToolConfigErrors(t *test.T) {
	if _, err := LoadToolConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("Loading a missing file unexpectedly succeeded")
	}

	if _, err := LoadToolConfig(writeConfig(t, "config.ini", "seed=1")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for an unknown extension, got %v", err)
	}

	if _, err := LoadToolConfig(writeConfig(t, "config.toml", "max_group_size = 0")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for a zero group size, got %v", err)
	}

	if _, err := LoadToolConfig(writeConfig(t, "config.toml", "seed = [")); err == nil {
		t.Errorf("Loading malformed TOML unexpectedly succeeded")
	}
}
