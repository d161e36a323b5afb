package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/querylens/pkg/querylens/internalerr"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
language: spanish
topics: 3
seed: 99
excluded_stems: [zapato]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Language != "spanish" {
		t.Errorf("Language = %q, want spanish", cfg.Language)
	}
	if cfg.Topics != 3 {
		t.Errorf("Topics = %d, want 3", cfg.Topics)
	}
	if cfg.Seed != 99 {
		t.Errorf("Seed = %d, want 99", cfg.Seed)
	}
	if len(cfg.ExcludedStems) != 1 || cfg.ExcludedStems[0] != "zapato" {
		t.Errorf("ExcludedStems = %v", cfg.ExcludedStems)
	}

	// Fields absent from the file keep their defaults.
	if cfg.MinTopicAffinity != Default().MinTopicAffinity {
		t.Errorf("MinTopicAffinity = %g, want default", cfg.MinTopicAffinity)
	}
	if !cfg.UseDefaultStopwords {
		t.Error("UseDefaultStopwords should default to true")
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := writeConfig(t, "topics: 0\n")

	if _, err := Load(path); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Load = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of missing file should fail")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "topics: [not a number\n")

	if _, err := Load(path); err == nil {
		t.Error("Load of malformed YAML should fail")
	}
}
