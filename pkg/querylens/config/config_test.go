package config

import (
	"errors"
	"testing"

	"github.com/cognicore/querylens/pkg/querylens/internalerr"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() invalid: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unsupported language", func(c *Config) { c.Language = "klingon" }},
		{"zero topics", func(c *Config) { c.Topics = 0 }},
		{"negative topics", func(c *Config) { c.Topics = -3 }},
		{"negative min frequency", func(c *Config) { c.MinTermFrequency = -1 }},
		{"affinity above one", func(c *Config) { c.MinTopicAffinity = 1.5 }},
		{"negative affinity", func(c *Config) { c.MinTopicAffinity = -0.1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, internalerr.ErrInvalidConfig) {
				t.Errorf("Validate = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestStopwordSetMergesDefaults(t *testing.T) {
	cfg := Default()
	cfg.Stopwords = []string{"zebra"}

	set := make(map[string]struct{})
	for _, w := range cfg.StopwordSet() {
		set[w] = struct{}{}
	}

	if _, ok := set["the"]; !ok {
		t.Error("built-in english stopword missing from merged set")
	}
	if _, ok := set["zebra"]; !ok {
		t.Error("configured stopword missing from merged set")
	}
}

func TestStopwordSetWithoutDefaults(t *testing.T) {
	cfg := Default()
	cfg.UseDefaultStopwords = false
	cfg.Stopwords = []string{"zebra"}

	words := cfg.StopwordSet()
	if len(words) != 1 || words[0] != "zebra" {
		t.Errorf("StopwordSet = %v, want only configured words", words)
	}
}
