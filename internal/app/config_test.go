package app

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse("life", nil, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if *cfg != *NewConfig() {
		t.Fatalf("Parse(nil) = %+v, want defaults %+v", *cfg, *NewConfig())
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse("life", []string{"-size", "16", "-hz", "500", "-tps", "30", "-rule", "highlife", "-pattern", "glider"}, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Size != 16 || cfg.Rule != "highlife" || cfg.Pattern != "glider" {
		t.Fatalf("unexpected config %+v", *cfg)
	}
	if cfg.Hz != 30 {
		t.Fatalf("Hz = %d, want clamp to tps 30", cfg.Hz)
	}
}

func TestParseHelp(t *testing.T) {
	if _, err := Parse("life", []string{"-h"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("Parse(-h) error = %v, want flag.ErrHelp", err)
	}
}

func TestConfigFileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.json")
	data := `{"size": 48, "hz": 5, "rule": "seeds", "pattern": "empty"}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Parse("life", []string{"-config", path, "-hz", "12"}, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Size != 48 || cfg.Rule != "seeds" || cfg.Pattern != PatternEmpty {
		t.Fatalf("file values not applied: %+v", *cfg)
	}
	if cfg.Hz != 12 {
		t.Fatalf("Hz = %d, want flag override 12", cfg.Hz)
	}
	if cfg.File != path {
		t.Fatalf("File = %q, want %q", cfg.File, path)
	}
}

func TestConfigFileErrors(t *testing.T) {
	if _, err := Parse("life", []string{"-config", filepath.Join(t.TempDir(), "missing.json")}, io.Discard); err == nil {
		t.Fatal("missing config file accepted")
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Parse("life", []string{"-config", path}, io.Discard); err == nil {
		t.Fatal("malformed config file accepted")
	}
}

func TestValidate(t *testing.T) {
	cfg := NewConfig()
	cfg.Scale = 0
	cfg.TPS = -1
	cfg.Hz = 0
	cfg.Workers = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Scale != 1 || cfg.TPS != 60 || cfg.Hz != 1 || cfg.Workers != 1 {
		t.Fatalf("numeric settings not clamped: %+v", *cfg)
	}

	bad := []func(*Config){
		func(c *Config) { c.Size = 0 },
		func(c *Config) { c.Size = maxSize + 1 },
		func(c *Config) { c.Density = 1.5 },
		func(c *Config) { c.Rule = "B9" },
		func(c *Config) { c.Pattern = "spaceship" },
	}
	for i, mutate := range bad {
		c := NewConfig()
		mutate(c)
		if err := c.Validate(); err == nil {
			t.Fatalf("case %d: Validate accepted %+v", i, *c)
		}
	}
}
