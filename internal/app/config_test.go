package app

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := NewConfig()
	if *cfg != *want {
		t.Fatalf("config = %+v, expected %+v", cfg, want)
	}
	if cfg.Width != 1900 || cfg.Height != 1000 || cfg.CellSize != 10 || cfg.DumpSize != 20 {
		t.Fatalf("unexpected surface defaults %+v", cfg)
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse(newFlagSet(), []string{"-pattern", "glider", "-max-gens", "5", "-dump=false", "-headless"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Pattern != "glider" || cfg.MaxGenerations != 5 || cfg.Dump || !cfg.Headless {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestParseConfigFileFlagsWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.json")
	body := `{"pattern": "acorn", "tps": 5, "cell_size": 4, "dump": false}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Parse(newFlagSet(), []string{"-config", path, "-tps", "30"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Pattern != "acorn" || cfg.CellSize != 4 || cfg.Dump {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.TPS != 30 {
		t.Fatalf("TPS = %d, expected the explicit flag to win", cfg.TPS)
	}
}

func TestParseConfigFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Parse(newFlagSet(), []string{"-config", filepath.Join(dir, "missing.json")}); err == nil {
		t.Fatal("expected an error for a missing file")
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(newFlagSet(), []string{"-config", bad}); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"width", func(c *Config) { c.Width = 0 }},
		{"height", func(c *Config) { c.Height = -1 }},
		{"cell", func(c *Config) { c.CellSize = 0 }},
		{"dump", func(c *Config) { c.DumpSize = 0 }},
		{"gens", func(c *Config) { c.MaxGenerations = -1 }},
	}
	for _, tt := range tests {
		c := NewConfig()
		tt.mutate(c)
		if err := c.Validate(); err == nil {
			t.Fatalf("%s: expected a validation error", tt.name)
		}
	}
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}
}
