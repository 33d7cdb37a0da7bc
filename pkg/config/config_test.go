package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/spf13/pflag"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	f := pflag.NewFlagSet("seair", pflag.ContinueOnError)
	RegisterFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("Parse(%v) error = %v", args, err)
	}
	return f
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(newFlags(t), "")
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if len(cfg.Fragments) != 0 {
		t.Errorf("Expected no fragments, got %v", cfg.Fragments)
	}
	if cfg.Listing || cfg.JSONLogs {
		t.Errorf("Expected listing and json off, got %+v", cfg)
	}
	if !cfg.Loops || !cfg.Color {
		t.Errorf("Expected loops and color on, got %+v", cfg)
	}
}

func TestLoadFlags(t *testing.T) {
	f := newFlags(t, "--fragments", "if-else,objects", "--listing", "-vv", "--color=false")

	cfg, err := load(f, "")
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if !slices.Equal(cfg.Fragments, []string{"if-else", "objects"}) {
		t.Errorf("Expected two fragments, got %v", cfg.Fragments)
	}
	if !cfg.Listing || cfg.Color {
		t.Errorf("Expected listing on and color off, got %+v", cfg)
	}
	if cfg.Verbose != 2 {
		t.Errorf("Expected verbose 2, got %d", cfg.Verbose)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SEAIR_LISTING", "true")
	t.Setenv("SEAIR_FRAGMENTS", "straight-line, counting-loop")

	cfg, err := load(newFlags(t), "")
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if !cfg.Listing {
		t.Error("Expected listing from environment")
	}
	if !slices.Equal(cfg.Fragments, []string{"straight-line", "counting-loop"}) {
		t.Errorf("Expected fragments from environment, got %v", cfg.Fragments)
	}
}

func TestLoadFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := "fragments = [\"objects\"]\nverbosity = \"debug\"\nloops = false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := load(newFlags(t, "--verbosity", "warn"), path)
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if !slices.Equal(cfg.Fragments, []string{"objects"}) {
		t.Errorf("Expected fragments from file, got %v", cfg.Fragments)
	}
	if cfg.Loops {
		t.Error("Expected loops disabled by file")
	}
	if cfg.Verbosity != "warn" {
		t.Errorf("Expected flag to override file, got %q", cfg.Verbosity)
	}
}
