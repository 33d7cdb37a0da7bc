package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// FileName is the optional config file read from the working directory
const FileName = "seair.toml"

// EnvPrefix prefixes environment overrides, e.g. SEAIR_LISTING=true
const EnvPrefix = "SEAIR_"

// Config holds all configuration for the seair command
type Config struct {
	Fragments []string `koanf:"fragments"` // empty selects the whole catalog
	Listing   bool     `koanf:"listing"`
	Loops     bool     `koanf:"loops"`
	Color     bool     `koanf:"color"`
	JSONLogs  bool     `koanf:"json"`
	Verbosity string   `koanf:"verbosity"`
	Verbose   int      `koanf:"verbose"`
}

// RegisterFlags adds the flags Load understands to f
func RegisterFlags(f *pflag.FlagSet) {
	f.StringSlice("fragments", nil, "Fragments to verify (default: all)")
	f.Bool("listing", false, "Print every vertex with its edges")
	f.Bool("loops", true, "Report control loops and data cycles")
	f.Bool("color", true, "Colorize the report")
	f.Bool("json", false, "Log in JSON instead of the compact console format")
	f.String("verbosity", "", "Log level: trace, debug, info, warn, error")
	f.CountP("verbose", "v", "Increase log verbosity (repeatable)")
}

// Load loads configuration from defaults, config file, environment variables, and flags.
// Priority: Flags > Env > Config File > Defaults
func Load(f *pflag.FlagSet) (*Config, error) {
	return load(f, FileName)
}

func load(f *pflag.FlagSet, path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	defaults := map[string]interface{}{
		"fragments": []string{},
		"listing":   false,
		"loops":     true,
		"color":     true,
		"json":      false,
		"verbosity": "",
		"verbose":   0,
	}
	if err := k.Load(makeMapProvider(defaults), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file, optional
	if path != "" {
		_ = k.Load(file.Provider(path), toml.Parser())
	}

	// 3. Environment variables; lists are comma separated
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), "_", ".")
		if key == "fragments" {
			return key, splitList(value)
		}
		return key, value
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags; posflag only applies flags that were set or have no lower value
	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// mapProvider exposes a plain map as a koanf provider
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
