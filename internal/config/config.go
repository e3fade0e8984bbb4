package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Generation settings
	Aggregator string

	// Directory expansion settings
	Extensions    []string
	PathsToIgnore []string

	// Logging settings
	LogFile       string
	LogLevel      string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Output     string
	Manifest   string
	Aggregator string
	Recursive  bool
	Progress   bool
	NameFilter string
	ByFile     bool
	LogFile    string
	Verbose    bool
	EnvFile    string
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		Aggregator:    DefaultAggregator,
		LogLevel:      DefaultLogLevel,
		LogMaxSize:    DefaultLogMaxSize,
		LogMaxBackups: DefaultLogMaxBackups,
		LogMaxAge:     DefaultLogMaxAge,
	}
	cfg.Extensions = make([]string, len(DefaultExtensions))
	copy(cfg.Extensions, DefaultExtensions)
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Apply(flags)
	return cfg
}

// Apply stores the flags and applies their overrides
func (c *Config) Apply(flags Flags) {
	c.Flags = flags

	if flags.Aggregator != "" {
		c.Aggregator = flags.Aggregator
	}
	if flags.LogFile != "" {
		c.LogFile = flags.LogFile
	}
}

// LoadEnv applies the UTESTGEN_* variables. When path is set the dotenv file
// is loaded first and must exist and parse; variables already present in the
// process environment are not overridden by it.
func (c *Config) LoadEnv(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvLogFile); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := splitList(os.Getenv(EnvExtensions)); len(v) > 0 {
		c.Extensions = normalizeExtensions(v)
	}
	if v := splitList(os.Getenv(EnvSkipDirs)); len(v) > 0 {
		c.PathsToIgnore = v
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
