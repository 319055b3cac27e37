package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// whitelistSet is a precomputed lookup table for fast whitelist membership checks.
var whitelistSet map[string]bool

func init() {
	whitelistSet = make(map[string]bool, len(WhitelistedVars))
	for _, v := range WhitelistedVars {
		whitelistSet[v] = true
	}
}

// tomlFile mirrors the keys accepted in a .toml config file.
type tomlFile struct {
	OptionalTimeout any    `toml:"optional_timeout"`
	Verbose         bool   `toml:"verbose"`
	NoColor         bool   `toml:"no_color"`
}

// LoadFile reads the config file at path and returns its whitelisted
// key-value pairs, keyed by WhitelistedVars names.
//
// Files ending in .toml are decoded as TOML (optional_timeout as a duration
// string or whole seconds, verbose, no_color). Anything else is read as KEY=VALUE lines in dotenv syntax:
// comments, blank lines, quoting and an optional "export " prefix are all
// accepted. Unknown keys are dropped in both formats.
func LoadFile(path string) (map[string]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return loadTOML(path)
	}
	return loadDotenv(path)
}

func loadDotenv(path string) (map[string]string, error) {
	raw, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	result := make(map[string]string, len(raw))
	for key, value := range raw {
		key = strings.TrimSpace(key)
		if !whitelistSet[key] {
			continue
		}
		result[key] = strings.TrimSpace(value)
	}
	return result, nil
}

func loadTOML(path string) (map[string]string, error) {
	var raw tomlFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	result := make(map[string]string)
	if meta.IsDefined("optional_timeout") {
		switch v := raw.OptionalTimeout.(type) {
		case string:
			result["OPTIONAL_TIMEOUT"] = strings.TrimSpace(v)
		case int64:
			result["OPTIONAL_TIMEOUT"] = strconv.FormatInt(v, 10)
		default:
			return nil, fmt.Errorf("read config file: optional_timeout must be a string or integer, got %T", v)
		}
	}
	if meta.IsDefined("verbose") {
		result["VERBOSE"] = strconv.FormatBool(raw.Verbose)
	}
	if meta.IsDefined("no_color") {
		result["NO_COLOR"] = strconv.FormatBool(raw.NoColor)
	}
	return result, nil
}

// LoadWithPrecedence assembles a Config by merging sources in order of
// increasing priority:
//
//  1. Built-in defaults
//  2. Explicit config file (explicitPath)
//  3. CLI overrides (cliOverrides map)
//
// An empty explicitPath is skipped. A non-empty one must load.
func LoadWithPrecedence(explicitPath string, cliOverrides map[string]string) (*Config, error) {
	cfg := NewDefaultConfig()

	if explicitPath != "" {
		m, err := LoadFile(explicitPath)
		if err != nil {
			return nil, fmt.Errorf("explicit config: %w", err)
		}
		ApplyMapToConfig(cfg, m)
	}

	if len(cliOverrides) > 0 {
		ApplyMapToConfig(cfg, cliOverrides)
	}

	return cfg, nil
}

// ApplyMapToConfig sets fields on cfg from the key-value pairs in m.
// Unknown keys are silently ignored. Values that fail to parse are silently
// ignored (the previous value is preserved).
func ApplyMapToConfig(cfg *Config, m map[string]string) {
	for key, value := range m {
		switch key {
		case "OPTIONAL_TIMEOUT":
			if d, err := ParseTimeout(value); err == nil {
				cfg.OptionalTimeout = d
			}
		case "VERBOSE":
			cfg.Verbose = parseBool(value)
		case "NO_COLOR":
			cfg.NoColor = parseBool(value)
		}
	}
}

// ParseTimeout accepts a Go duration ("750ms", "5s") or a whole number of
// seconds ("5"). The result must be positive.
func ParseTimeout(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty timeout")
	}

	var d time.Duration
	if n, err := strconv.Atoi(s); err == nil {
		d = time.Duration(n) * time.Second
	} else {
		parsed, perr := time.ParseDuration(s)
		if perr != nil {
			return 0, fmt.Errorf("parse timeout %q: %w", s, perr)
		}
		d = parsed
	}

	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %s", s)
	}
	return d, nil
}

// parseBool interprets common boolean representations.
// "true", "1", "yes" (case-insensitive) return true; everything else returns false.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
