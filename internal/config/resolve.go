package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultPort is the port cleared when nothing else is configured.
const DefaultPort = "5001"

const (
	MinPort = 1
	MaxPort = 65535
)

// Match modes accepted for netstat.match.
const (
	MatchLocal     = "local"
	MatchSubstring = "substring"
)

// Source names where a setting came from.
type Source string

const (
	SourceArg     Source = "argument"
	SourceEnv     Source = "KILLPORT_PORT"
	SourceRC      Source = ".killportrc"
	SourceFile    Source = "config.toml"
	SourceDefault Source = "default"
)

// ConfigError reports a setting that cannot be used. It is always detected
// before any external command runs.
type ConfigError struct {
	Key    string
	Value  string
	Source Source
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("invalid %s %q", e.Key, e.Value)
	if e.Source != "" {
		msg += fmt.Sprintf(" (from %s)", e.Source)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Setting is a raw config value together with where it came from.
type Setting struct {
	Value  string
	Source Source
}

// ResolvePort determines which port text to use.
// Precedence:
//  1. args[0] (positional argument, used even when empty)
//  2. envPort (from KILLPORT_PORT env var)
//  3. .killportrc walk-up from cwd
//  4. config.toml port
//  5. DefaultPort
func ResolvePort(args []string, envPort string) (Setting, error) {
	if len(args) > 0 {
		return Setting{Value: args[0], Source: SourceArg}, nil
	}
	if envPort != "" {
		return Setting{Value: envPort, Source: SourceEnv}, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return Setting{}, &ConfigError{Key: "port file", Value: ".", Reason: "cannot search for " + rcFile + ": " + err.Error(), Err: err}
	}
	rcPath, err := FindRC(cwd)
	if err != nil {
		return Setting{}, &ConfigError{Key: "port file", Value: cwd, Reason: err.Error(), Err: err}
	}
	if rcPath != "" {
		port, err := ReadRC(rcPath)
		if err != nil {
			return Setting{}, &ConfigError{Key: "port file", Value: rcPath, Reason: err.Error(), Err: err}
		}
		return Setting{Value: port, Source: SourceRC}, nil
	}

	cfg, err := Load()
	if err != nil {
		return Setting{}, &ConfigError{Key: "config file", Value: ConfigPath(), Reason: err.Error(), Err: err}
	}
	if cfg.Port != "" {
		return Setting{Value: cfg.Port, Source: SourceFile}, nil
	}
	return Setting{Value: DefaultPort, Source: SourceDefault}, nil
}

// ParsePort validates port text as an integer TCP port.
func ParsePort(value string, source Source) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &ConfigError{Key: "port", Value: value, Source: source, Reason: "port must be an integer", Err: err}
	}
	if port < MinPort || port > MaxPort {
		return 0, &ConfigError{
			Key:    "port",
			Value:  value,
			Source: source,
			Reason: fmt.Sprintf("port must be between %d and %d", MinPort, MaxPort),
		}
	}
	return port, nil
}

// ResolveMatch returns the configured netstat match mode, defaulting to
// MatchLocal.
func ResolveMatch() (string, error) {
	cfg, err := Load()
	if err != nil {
		return "", &ConfigError{Key: "config file", Value: ConfigPath(), Reason: err.Error(), Err: err}
	}
	if cfg.Netstat.Match == "" {
		return MatchLocal, nil
	}
	return ParseMatch(cfg.Netstat.Match, SourceFile)
}

// ParseMatch validates a netstat match mode.
func ParseMatch(value string, source Source) (string, error) {
	switch value {
	case MatchLocal, MatchSubstring:
		return value, nil
	default:
		return "", &ConfigError{
			Key:    "netstat.match",
			Value:  value,
			Source: source,
			Reason: fmt.Sprintf("must be %q or %q", MatchLocal, MatchSubstring),
		}
	}
}
