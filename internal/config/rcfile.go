package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const rcFile = ".killportrc"

// FindRC walks up from startDir looking for a .killportrc file.
// Returns the path to the file if found, or empty string and nil if not found.
// A candidate that exists but cannot be checked is an error, not a miss.
func FindRC(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, rcFile)
		_, err := os.Stat(candidate)
		if err == nil {
			return candidate, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("checking %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// ReadRC reads the port text from a .killportrc file.
// The file is expected to contain just the port (optionally with whitespace).
func ReadRC(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading .killportrc: %w", err)
	}
	port := strings.TrimSpace(string(data))
	if port == "" {
		return "", fmt.Errorf(".killportrc is empty: %s", path)
	}
	return port, nil
}

// WriteRC pins port for the given directory and everything below it.
func WriteRC(dir, port string) error {
	if _, err := ParsePort(port, SourceRC); err != nil {
		return err
	}
	path := filepath.Join(dir, rcFile)
	return os.WriteFile(path, []byte(strings.TrimSpace(port)+"\n"), 0o644)
}
