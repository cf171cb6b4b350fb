package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name searched for on disk.
const FileName = "x800.yaml"

// EmbeddedSource is reported by Load when no file was found.
const EmbeddedSource = "embedded"

// Load reads the configuration.
// Search order: customPath -> ~/.x800/x800.yaml -> ./configs/x800.yaml -> embedded default.
// Values missing from a file keep their defaults. The returned string names
// the source that was used.
func Load(customPath string) (Config, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, cfg.Validate()
	}

	for _, path := range searchPaths() {
		cfg, err := loadFile(path)
		if err != nil {
			// Unreadable or broken files lower in priority are skipped.
			continue
		}
		return cfg, path, cfg.Validate()
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), EmbeddedSource, nil
	}
	return cfg, EmbeddedSource, cfg.Validate()
}

func searchPaths() []string {
	var paths []string
	if dir := UserDir(); dir != "" {
		paths = append(paths, filepath.Join(dir, FileName))
	}
	return append(paths, filepath.Join("configs", FileName))
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return Default(), fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// parse overlays data onto the defaults.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// UserDir returns ~/.x800, or empty if the home directory is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".x800")
}

// ExpandPath replaces a leading ~ with the home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
