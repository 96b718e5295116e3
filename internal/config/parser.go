package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	apperrors "github.com/valger11/suomifi-ui-components/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk, applies defaults,
// validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return ParseBytes(path, data)
}

// ParseBytes parses a configuration document. source names it in errors.
func ParseBytes(source string, data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, apperrors.NewParseError(source, extractLine(err), err)
	}

	cfg.ApplyDefaults()
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ParseThemeFile parses and validates a theme document.
func ParseThemeFile(source string, data []byte) (*ThemeFile, error) {
	var file ThemeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, apperrors.NewParseError(source, extractLine(err), err)
	}
	if err := ValidateThemeFile(&file); err != nil {
		return nil, err
	}
	return &file, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
