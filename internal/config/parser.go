package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	ansierrors "github.com/alexisbeaulieu97/ansikit/pkg/errors"
)

// EnvConfigPath names the environment variable consulted when no --config
// flag is given.
const EnvConfigPath = "ANSIKIT_CONFIG"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk, validates it, and
// returns the result layered over Default.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ansierrors.NewParseError(path, 0, err)
	}
	return parseBytes(path, data)
}

func parseBytes(path string, data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, ansierrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load resolves the config file from path, then $ANSIKIT_CONFIG, and falls
// back to Default when neither is set.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	return ParseConfig(path)
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
