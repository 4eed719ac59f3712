package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the project-local config file looked up when the user
// does not pass --config.
const DefaultConfigPath = ".blocksift.yaml"

// Config holds the file-level defaults for pass behavior. Flags on the
// command line override these.
type Config struct {
	CaseSensitive   bool     `yaml:"caseSensitive"`
	LiteralPatterns bool     `yaml:"literalPatterns"`
	ExtraTypes      []string `yaml:"extraTypes"`
	RemoveTypes     []string `yaml:"removeTypes"`
}

// LoadConfig reads the config file at path. A missing file is not an error:
// the zero config applies.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
