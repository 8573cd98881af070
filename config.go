package hillclimb

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ToolConfig is the file based configuration of the hillclimb tool.
type ToolConfig struct {
	Seed         int64              `toml:"seed" yaml:"seed"`
	MaxAge       int                `toml:"max_age" yaml:"max_age"`
	MaxGroupSize int                `toml:"max_group_size" yaml:"max_group_size"`
	Debug        bool               `toml:"debug" yaml:"debug"`
	Persistence  *PersistenceConfig `toml:"persistence" yaml:"persistence"`
	Phrase       *PhraseConfig      `toml:"phrase" yaml:"phrase"`
	Sort         *SortConfig        `toml:"sort" yaml:"sort"`
}

type PhraseConfig struct {
	Target  string `toml:"target" yaml:"target"`
	GeneSet string `toml:"gene_set" yaml:"gene_set"`
}

type SortConfig struct {
	Numbers []int `toml:"numbers" yaml:"numbers"`
}

// DefaultToolConfig is used for anything a config file leaves unset.
func DefaultToolConfig() *ToolConfig {
	return &ToolConfig{
		MaxAge:       NoAgeLimit,
		MaxGroupSize: 4,
		Phrase: &PhraseConfig{
			Target:  "Hello World!",
			GeneSet: " abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ!.",
		},
		Sort: &SortConfig{
			Numbers: []int{9, 3, 7, 1, 8, 2, 6, 0, 5, 4},
		},
	}
}

// LoadToolConfig reads a TOML or YAML file (chosen by extension) over the
// defaults.
func LoadToolConfig(path string) (*ToolConfig, error) {
	config := DefaultToolConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read tool config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tool config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tool config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config extension %q", ErrInvalidConfig, ext)
	}

	if config.MaxGroupSize < 1 {
		return nil, fmt.Errorf("%w: max_group_size must be at least 1", ErrInvalidConfig)
	}
	return config, nil
}
