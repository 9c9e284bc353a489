package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is used when CONFIG_PATH is not set.
const DefaultPath = "./configs/catalog.yaml"

// Config holds all driver configuration
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Knapsack KnapsackConfig `yaml:"knapsack"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// CatalogConfig points at the item definitions
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// KnapsackConfig holds the weight limits the driver applies
type KnapsackConfig struct {
	MaxItemWeightGrammes int `yaml:"max_item_weight_grammes"`
	PartitionGrammes     int `yaml:"partition_grammes"`
}

// PathFromEnv returns CONFIG_PATH or DefaultPath.
func PathFromEnv() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes configuration from YAML and fills in defaults
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if not provided
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = "./configs/items.yaml"
	}
	if cfg.Knapsack.MaxItemWeightGrammes == 0 {
		cfg.Knapsack.MaxItemWeightGrammes = 1000
	}
	if cfg.Knapsack.PartitionGrammes == 0 {
		cfg.Knapsack.PartitionGrammes = cfg.Knapsack.MaxItemWeightGrammes
	}

	return &cfg, nil
}
