package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "penny.yaml"

// Config represents the top-level penny.yaml configuration.
type Config struct {
	DataFile string       `yaml:"data_file"`
	Export   ExportConfig `yaml:"export"`
}

// ExportConfig holds the default export destinations.
type ExportConfig struct {
	JSONFile string `yaml:"json_file"`
	CSVFile  string `yaml:"csv_file"`
}

// Load reads a penny.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault reads path, falling back to Default when the file does
// not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the stock file locations.
func Default() *Config {
	return &Config{
		DataFile: "finance_data.json",
		Export: ExportConfig{
			JSONFile: "penny_export.json",
			CSVFile:  "penny_export.csv",
		},
	}
}
