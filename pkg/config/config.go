package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ssargent/yxdb/pkg/format"
)

// Config represents the yxdb tool configuration
type Config struct {
	CacheDir string  `yaml:"cache_dir"`
	Writer   Writer  `yaml:"writer"`
	CSV      CSV     `yaml:"csv"`
	Logging  Logging `yaml:"logging"`
}

// Writer contains file-writing configuration
type Writer struct {
	// BlockSize bounds payload bytes per block; values above the
	// decompression buffer are clamped so written files stay readable.
	BlockSize int `yaml:"block_size"`
}

// CSV contains CSV import/export configuration
type CSV struct {
	Delimiter string `yaml:"delimiter"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		CacheDir: defaultCacheDir(),
		Writer: Writer{
			BlockSize: format.MaxBlockPayload,
		},
		CSV: CSV{
			Delimiter: ",",
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".yxdb-cache"
	}
	return filepath.Join(home, ".yxdb", "cache")
}

// LoadConfig loads configuration from the specified path, applying
// defaults for anything the file leaves unset.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	config.normalize()
	return config, nil
}

// LoadOrDefault loads the config at path when it exists and falls back
// to defaults when it does not.
func LoadOrDefault(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return LoadConfig(configPath)
}

// Save writes the configuration to the specified path
func (c *Config) Save(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) normalize() {
	if c.Writer.BlockSize <= 0 || c.Writer.BlockSize > format.MaxBlockPayload {
		c.Writer.BlockSize = format.MaxBlockPayload
	}
	if c.CSV.Delimiter == "" {
		c.CSV.Delimiter = ","
	}
}

// DefaultConfigPath returns the default location of the config file.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".yxdb.yaml"
	}
	return filepath.Join(home, ".yxdb.yaml")
}
