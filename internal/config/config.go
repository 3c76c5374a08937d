package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultBatchSize is the default number of file pairs per batch
	DefaultBatchSize = 250

	// DefaultFolderPrefix is the default prefix for batch folder names
	DefaultFolderPrefix = "Batch"

	// DefaultTextExt is the default extension for text files
	DefaultTextExt = ".txt"

	// DefaultImageExt is the default extension for image files
	DefaultImageExt = ".jpg"

	// DefaultCombinedName is the default name for the concatenated text file
	DefaultCombinedName = "combined.txt"

	// DefaultTransferMode is the default transfer mode
	DefaultTransferMode = "copy"

	// DefaultEncoding is the default text encoding for reading and writing
	DefaultEncoding = "utf-8"

	// Environment variables for configuration
	EnvBatchSize    = "BATCH_ORGANIZER_BATCH_SIZE"
	EnvFolderPrefix = "BATCH_ORGANIZER_PREFIX"
	EnvTransferMode = "BATCH_ORGANIZER_MODE"
)

// Config holds the application configuration
type Config struct {
	BatchSize    int    `json:"batch_size,omitempty" yaml:"batch_size,omitempty"`
	FolderPrefix string `json:"folder_prefix,omitempty" yaml:"folder_prefix,omitempty"`
	TextExt      string `json:"text_ext,omitempty" yaml:"text_ext,omitempty"`
	ImageExt     string `json:"image_ext,omitempty" yaml:"image_ext,omitempty"`
	CombinedName string `json:"combined_name,omitempty" yaml:"combined_name,omitempty"`
	TransferMode string `json:"transfer_mode,omitempty" yaml:"transfer_mode,omitempty"`
	Encoding     string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
}

// New creates a Config with default values
func New() *Config {
	return &Config{
		BatchSize:    DefaultBatchSize,
		FolderPrefix: DefaultFolderPrefix,
		TextExt:      DefaultTextExt,
		ImageExt:     DefaultImageExt,
		CombinedName: DefaultCombinedName,
		TransferMode: DefaultTransferMode,
		Encoding:     DefaultEncoding,
	}
}

// LoadFromFile loads configuration from a JSON or YAML file. The format is
// chosen by the file extension. When path is empty the default locations
// in the home directory are tried, and a default config is returned when
// no file is found.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		// Try to find config in default locations
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return New(), nil // Return default config if we can't find home dir
		}

		for _, name := range []string{".batch-organizer.json", ".batch-organizer.yaml", ".batch-organizer.yml"} {
			candidate := filepath.Join(homeDir, name)
			if fileExists(candidate) {
				path = candidate
				break
			}
		}
	}

	cfg := New()
	if path != "" && fileExists(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		if err := unmarshalConfig(path, data, cfg); err != nil {
			return nil, err
		}
	}

	// Backfill any fields the file left empty
	cfg.applyDefaults()

	return cfg, nil
}

// SaveToFile saves the configuration to a JSON or YAML file chosen by the
// file extension. An empty path saves to the default JSON location in the
// home directory.
func (c *Config) SaveToFile(path string) error {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return errors.New("cannot determine home directory for config file")
		}
		path = filepath.Join(homeDir, ".batch-organizer.json")
	}

	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// GetBatchSize returns the batch size, with the environment variable taking
// priority over the config file value.
func (c *Config) GetBatchSize() int {
	if env := os.Getenv(EnvBatchSize); env != "" {
		if size, err := strconv.Atoi(env); err == nil {
			return size
		}
	}
	if c.BatchSize > 0 {
		return c.BatchSize
	}
	return DefaultBatchSize
}

// GetFolderPrefix returns the folder prefix, with the environment variable
// taking priority over the config file value.
func (c *Config) GetFolderPrefix() string {
	if env := os.Getenv(EnvFolderPrefix); env != "" {
		return env
	}
	if c.FolderPrefix != "" {
		return c.FolderPrefix
	}
	return DefaultFolderPrefix
}

// GetTransferMode returns the transfer mode, with the environment variable
// taking priority over the config file value.
func (c *Config) GetTransferMode() string {
	if env := os.Getenv(EnvTransferMode); env != "" {
		return env
	}
	if c.TransferMode != "" {
		return c.TransferMode
	}
	return DefaultTransferMode
}

// unmarshalConfig parses config file data based on the file extension
func unmarshalConfig(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse JSON config %s: %w", path, err)
		}
	}
	return nil
}

// applyDefaults fills empty fields with built-in defaults
func (c *Config) applyDefaults() {
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.FolderPrefix == "" {
		c.FolderPrefix = DefaultFolderPrefix
	}
	if c.TextExt == "" {
		c.TextExt = DefaultTextExt
	}
	if c.ImageExt == "" {
		c.ImageExt = DefaultImageExt
	}
	if c.CombinedName == "" {
		c.CombinedName = DefaultCombinedName
	}
	if c.TransferMode == "" {
		c.TransferMode = DefaultTransferMode
	}
	if c.Encoding == "" {
		c.Encoding = DefaultEncoding
	}
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
