// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package config loads dictionary configuration from YAML files, the
// environment and functional options.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/poiesic/lexicon/storage"
	"gopkg.in/yaml.v3"
)

// Environment variables read by FromEnv.
const (
	EnvDictionaryPath = "LEXICON_DICTIONARY_PATH"
	EnvFileType       = "LEXICON_FILE_TYPE"
	EnvPoolSize       = "LEXICON_POOL_SIZE"
)

// Config holds configuration for a dictionary session.
type Config struct {
	// DictionaryPath is the directory holding the category files.
	// Example: "/usr/share/wordnet/dict"
	DictionaryPath string `yaml:"dictionary_path"`

	// FileType names the storage backend.
	// Example: "file", "memory", "badger"
	FileType string `yaml:"file_type"`

	// PoolSize is the number of workers used to fan out Save, Edit and
	// Delete across handles. 0 runs them sequentially.
	// Default: 0
	PoolSize int `yaml:"pool_size"`

	// Params are passed to the backend factory alongside the path and
	// file type. They cannot override either.
	Params map[string]string `yaml:"params,omitempty"`
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithDictionaryPath sets the dictionary directory.
func WithDictionaryPath(path string) ConfigOption {
	return func(c *Config) {
		c.DictionaryPath = path
	}
}

// WithFileType sets the backend identifier.
func WithFileType(fileType string) ConfigOption {
	return func(c *Config) {
		c.FileType = fileType
	}
}

// WithPoolSize sets the fan-out worker pool size.
func WithPoolSize(size int) ConfigOption {
	return func(c *Config) {
		c.PoolSize = size
	}
}

// DefaultConfig returns a Config using the plain file backend.
// DictionaryPath has no default.
func DefaultConfig() *Config {
	return &Config{
		FileType: "file",
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithDictionaryPath("/usr/share/wordnet/dict"),
//	    WithFileType("badger"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form: surrounding
// whitespace is trimmed and the dictionary path is cleaned.
func (c *Config) Normalize() {
	c.FileType = strings.TrimSpace(c.FileType)
	c.DictionaryPath = strings.TrimSpace(c.DictionaryPath)
	if c.DictionaryPath != "" {
		c.DictionaryPath = filepath.Clean(c.DictionaryPath)
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
// Missing keys are reported as *storage.ConfigurationError so callers see
// the same error whether validation or backend resolution catches them.
func (c *Config) Validate() error {
	c.Normalize()

	if c.DictionaryPath == "" {
		return &storage.ConfigurationError{Key: storage.DictionaryPathKey}
	}
	if c.FileType == "" {
		return &storage.ConfigurationError{Key: storage.FileTypeKey}
	}
	if c.PoolSize < 0 {
		return errors.New("config: pool_size cannot be negative")
	}
	return nil
}

// BackendParams returns the configuration bundle consumed by backend
// resolution. Empty values are left out so that resolution reports them
// as missing.
func (c *Config) BackendParams() storage.Params {
	params := make(storage.Params, len(c.Params)+2)
	for k, v := range c.Params {
		params[k] = v
	}
	delete(params, storage.DictionaryPathKey)
	delete(params, storage.FileTypeKey)
	if c.DictionaryPath != "" {
		params[storage.DictionaryPathKey] = c.DictionaryPath
	}
	if c.FileType != "" {
		params[storage.FileTypeKey] = c.FileType
	}
	return params
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration as YAML.
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables already set. Missing files are
// ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// FromEnv overrides fields of c with any LEXICON_* variables that are set.
func (c *Config) FromEnv() error {
	if v, ok := os.LookupEnv(EnvDictionaryPath); ok {
		c.DictionaryPath = v
	}
	if v, ok := os.LookupEnv(EnvFileType); ok {
		c.FileType = v
	}
	if v, ok := os.LookupEnv(EnvPoolSize); ok {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvPoolSize, err)
		}
		c.PoolSize = size
	}
	return nil
}
