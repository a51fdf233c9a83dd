// Package config provides YAML-based configuration with environment
// overrides for the model credentials.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Upload  UploadConfig  `yaml:"upload"`
	Model   ModelConfig   `yaml:"model"`
	Session SessionConfig `yaml:"session"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port                 int    `yaml:"port"`
	BindAddress          string `yaml:"bindAddress"`
	EnableCORS           bool   `yaml:"enableCors"`
	AllowOrigins         string `yaml:"allowOrigins"`
	ReadTimeout          int    `yaml:"readTimeoutSeconds"`
	WriteTimeout         int    `yaml:"writeTimeoutSeconds"`
	IdleTimeout          int    `yaml:"idleTimeoutSeconds"`
	BodyLimit            string `yaml:"bodyLimit"`
	EnableRequestLogging bool   `yaml:"enableRequestLogging"`
}

// UploadConfig restricts upload batches.
type UploadConfig struct {
	MaxFiles          int      `yaml:"maxFiles"`
	AllowedExtensions []string `yaml:"allowedExtensions"`
}

// ModelConfig selects the generative model. The API key is never read from
// the file; it comes from the GEMINI_API_KEY environment variable.
type ModelConfig struct {
	Name        string  `yaml:"name"`
	Temperature float32 `yaml:"temperature"`
}

// SessionConfig tunes session lifetime management.
type SessionConfig struct {
	TimeoutMinutes         int `yaml:"timeoutMinutes"`
	CleanupIntervalMinutes int `yaml:"cleanupIntervalMinutes"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:                 8090,
			BindAddress:          "0.0.0.0",
			EnableCORS:           true,
			AllowOrigins:         "*",
			ReadTimeout:          30,
			WriteTimeout:         120,
			IdleTimeout:          120,
			BodyLimit:            "64M",
			EnableRequestLogging: true,
		},
		Upload: UploadConfig{
			MaxFiles: 10,
			AllowedExtensions: []string{
				".pdf", ".docx", ".xlsx", ".txt", ".pptx", ".csv",
				".rtf", ".ipynb", ".py", ".java", ".js", ".jsx", ".go",
			},
		},
		Model: ModelConfig{
			Name:        "gemini-2.0-flash",
			Temperature: 0.2,
		},
		Session: SessionConfig{
			TimeoutMinutes:         30,
			CleanupIntervalMinutes: 5,
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults. A missing file
// is not an error: defaults apply. Environment variables override the model
// section afterwards (GEMINI_MODEL).
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Fall through to defaults.
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if name := os.Getenv("GEMINI_MODEL"); name != "" {
		cfg.Model.Name = name
	}
	return cfg, nil
}

// GetServerAddr returns the listen address.
func (c *AppConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.BindAddress, c.Server.Port)
}

// ExtensionAllowed reports whether a filename's extension is accepted for
// upload.
func (c *AppConfig) ExtensionAllowed(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range c.Upload.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
