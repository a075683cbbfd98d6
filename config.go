package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ExportDirectory string `yaml:"export_directory" toml:"export_directory"`
	Confirmations   *bool  `yaml:"confirmations" toml:"confirmations"`
	ShowGrid        *bool  `yaml:"show_grid" toml:"show_grid"`
	ShowLayers      *bool  `yaml:"show_layers" toml:"show_layers"`
	Zoom            int    `yaml:"zoom" toml:"zoom"`
	DeviceFrame     string `yaml:"device_frame" toml:"device_frame"`
	DefaultTool     string `yaml:"default_tool" toml:"default_tool"`
	LogFile         string `yaml:"log_file" toml:"log_file"`
}

var configNames = []string{".wiremrc.yaml", ".wiremrc.yml", ".wiremrc.toml"}

func boolPtr(b bool) *bool {
	return &b
}

func (c *Config) defaults() {
	if c.Confirmations == nil {
		c.Confirmations = boolPtr(true)
	}
	if c.ShowGrid == nil {
		c.ShowGrid = boolPtr(true)
	}
	if c.ShowLayers == nil {
		c.ShowLayers = boolPtr(true)
	}
	if c.Zoom <= 0 {
		c.Zoom = defaultZoom
	}
	if c.DeviceFrame == "" {
		c.DeviceFrame = "none"
	}
	if c.DefaultTool == "" {
		c.DefaultTool = "select"
	}
}

func defaultConfig() *Config {
	c := &Config{}
	c.defaults()
	return c
}

// loadConfig reads $WIREM_CONFIG or the first rc file found in the home
// directory. Any problem falls back to defaults; the returned error says why.
func loadConfig() (*Config, error) {
	path := os.Getenv("WIREM_CONFIG")
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return defaultConfig(), nil
		}
		for _, name := range configNames {
			candidate := filepath.Join(homeDir, name)
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}
	if path == "" {
		return defaultConfig(), nil
	}
	cfg, err := loadConfigFile(path)
	if err != nil {
		return defaultConfig(), err
	}
	return cfg, nil
}

// loadConfigFile parses YAML or TOML depending on the file extension.
func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.ExportDirectory != "" {
		cfg.ExportDirectory = expandPath(cfg.ExportDirectory)
	}
	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}
	cfg.defaults()
	return cfg, nil
}

func expandPath(value string) string {
	if strings.HasPrefix(value, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// GetExportPath places filename in the export directory, creating it.
func (c *Config) GetExportPath(filename string) (string, error) {
	if c.ExportDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.ExportDirectory, 0755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	return filepath.Join(c.ExportDirectory, filename), nil
}

// apply pushes the view related settings into a fresh session.
func (c *Config) apply(s *Session, logger *slog.Logger) {
	view := s.Viewport()
	view.ShowGrid = *c.ShowGrid
	view.SetZoom(c.Zoom)
	if view.Zoom != c.Zoom {
		logger.Warn("zoom adjusted", "requested", c.Zoom, "zoom", view.Zoom)
	}
	if !view.SetFrame(c.DeviceFrame) {
		logger.Warn("unknown device frame", "frame", c.DeviceFrame)
	}
	tool, ok := parseTool(c.DefaultTool)
	if !ok {
		logger.Warn("unknown default tool", "tool", c.DefaultTool)
	}
	s.Controller().SetTool(tool)
}
