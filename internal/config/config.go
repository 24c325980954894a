package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xxxsen/common/logger"
	"gopkg.in/yaml.v3"
)

const (
	defaultHostFile   = "./host.conf"
	defaultHeaderFile = "./header.conf"
	defaultBackupDir  = "."
)

// Config is the root runtime configuration.
type Config struct {
	HostFile   string           `json:"host_file" yaml:"host_file"`
	HeaderFile string           `json:"header_file" yaml:"header_file"`
	Backup     BackupConfig     `json:"backup" yaml:"backup"`
	Log        logger.LogConfig `json:"log" yaml:"log"`
}

type BackupConfig struct {
	Dir         string `json:"dir" yaml:"dir"`
	SkipMissing bool   `json:"skip_missing" yaml:"skip_missing"`
}

// Default returns the settings used when no config file is given.
func Default() *Config {
	return &Config{
		HostFile:   defaultHostFile,
		HeaderFile: defaultHeaderFile,
		Backup: BackupConfig{
			Dir: defaultBackupDir,
		},
		Log: logger.LogConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// Load reads the configuration file from disk. Keys left out keep their
// defaults, an empty path yields Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
