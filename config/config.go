package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvDBName overrides the database file location, the only environment
// variable the till reads.
const EnvDBName = "TILLPOS_DB"

type SysConfig struct {
	Workdir  string `yaml:"workdir"`
	Location string `yaml:"location"`
}

type DBConfig struct {
	Name string `yaml:"name"`
}

type LogConfig struct {
	Mode       string `yaml:"mode"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type ReceiptConfig struct {
	Filename string `yaml:"filename"`
}

type AppConfig struct {
	System   SysConfig     `yaml:"system"`
	Database DBConfig      `yaml:"database"`
	Logger   LogConfig     `yaml:"logger"`
	Receipt  ReceiptConfig `yaml:"receipt"`
}

// DefaultAppConfig returns the configuration used when no config file exists.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Workdir:  ".",
			Location: "America/Bogota",
		},
		Database: DBConfig{
			Name: "tillpos.db",
		},
		Logger: LogConfig{
			Mode:       "development",
			FileEnable: false,
			Filename:   "tillpos.log",
		},
		Receipt: ReceiptConfig{
			Filename: "purchase_receipt.pdf",
		},
	}
}

// LoadConfig reads the yaml configuration file, falling back to defaults when
// the file does not exist. The TILLPOS_DB environment variable overrides the
// database location.
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if name := os.Getenv(EnvDBName); name != "" {
		cfg.Database.Name = name
	}
	return cfg, nil
}

// DBPath resolves the database file location against the workdir.
func (c *AppConfig) DBPath() string {
	if filepath.IsAbs(c.Database.Name) {
		return c.Database.Name
	}
	return filepath.Join(c.System.Workdir, c.Database.Name)
}

// ReceiptPath resolves the receipt file location against the workdir.
func (c *AppConfig) ReceiptPath() string {
	if filepath.IsAbs(c.Receipt.Filename) {
		return c.Receipt.Filename
	}
	return filepath.Join(c.System.Workdir, c.Receipt.Filename)
}
