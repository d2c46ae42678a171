package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

const (
	envVarPrefix = "SVD"
	appName      = "svd"
)

type Config struct {
	Addr        string `envconfig:"SVD_ADDR"         yaml:"addr"`
	DownloadDir string `envconfig:"SVD_DOWNLOAD_DIR" yaml:"downloadDir"`
	QueueSize   int    `envconfig:"SVD_QUEUE_SIZE"   yaml:"queueSize"`
	Workers     int    `envconfig:"SVD_WORKERS"      yaml:"workers"`
	InstallTool bool   `envconfig:"SVD_INSTALL_TOOL" yaml:"installTool"`
}

// defaultConfig seeds the baseline the file and environment layers
// override. Defaults live here rather than in envconfig tags: a tag
// default is re-applied whenever the env var is unset, which would
// clobber values the config file already loaded.
func defaultConfig() Config {
	return Config{
		Addr:        "0.0.0.0:8001",
		DownloadDir: "./download",
		QueueSize:   100,
		Workers:     4,
		InstallTool: true,
	}
}

func LoadConfig() (*Config, error) {
	configFile := os.Getenv(envVarPrefix + "_CONFIG_FILE")
	if configFile == "" {
		configFile = filepath.Join(
			os.Getenv("HOME"),
			".config",
			appName+".yaml",
		)
	}

	c := defaultConfig()
	data, err := os.ReadFile(configFile)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		if err := yaml.UnmarshalStrict(data, &c); err != nil {
			return nil, fmt.Errorf("unmarshaling config file: %w", err)
		}
	}

	if err := envconfig.Process(envVarPrefix, &c); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}

	return &c, nil
}

func (c *Config) Validate() error {
	if y, e := func() (string, string) {
		if c.Addr == "" {
			return "addr", "ADDR"
		}
		if c.DownloadDir == "" {
			return "downloadDir", "DOWNLOAD_DIR"
		}
		if c.QueueSize < 1 {
			return "queueSize", "QUEUE_SIZE"
		}
		if c.Workers < 1 {
			return "workers", "WORKERS"
		}
		return "", ""
	}(); y != "" {
		return fmt.Errorf(
			"missing or invalid configuration: %s / %s_%s",
			y,
			envVarPrefix,
			e,
		)
	}
	return nil
}
