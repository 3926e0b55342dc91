package service

import (
	"os"
	"path/filepath"

	"github.com/ludo-technologies/atomscan/domain"
	"github.com/ludo-technologies/atomscan/internal/config"
)

// ConfigurationLoaderImpl loads scan configuration from disk
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader service
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from the specified path
func (c *ConfigurationLoaderImpl) LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}
	return cfg, nil
}

// LoadConfigForTarget loads configuration for a scan target, discovering a
// config file near the target when no explicit path is given
func (c *ConfigurationLoaderImpl) LoadConfigForTarget(configPath, targetPath string) (*config.Config, error) {
	cfg, err := config.LoadConfigWithTarget(configPath, targetPath)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}
	return cfg, nil
}

// LoadDefaultConfig loads the default configuration, falling back to the
// built-in defaults when no config file is discoverable
func (c *ConfigurationLoaderImpl) LoadDefaultConfig() *config.Config {
	cfg, err := config.LoadConfigWithTarget("", "")
	if err == nil {
		return cfg
	}
	return config.DefaultConfig()
}

// FindDefaultConfigFile searches for a default configuration file in the
// current directory and its parents
func (c *ConfigurationLoaderImpl) FindDefaultConfigFile() string {
	configFiles := []string{
		"atomscan.yaml",
		"atomscan.yml",
		".atomscan.yaml",
		".atomscan.yml",
		"atomscan.json",
		".atomscan.json",
	}

	for _, file := range configFiles {
		if _, err := os.Stat(file); err == nil {
			return file
		}
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, file := range configFiles {
			configPath := filepath.Join(currentDir, file)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}
