package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vonix-io/vapi/internal/constants"
)

// CLIConfig is the on-disk shape of ~/.vonix/config.yml.
type CLIConfig struct {
	API       string `yaml:"api,omitempty"`
	AuthID    string `yaml:"auth_id,omitempty"`
	AuthToken string `yaml:"auth_token,omitempty"`
	Output    string `yaml:"output,omitempty"`
}

// ConfigPersister writes CLI configuration to the config file.
type ConfigPersister struct {
	mutex sync.Mutex
}

// NewConfigPersister creates a new config persister.
func NewConfigPersister() *ConfigPersister {
	return &ConfigPersister{}
}

// configPath returns the config file location, creating the directory
// when needed. The directory is user-only; credentials live here.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	configDir := filepath.Join(home, ".vonix")
	if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	return filepath.Join(configDir, "config.yml"), nil
}

// Load reads the config file, returning an empty config when absent.
func (p *ConfigPersister) Load() (*CLIConfig, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &CLIConfig{}, nil
		}

		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config CLIConfig

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &config, nil
}

// Save writes the config file with owner-only permissions.
func (p *ConfigPersister) Save(config *CLIConfig) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
