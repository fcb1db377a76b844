package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/schedulenest/internal/paths"
	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyBackend         = "backend"
	cfgKeyDataDir         = "data_dir"
	cfgKeySyncStrategy    = "sync_strategy"
	cfgKeyQuotaBytes      = "quota_bytes"
	cfgKeyProtectDefaults = "protect_default_folders"
	cfgKeyLogLevel        = "log_level"

	// defaultQuotaBytes matches the usual browser storage budget.
	defaultQuotaBytes = 5 * 1024 * 1024
	defaultLogLevel   = "warn"
)

// configFile is the structure written to config.yaml on first run.
type configFile struct {
	Backend               string `yaml:"backend"`
	DataDir               string `yaml:"data_dir,omitempty"`
	SyncStrategy          string `yaml:"sync_strategy"`
	QuotaBytes            int64  `yaml:"quota_bytes"`
	ProtectDefaultFolders bool   `yaml:"protect_default_folders"`
	LogLevel              string `yaml:"log_level"`
}

func defaultConfigFile() configFile {
	return configFile{
		Backend:               types.BackendSQLite,
		SyncStrategy:          types.SyncImmediate,
		QuotaBytes:            defaultQuotaBytes,
		ProtectDefaultFolders: true,
		LogLevel:              defaultLogLevel,
	}
}

// loadConfig reads config.yaml from configDir using Viper. It creates the
// directory and a default config.yaml on first run.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	def := defaultConfigFile()
	v := viper.New()
	v.SetDefault(cfgKeyBackend, def.Backend)
	v.SetDefault(cfgKeySyncStrategy, def.SyncStrategy)
	v.SetDefault(cfgKeyQuotaBytes, def.QuotaBytes)
	v.SetDefault(cfgKeyProtectDefaults, def.ProtectDefaultFolders)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile writes config.yaml with default values if the file
// does not exist.
func ensureDefaultConfigFile(configDir string) error {
	path := paths.ConfigFile(configDir)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	def := defaultConfigFile()
	data, err := yaml.Marshal(&def)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
