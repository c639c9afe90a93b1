// Package config loads CLI settings from defaults, an optional YAML file and
// ASMPARAMS_ environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the config file base name searched in the working directory.
	AppName = "asmparams"

	// EnvPrefix is the prefix for environment variables.
	EnvPrefix = "ASMPARAMS"
)

type Config struct {
	WorkspaceURL string        `mapstructure:"workspace_url"`
	ServiceURL   string        `mapstructure:"service_url"`
	TokenEnv     string        `mapstructure:"token_env"`
	Timeout      time.Duration `mapstructure:"timeout"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"` // workspace object info; 0 disables
	Log          struct {
		Debug  bool   `mapstructure:"debug"`
		Format string `mapstructure:"format"`
		File   string `mapstructure:"file"`
	} `mapstructure:"log"`
}

// Token reads the auth token from the environment variable named by TokenEnv.
func (c Config) Token() string {
	if c.TokenEnv == "" {
		return ""
	}
	return os.Getenv(c.TokenEnv)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("workspace_url", "https://kbase.us/services/ws")
	v.SetDefault("service_url", "https://kbase.us/services/service_wizard")
	v.SetDefault("token_env", "KB_AUTH_TOKEN")
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("cache_ttl", 10*time.Minute)
	v.SetDefault("log.debug", false)
	v.SetDefault("log.format", "human")
	v.SetDefault("log.file", "")
}

// Load reads cfgFile when set, otherwise asmparams.yaml from the working
// directory if present. A missing default file is not an error.
func Load(cfgFile string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadYAML decodes a plain YAML fixture file into out.
func LoadYAML(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
