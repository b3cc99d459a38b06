// Package config loads httperror.Settings from the environment and an
// optional YAML file.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/next-trace/scg-httperror/httperror"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "HTTPERROR"

// Config holds the error rendering configuration
type Config struct {
	IncludeStack   bool           `mapstructure:"include_stack"`
	DefaultContext map[string]any `mapstructure:"default_context"`
}

// Load reads configuration from HTTPERROR_* environment variables and, when
// present, an httperror.yaml file in one of paths (default "." and
// "./config"). A missing file is not an error.
func Load(paths ...string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("httperror")
	v.SetConfigType("yaml")

	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}

	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "config: read httperror.yaml")
		}
	}

	return decode(v)
}

// LoadFile reads configuration from the YAML file at path, with environment
// variables taking precedence.
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}

	return decode(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("include_stack", true)
	v.SetDefault("default_context", map[string]any{})
}

// decode unmarshals v. Viper folds keys to lower case, so default_context keys
// arrive lower-cased.
func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: decode")
	}

	if len(cfg.DefaultContext) == 0 {
		cfg.DefaultContext = nil
	}

	return &cfg, nil
}

// Apply copies the configuration onto s.
func (c *Config) Apply(s *httperror.Settings) {
	s.SetIncludeStack(c.IncludeStack)
	s.SetDefaultContext(c.DefaultContext)
}

// Settings returns fresh Settings configured from c.
func (c *Config) Settings() *httperror.Settings {
	s := httperror.NewSettings()
	c.Apply(s)

	return s
}
