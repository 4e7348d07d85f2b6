package circuits

import (
	"github.com/pingcap/errors"
	"github.com/spf13/viper"
)

// Config holds the settings for one run of the circuits driver.
// Values are populated from .circuits.yaml, CIRCUITS_* env vars, and CLI flags.
type Config struct {
	Input       string `mapstructure:"input"`
	Connections int    `mapstructure:"connections"`
	Top         int    `mapstructure:"top"`
	Debug       bool   `mapstructure:"debug"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input", "")
	v.SetDefault("connections", 1000)
	v.SetDefault("top", 3)
	v.SetDefault("debug", false)
}

// LoadConfig reads the configuration out of v, applying built-in defaults
// for any values not set by config file, environment, or flags.
func LoadConfig(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Annotate(err, "decode config")
	}
	if cfg.Input == "" {
		return Config{}, errors.New("no input file given")
	}
	return cfg, nil
}
