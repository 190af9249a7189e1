// Package config loads the settings of the deskcalc command from a TOML file,
// DESKCALC_* environment variables and command line flags, in increasing
// order of precedence.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/govalues/calculator"
	"github.com/govalues/calculator/internal/logging"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "DESKCALC"

type Config struct {
	Domain  calculator.Kind `toml:"domain" mapstructure:"domain"`
	Prompt  string          `toml:"prompt" mapstructure:"prompt"`
	History string          `toml:"history" mapstructure:"history"`
	Log     Log             `toml:"log" mapstructure:"log"`
}

type Log struct {
	Level  string `toml:"level" mapstructure:"level"`
	Format string `toml:"format" mapstructure:"format"`
}

func Default() *Config {
	return &Config{
		Domain: calculator.Float64,
		Prompt: "> ",
		Log: Log{
			Level:  "warn",
			Format: logging.FormatPlain,
		},
	}
}

// flagKeys maps configuration keys to the names of the flags that override them.
var flagKeys = map[string]string{
	"domain":     "domain",
	"prompt":     "prompt",
	"history":    "history",
	"log.level":  "log-level",
	"log.format": "log-format",
}

// Load reads the configuration.
// An empty file name skips the file, and flags that are not defined by
// the flag set are ignored.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("toml")
		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			err := v.BindPFlag(key, f)
			if err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	config := new(Config)
	err := v.Unmarshal(config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	)))
	if err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	_, err = logging.NewConsoleWriterWith(io.Discard, config.Log.Format)
	if err != nil {
		return nil, err
	}
	return config, nil
}

func setDefaults(v *viper.Viper, c *Config) {
	v.SetDefault("domain", c.Domain.String())
	v.SetDefault("prompt", c.Prompt)
	v.SetDefault("history", c.History)
	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.format", c.Log.Format)
}

// Store writes the configuration as TOML.
func Store(w io.Writer, c *Config) error {
	tree, err := toml.TreeFromMap(map[string]interface{}{
		"domain":  c.Domain.String(),
		"prompt":  c.Prompt,
		"history": c.History,
		"log": map[string]interface{}{
			"level":  c.Log.Level,
			"format": c.Log.Format,
		},
	})
	if err != nil {
		return err
	}
	_, err = tree.WriteTo(w)
	return err
}
