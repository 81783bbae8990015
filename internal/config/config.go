package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for lexd.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Lexicon LexiconConfig `mapstructure:"lexicon"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host  string `mapstructure:"host"`
	Port  int    `mapstructure:"port"`
	Debug bool   `mapstructure:"debug"`
}

// LexiconConfig holds the dictionary settings.
type LexiconConfig struct {
	// Wordlist is the path of a file with one word per line, loaded at
	// startup. Empty means start with an empty dictionary.
	Wordlist string `mapstructure:"wordlist"`
	// MaxDistance is the default substitution distance for the suggest
	// endpoint when the request does not carry its own.
	MaxDistance int `mapstructure:"max_distance"`
}

// Load reads configuration from an optional file plus LEXD_* environment
// variables, falling back to defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("LEXD")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.debug", false)
	v.SetDefault("lexicon.wordlist", "")
	v.SetDefault("lexicon.max_distance", 2)
}

// Addr returns the host:port the server should listen on.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate checks the configuration for values no component can run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Lexicon.MaxDistance < 0 {
		return fmt.Errorf("invalid max distance: %d", c.Lexicon.MaxDistance)
	}
	return nil
}
