package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/asnowfix/switchbot-id/pkg/switchbot"
	"github.com/go-logr/logr"
	"github.com/spf13/viper"
)

const (
	KeyToken   = "token"
	KeySecret  = "secret"
	KeyBaseURL = "base_url"
	KeyTimeout = "timeout"
)

// Config holds the credentials and endpoint used to reach the SwitchBot API
type Config struct {
	Token   string        `json:"token" yaml:"token" mapstructure:"token"`
	Secret  string        `json:"secret,omitempty" yaml:"secret,omitempty" mapstructure:"secret"`
	BaseURL string        `json:"base_url" yaml:"base_url" mapstructure:"base_url"`
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// New returns a viper instance with defaults, SWITCHBOT_* environment
// bindings and the standard config search path.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyBaseURL, switchbot.DefaultBaseURL)
	v.SetDefault(KeyTimeout, switchbot.DefaultTimeout)

	v.SetEnvPrefix("SWITCHBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about
	for _, k := range []string{KeyToken, KeySecret, KeyBaseURL, KeyTimeout} {
		_ = v.BindEnv(k)
	}

	v.SetConfigName("switchbot")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "switchbot-id"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".switchbot-id"))
	}
	v.AddConfigPath(".")
	return v
}

// Read loads the config file: file when given, else the first one found on
// the search path. A missing file on the search path is not an error.
func Read(log logr.Logger, v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
	}
	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			log.V(1).Info("No config file found, using flags and environment")
			return nil
		}
		return fmt.Errorf("read config %s: %w", v.ConfigFileUsed(), err)
	}
	log.Info("Loaded config", "file", v.ConfigFileUsed())
	return nil
}

// Load decodes the merged flag/env/file settings
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	c.Token = strings.TrimSpace(c.Token)
	c.Secret = strings.TrimSpace(c.Secret)
	if c.BaseURL == "" {
		c.BaseURL = switchbot.DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = switchbot.DefaultTimeout
	}
	return &c, nil
}

// Validate reports switchbot.ErrMissingToken when no token was configured
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("%w: use --token, SWITCHBOT_TOKEN or the %q config key", switchbot.ErrMissingToken, KeyToken)
	}
	return nil
}

// Redacted returns a copy safe to print
func (c Config) Redacted() Config {
	c.Token = mask(c.Token)
	c.Secret = mask(c.Secret)
	return c
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + strings.Repeat("*", len(s)-8) + s[len(s)-4:]
}
