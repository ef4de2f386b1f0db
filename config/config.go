package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug         = "debug"
	ConfigFile          = "config"
	ConfigWordList      = "word-list"
	ConfigHistoryFile   = "history-file"
	ConfigLogFile       = "log-file"
	ConfigDefaultRounds = "default-rounds"

	EnvPrefix = "GALLOWS"
)

type Config struct {
	*viper.Viper
}

func defaultHistoryFile() string {
	return filepath.Join(os.TempDir(), "gallows_history")
}

// DefaultConfig returns a config holding only the built-in defaults.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigWordList, []string{})
	c.SetDefault(ConfigHistoryFile, defaultHistoryFile())
	c.SetDefault(ConfigLogFile, "")
	c.SetDefault(ConfigDefaultRounds, 1)
	return c
}

// BindFlags registers the command-line flags that Load reads.
func BindFlags(fs *pflag.FlagSet) {
	fs.Bool(ConfigDebug, false, "debug logging (env: GALLOWS_DEBUG)")
	fs.String(ConfigFile, "", "path to a yaml config file")
	fs.StringSlice(ConfigWordList, nil, "word list file(s), .txt or .yaml; repeatable (env: GALLOWS_WORD_LIST, space separated)")
	fs.String(ConfigHistoryFile, defaultHistoryFile(), "readline history file (env: GALLOWS_HISTORY_FILE)")
	fs.String(ConfigLogFile, "", "write logs here instead of stderr; the tui discards logs without it (env: GALLOWS_LOG_FILE)")
	fs.Int(ConfigDefaultRounds, 1, "rounds for `new` when no count is given (env: GALLOWS_DEFAULT_ROUNDS)")
}

// Load layers, from lowest to highest precedence, a config file, GALLOWS_*
// environment variables and the flags in fs. fs may be nil.
func (c *Config) Load(fs *pflag.FlagSet) error {
	c.SetEnvPrefix(EnvPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	explicit := ""
	if fs != nil {
		if f := fs.Lookup(ConfigFile); f != nil {
			explicit = f.Value.String()
		}
	}
	if explicit == "" {
		explicit = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if explicit != "" {
		c.SetConfigFile(explicit)
	} else {
		c.SetConfigName("gallows")
		c.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			c.AddConfigPath(filepath.Join(dir, "gallows"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			c.AddConfigPath(filepath.Join(home, ".gallows"))
		}
		c.AddConfigPath(".")
	}
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	if fs != nil {
		if err := c.BindPFlags(fs); err != nil {
			return err
		}
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	if r := c.GetInt(ConfigDefaultRounds); r < 1 {
		return fmt.Errorf("invalid %s (must be at least 1): %d", ConfigDefaultRounds, r)
	}
	return nil
}

func (c *Config) DebugLogging() bool { return c.GetBool(ConfigDebug) }
func (c *Config) WordLists() []string { return c.GetStringSlice(ConfigWordList) }
func (c *Config) HistoryFile() string { return c.GetString(ConfigHistoryFile) }
func (c *Config) LogFile() string { return c.GetString(ConfigLogFile) }
func (c *Config) DefaultRounds() int { return c.GetInt(ConfigDefaultRounds) }

// SanitizedSettings is what gets logged at startup.
func (c *Config) SanitizedSettings() map[string]any {
	return map[string]any{
		ConfigDebug:         c.DebugLogging(),
		ConfigWordList:      c.WordLists(),
		ConfigHistoryFile:   c.HistoryFile(),
		ConfigLogFile:       c.LogFile(),
		ConfigDefaultRounds: c.DefaultRounds(),
		ConfigFile:          c.ConfigFileUsed(),
	}
}
