package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug                  = "debug"
	ConfigCPUProfile             = "cpu-profile"
	ConfigNumRounds              = "num-rounds"
	ConfigRoundTime              = "round-time"
	ConfigTickInterval           = "tick-interval"
	ConfigBonusPerSecond         = "bonus-per-second"
	ConfigRequiredLength         = "required-length"
	ConfigMinLength              = "min-length"
	ConfigMaxLength              = "max-length"
	ConfigLexiconPath            = "lexicon-path"
	ConfigLetterDistributionPath = "letter-distribution-path"
	ConfigRoundLog               = "round-log"
)

// Config wraps a viper instance. Values come from flags first, then
// WORDSPRINT_ environment variables, then defaults.
type Config struct {
	*viper.Viper
}

// DefaultConfig returns a config with no flags set.
func DefaultConfig() *Config {
	c := &Config{}
	// An empty argument list cannot fail to parse.
	_ = c.Load(nil)
	return c
}

func (c *Config) Load(args []string) error {
	c.Viper = viper.New()

	fs := pflag.NewFlagSet("wordsprint", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigCPUProfile, "", "file to write a CPU profile to")
	fs.Int(ConfigNumRounds, 10, "number of rounds in a game")
	fs.Duration(ConfigRoundTime, 15*time.Second, "time budget for a single round")
	fs.Duration(ConfigTickInterval, time.Second, "how often the round timer checks for cancellation")
	fs.Int(ConfigBonusPerSecond, 5, "bonus points for every second left on the clock")
	fs.Int(ConfigRequiredLength, 5, "required word length; 0 picks a random length every round")
	fs.Int(ConfigMinLength, 3, "minimum random word length")
	fs.Int(ConfigMaxLength, 10, "maximum random word length")
	fs.String(ConfigLexiconPath, "", "word list file, one word per line; empty uses the built-in list")
	fs.String(ConfigLetterDistributionPath, "", "letter distribution csv; empty uses English")
	fs.String(ConfigRoundLog, "", "file to append a YAML log of every round to")

	if err := fs.Parse(args); err != nil {
		return err
	}
	c.SetEnvPrefix("wordsprint")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	return c.BindPFlags(fs)
}

var secretMarkers = []string{"key", "token", "secret", "password"}

// SanitizedSettings is AllSettings with anything that looks like a
// credential masked, for logging.
func (c *Config) SanitizedSettings() map[string]any {
	settings := c.AllSettings()
	for k, v := range settings {
		lk := strings.ToLower(k)
		for _, m := range secretMarkers {
			if strings.Contains(lk, m) && v != "" {
				settings[k] = "********"
				break
			}
		}
	}
	return settings
}

// AdjustRelativePaths resolves relative data paths against the directory
// of the executable if they do not exist relative to the working directory.
func (c *Config) AdjustRelativePaths(basePath string) {
	for _, key := range []string{ConfigLexiconPath, ConfigLetterDistributionPath} {
		p := c.GetString(key)
		if p == "" || filepath.IsAbs(p) {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			continue
		}
		c.Set(key, filepath.Join(basePath, p))
	}
}
