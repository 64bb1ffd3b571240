package pipeline

import (
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridpark/pkg/errors"
)

// ConfigEnv names the environment variable consulted when no config path is given.
const ConfigEnv = "GRIDPARK_CONFIG"

// ConfigPath returns flagValue if set, otherwise the value of ConfigEnv.
// An empty result means no config file.
func ConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(ConfigEnv)
}

// Config is a decoded run configuration file.
type Config struct {
	Options Options

	// defined holds the top-level keys present in the file.
	defined map[string]bool
}

// IsDefined reports whether the file set key, even to a zero value such as
// unique = false or limit = 0.
func (c *Config) IsDefined(key string) bool {
	return c != nil && c.defined[key]
}

// LoadConfig decodes a TOML run configuration. Keys are the snake_case TOML
// tags of Options; unknown keys are rejected so typos do not silently fall
// back to defaults. An empty path yields an empty Config.
//
//	size = 3
//	tiles = "G,T"
//	unique = true
//	formats = ["csv", "cost", "quality"]
//	output_dir = "out"
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{defined: map[string]bool{}}
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}

	md, err := toml.DecodeFile(path, &cfg.Options)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	for _, k := range md.Keys() {
		if len(k) == 1 {
			cfg.defined[k[0]] = true
		}
	}
	return cfg, nil
}
