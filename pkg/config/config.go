package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/confrec/pkg/errors"
)

// Config holds the loaded engine settings
type Config struct {
	k *koanf.Koanf
}

// userConfigNames are the accepted filenames under
// <XDG_CONFIG_HOME>/confrec/, in lookup order. Only the first one found is
// loaded.
var userConfigNames = []string{"confrec.toml", "confrec.yaml", "confrec.yml"}

// Load builds the configuration: built-in defaults first, then the user's
// config file under <XDG_CONFIG_HOME>/confrec/ if one exists, then an
// explicit path if given. Config files may be TOML or YAML; the parser is
// chosen by extension like the manifest loader.
func Load(explicitPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config if present
	for _, name := range userConfigNames {
		userPath := filepath.Join(xdg.ConfigHome, "confrec", name)
		if _, err := os.Stat(userPath); err != nil {
			continue
		}
		if err := k.Load(file.Provider(userPath), parserFor(userPath)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", userPath)
		}
		break
	}

	// 3. Explicit config overrides everything
	if explicitPath != "" {
		if err := k.Load(file.Provider(explicitPath), parserFor(explicitPath)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", explicitPath)
		}
	}

	return &Config{k: k}, nil
}

func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// ContinueOnError reports whether a failing path should stop the transaction
func (c *Config) ContinueOnError() bool {
	return c.k.Bool("executor.continue_on_error")
}

// ColorMode returns the terminal color mode: "auto", "always" or "never"
func (c *Config) ColorMode() string {
	return c.k.String("output.color")
}

// Verbosity returns the default logging verbosity
func (c *Config) Verbosity() int {
	return c.k.Int("logging.verbosity")
}
