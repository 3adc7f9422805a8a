// Package config loads display preferences. It never holds list items.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/idilsaglam/travelcheck/internal/ui"
	"github.com/idilsaglam/travelcheck/internal/view"
)

const configRel = "travelcheck/config.toml"

// Environment overrides.
const (
	EnvTheme  = "TRAVELCHECK_THEME"
	EnvSort   = "TRAVELCHECK_SORT"
	EnvLocale = "TRAVELCHECK_LOCALE"
)

// Config is the on-disk shape.
type Config struct {
	Theme  string `toml:"theme"`
	Sort   string `toml:"sort"`
	Locale string `toml:"locale"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Theme:  "classic",
		Sort:   string(view.SortOldest),
		Locale: "en",
	}
}

// Load reads defaults, then the file, then the environment.
// An empty path searches the XDG config dirs; a missing file there is fine,
// a missing explicit path is not.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		if p, err := xdg.SearchConfigFile(configRel); err == nil {
			path = p
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvSort)); v != "" {
		cfg.Sort = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLocale)); v != "" {
		cfg.Locale = v
	}
}

// Validate checks every field resolves.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.ThemeValue(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.SortKey(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Language(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (c Config) ThemeValue() (ui.Theme, error) { return ui.ThemeByName(c.Theme) }

func (c Config) SortKey() (view.SortKey, error) { return view.ParseSortKey(c.Sort) }

// Language parses Locale as a BCP 47 tag.
func (c Config) Language() (language.Tag, error) {
	if strings.TrimSpace(c.Locale) == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("bad locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

// Path reports where the user config file lives, whether or not it exists.
func Path() string {
	return filepath.Join(xdg.ConfigHome, configRel)
}

// Encode renders c as TOML.
func (c Config) Encode() ([]byte, error) {
	b, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("toml marshal: %w", err)
	}
	return b, nil
}
