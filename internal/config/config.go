// Package config resolves irocheck settings from defaults, an optional config file,
// a .env file and the environment.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/irocheck/internal/colour"
	"github.com/jmylchreest/irocheck/internal/security"
)

// Environment variables read by FromEnv.
const (
	EnvConfig  = "IROCHECK_CONFIG"
	EnvStore   = "IROCHECK_STORE"
	EnvFormat  = "IROCHECK_FORMAT"
	EnvNoColor = "IROCHECK_NO_COLOR"
)

// ErrUnsupportedFormat is returned for config files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config holds resolved settings.
type Config struct {
	Store             string
	Format            string
	Preview           bool
	DefaultBackground string
	DefaultText       string
}

// File holds settings read from a config file or the environment. Nil fields are unset.
type File struct {
	Store             *string `toml:"store" yaml:"store" json:"store"`
	Format            *string `toml:"format" yaml:"format" json:"format"`
	Preview           *bool   `toml:"preview" yaml:"preview" json:"preview"`
	DefaultBackground *string `toml:"default_background" yaml:"default_background" json:"default_background"`
	DefaultText       *string `toml:"default_text" yaml:"default_text" json:"default_text"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Store:             filepath.Join(dataHome(), "irocheck", "palettes.json"),
		Format:            "text",
		Preview:           true,
		DefaultBackground: "#FFFFFF",
		DefaultText:       "#64748B",
	}
}

// Load reads a config file, picking the decoder from its extension.
// Unknown keys are rejected.
func Load(path string) (File, error) {
	var f File
	data, err := security.ReadFile(path, security.MaxConfigSize)
	if err != nil {
		return f, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&f); errors.Is(err, io.EOF) {
			err = nil
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	default:
		return f, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return f, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}

// FromEnv reads settings from environment variables through getenv.
func FromEnv(getenv func(string) string) (File, error) {
	var f File
	if v := strings.TrimSpace(getenv(EnvStore)); v != "" {
		f.Store = &v
	}
	if v := strings.TrimSpace(getenv(EnvFormat)); v != "" {
		f.Format = &v
	}
	if v := strings.TrimSpace(getenv(EnvNoColor)); v != "" {
		noColor, err := strconv.ParseBool(v)
		if err != nil {
			return f, fmt.Errorf("%s: %w", EnvNoColor, err)
		}
		preview := !noColor
		f.Preview = &preview
	}
	return f, nil
}

// Apply overlays the set fields of f onto c.
func (c Config) Apply(f File) Config {
	if f.Store != nil {
		c.Store = *f.Store
	}
	if f.Format != nil {
		c.Format = *f.Format
	}
	if f.Preview != nil {
		c.Preview = *f.Preview
	}
	if f.DefaultBackground != nil {
		c.DefaultBackground = *f.DefaultBackground
	}
	if f.DefaultText != nil {
		c.DefaultText = *f.DefaultText
	}
	return c
}

// Validate checks the resolved settings.
func (c Config) Validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format: %s (valid: text, json)", c.Format)
	}
	if c.Store == "" {
		return errors.New("store path is empty")
	}
	if _, ok := colour.HexToRGB(c.DefaultBackground); !ok {
		return fmt.Errorf("invalid default_background: %q", c.DefaultBackground)
	}
	if _, ok := colour.HexToRGB(c.DefaultText); !ok {
		return fmt.Errorf("invalid default_text: %q", c.DefaultText)
	}
	return nil
}

// Resolve builds the configuration from defaults, the config file at explicitPath (or the
// default location when it exists), .env and the process environment, in that order.
func Resolve(explicitPath string) (Config, error) {
	// A missing .env is normal; existing variables are never overridden.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	path, err := Find(explicitPath, os.Getenv)
	if err != nil {
		return cfg, err
	}
	if path != "" {
		f, err := Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = cfg.Apply(f)
	}

	env, err := FromEnv(os.Getenv)
	if err != nil {
		return cfg, err
	}
	cfg = cfg.Apply(env)

	return cfg, cfg.Validate()
}

// Find locates the config file: explicitPath, then $IROCHECK_CONFIG, then
// config.{toml,yaml,yml,json} under the XDG config directory. An empty path means none.
func Find(explicitPath string, getenv func(string) string) (string, error) {
	for _, candidate := range []string{explicitPath, getenv(EnvConfig)} {
		if candidate = strings.TrimSpace(candidate); candidate == "" {
			continue
		}
		info, err := os.Stat(candidate)
		if err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("config file %q is a directory", candidate)
		}
		return candidate, nil
	}

	dir := filepath.Join(configHome(getenv), "irocheck")
	for _, name := range []string{"config.toml", "config.yaml", "config.yml", "config.json"} {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", nil
}

func configHome(getenv func(string) string) string {
	if xdg := getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return "."
}

func dataHome() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return xdg
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share")
	}
	return "."
}
