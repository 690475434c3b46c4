package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/iksnae/motec-session/internal"
	"gopkg.in/yaml.v3"
)

// Auto is the metadata_lines value that enables layout detection
const Auto = "auto"

// Config holds all motec-session configuration.
type Config struct {
	Parser ParserConfig `yaml:"parser"`
	Export ExportConfig `yaml:"export"`
	Cache  CacheConfig  `yaml:"cache"`
}

// ParserConfig controls how exports are read.
type ParserConfig struct {
	MetadataLines string `yaml:"metadata_lines"` // "auto" or a line count
	TimeChannel   string `yaml:"time_channel"`
}

// ExportConfig holds export defaults.
type ExportConfig struct {
	Format string `yaml:"format"`
	Dir    string `yaml:"dir"`
}

// CacheConfig holds catalog cache settings.
type CacheConfig struct {
	Dir string `yaml:"dir"`
}

// DefaultPath returns ~/.motec-session.yaml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".motec-session.yaml")
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from path, then applies environment overrides.
// An empty path falls back to DefaultPath, which may be absent.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	var cfg Config
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("MOTEC_SESSION_METADATA_LINES"); v != "" {
		c.Parser.MetadataLines = v
	}
	if v := os.Getenv("MOTEC_SESSION_TIME_CHANNEL"); v != "" {
		c.Parser.TimeChannel = v
	}
	if v := os.Getenv("MOTEC_SESSION_EXPORT_FORMAT"); v != "" {
		c.Export.Format = v
	}
	if v := os.Getenv("MOTEC_SESSION_CACHE_DIR"); v != "" {
		c.Cache.Dir = v
	}
}

func (c *Config) applyDefaults() {
	if c.Parser.MetadataLines == "" {
		c.Parser.MetadataLines = Auto
	}
	if c.Parser.TimeChannel == "" {
		c.Parser.TimeChannel = internal.DefaultTimeChannel
	}
	if c.Export.Format == "" {
		c.Export.Format = "json"
	}
	if c.Export.Dir == "" {
		c.Export.Dir = "./exports"
	}
	if c.Cache.Dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.Cache.Dir = filepath.Join(home, ".motec-session-cache")
		} else {
			c.Cache.Dir = filepath.Join(os.TempDir(), "motec-session-cache")
		}
	}
}

func (c *Config) validate() error {
	if _, err := ParseMetadataLines(c.Parser.MetadataLines); err != nil {
		return err
	}
	return nil
}

// ParseMetadataLines converts "auto" or a non-negative count to an option value.
func ParseMetadataLines(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, Auto) {
		return internal.AutoDetect, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("metadata_lines must be %q or a non-negative integer, got %q", Auto, s)
	}
	return n, nil
}

// Options returns parser options for this configuration.
func (c *Config) Options() internal.Options {
	n, err := ParseMetadataLines(c.Parser.MetadataLines)
	if err != nil {
		n = internal.AutoDetect
	}
	return internal.Options{
		MetadataLines: n,
		TimeChannel:   c.Parser.TimeChannel,
	}
}
