package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/txtclean"
)

// FileName is the config file looked up in the working directory.
const FileName = ".txtclean.yaml"

// Constants for default values.
const (
	DefaultPreviewRows = 50
	DefaultFormat      = "text"
	DefaultSeparator   = "tab"
)

// Config is the resolved application configuration.
type Config struct {
	Skip              int                 `yaml:"skip"`
	Separator         string              `yaml:"separator"`
	IncludeHeader     bool                `yaml:"include_header"`
	DecimalCommaToDot bool                `yaml:"decimal_comma_to_dot"`
	PreviewRows       int                 `yaml:"preview_rows"`
	Format            string              `yaml:"format"`
	Border            string              `yaml:"border"`
	NoColor           bool                `yaml:"no_color"`
	Debug             bool                `yaml:"debug"`
	Heuristics        txtclean.Heuristics `yaml:"heuristics"`
}

// Default returns the hardcoded defaults.
func Default() *Config {
	return &Config{
		Separator:     DefaultSeparator,
		IncludeHeader: true,
		PreviewRows:   DefaultPreviewRows,
		Format:        DefaultFormat,
		Border:        "rounded",
		Heuristics:    txtclean.DefaultHeuristics(),
	}
}

// Load returns the defaults overlaid with a config file. An explicit path
// must exist. Without one, [FileName] in the working directory and then
// txtclean/config.yaml under the user config directory are tried; finding
// neither is not an error. The returned path is the file that was used, or
// "" when none was.
func Load(explicit string) (*Config, string, error) {
	cfg := Default()
	path := explicit
	if path == "" {
		path = findPath()
		if path == "" {
			return cfg, "", nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, path, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, path, nil
}

// findPath looks for a config file locally, then under the user config
// directory.
func findPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "txtclean", "config.yaml")
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}

// ApplyEnv overlays environment variables onto cfg. getenv is usually
// os.Getenv. Boolean variables that do not parse are ignored, except
// NO_COLOR, which disables colors whenever it is non-empty.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv("TXTCLEAN_MARKER"); v != "" {
		cfg.Heuristics.Marker = v
	}
	if v := getenv("TXTCLEAN_SEPARATOR"); v != "" {
		cfg.Separator = v
	}
	if v := getenv("TXTCLEAN_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := getenv("TXTCLEAN_SKIP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Skip = n
		}
	}
	if getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	if v := getenv("TXTCLEAN_NO_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoColor = b
		}
	}
	if v := getenv("TXTCLEAN_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		} else {
			cfg.Debug = true
		}
	}
}

// Validate checks value ranges and names. Zero heuristics values select
// the library defaults.
func (c *Config) Validate() error {
	if c.Skip < 0 {
		return fmt.Errorf("skip must not be negative, got %d", c.Skip)
	}
	if c.PreviewRows < 0 {
		return fmt.Errorf("preview_rows must not be negative, got %d", c.PreviewRows)
	}
	if _, err := txtclean.ParseSeparator(c.Separator); err != nil {
		return err
	}
	if _, err := txtclean.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := parseBorder(c.Border); err != nil {
		return err
	}
	h := c.Heuristics
	if h.MinNumericRatio < 0 || h.MinNumericRatio > 1 {
		return fmt.Errorf("heuristics.min_numeric_ratio must be within [0, 1], got %v", h.MinNumericRatio)
	}
	if h.WidthTolerance < 0 {
		return fmt.Errorf("heuristics.width_tolerance must not be negative, got %d", h.WidthTolerance)
	}
	if h.BlockLength < 0 {
		return fmt.Errorf("heuristics.block_length must not be negative, got %d", h.BlockLength)
	}
	return nil
}

// Options returns the extraction options described by c.
func (c *Config) Options() txtclean.Options {
	return txtclean.Options{Skip: c.Skip, Heuristics: c.Heuristics}
}

// RenderOptions returns the output options described by c. Call
// [Config.Validate] first; invalid names fall back to defaults.
func (c *Config) RenderOptions() txtclean.RenderOptions {
	sep, err := txtclean.ParseSeparator(c.Separator)
	if err != nil {
		sep = txtclean.Tab
	}
	border, err := parseBorder(c.Border)
	if err != nil {
		border = txtclean.BorderRounded
	}
	return txtclean.RenderOptions{
		Separator:         sep,
		IncludeHeader:     c.IncludeHeader,
		DecimalCommaToDot: c.DecimalCommaToDot,
		Border:            border,
	}
}

// OutputFormat returns the parsed output format.
func (c *Config) OutputFormat() txtclean.Format {
	f, err := txtclean.ParseFormat(c.Format)
	if err != nil {
		return txtclean.Text
	}
	return f
}

func parseBorder(s string) (txtclean.BorderStyle, error) {
	switch s {
	case "", "rounded":
		return txtclean.BorderRounded, nil
	case "ascii":
		return txtclean.BorderASCII, nil
	case "none":
		return txtclean.BorderNone, nil
	default:
		return 0, fmt.Errorf("unknown border %q (expected rounded, ascii, none)", s)
	}
}
