package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the defaults read from the --config file.
// Command line flags take precedence.
type Config struct {
	DPI      int     `toml:"dpi"`
	Paper    string  `toml:"paper"`
	Margin   float64 `toml:"margin"`
	Indent   string  `toml:"indent"`
	Font     string  `toml:"font"`
	FontSize int     `toml:"font_size"`
}

// DefaultConfig is used when no file is given, and completes
// the fields missing from it.
var DefaultConfig = Config{
	DPI:      96,
	Paper:    "A4",
	Margin:   0.5,
	Indent:   "\t",
	Font:     "DejaVuSans",
	FontSize: 12,
}

// parseConfig decodes a TOML configuration, starting from DefaultConfig.
func parseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("parse config: unknown key %q", undecoded[0].String())
	}
	if cfg.DPI <= 0 {
		return Config{}, fmt.Errorf("parse config: invalid dpi %d", cfg.DPI)
	}
	return cfg, nil
}

// loadConfig reads the named file, or returns DefaultConfig
// if path is empty.
func loadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return parseConfig(data)
}

func withConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

func configFromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey).(Config); ok {
		return cfg
	}
	return DefaultConfig
}
