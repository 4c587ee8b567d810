// Package config loads the vgacons configuration: the startup color pair,
// the serial mirror destination, and logging options. Configuration lives
// in a TOML file and can be live-reloaded through a file watcher.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/jdjurisic/vgacons/internal/palette"
	"github.com/jdjurisic/vgacons/internal/vga"
)

// Config errors.
var (
	// ErrUnknownColor indicates a color name outside the VGA palette.
	ErrUnknownColor = errors.New("config: unknown color name")
)

// Config is the full vgacons configuration.
type Config struct {
	Console ConsoleConfig `toml:"console"`
	Serial  SerialConfig  `toml:"serial"`
	Logging LoggingConfig `toml:"logging"`
}

// ConsoleConfig selects the startup color pair. Colors are the eight VGA
// names the picker shows: black, blue, green, aqua, red, purple, yellow,
// white.
type ConsoleConfig struct {
	Foreground       string `toml:"foreground"`
	Background       string `toml:"background"`
	BrightForeground bool   `toml:"bright_foreground"`
	BrightBackground bool   `toml:"bright_background"`
}

// SerialConfig selects where the serial mirror writes. An empty path
// disables the mirror.
type SerialConfig struct {
	Path string `toml:"path"`
}

// LoggingConfig configures the application log. The log goes to a file so
// it never fights the terminal for the screen.
type LoggingConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// Default returns the built-in configuration: the hardware power-on
// scheme, no serial mirror, info-level logging.
func Default() *Config {
	return &Config{
		Console: ConsoleConfig{
			Foreground: "white",
			Background: "black",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML configuration file. An empty path returns the
// defaults; a missing file is an error so a typo in --config surfaces
// instead of silently falling back.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if _, err := cfg.Attr(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Attr converts the configured color pair into a VGA attribute word.
func (c *Config) Attr() (vga.Attr, error) {
	fg, ok := palette.Code(c.Console.Foreground)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, c.Console.Foreground)
	}
	bg, ok := palette.Code(c.Console.Background)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, c.Console.Background)
	}

	attr := vga.Attr(fg)<<8 | vga.Attr(bg)<<12
	if c.Console.BrightForeground {
		attr |= vga.BrightFg
	}
	if c.Console.BrightBackground {
		attr |= vga.BrightBg
	}
	return attr, nil
}
