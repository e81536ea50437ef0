// Package config provides configuration loading and management for chorddepth.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oisee/chorddepth/pkg/theory"
)

// ErrNoTuning is returned when the selected tuning is not defined
var ErrNoTuning = errors.New("tuning not defined")

// Config represents the complete chorddepth configuration
type Config struct {
	// Tuning names the entry of Tunings used for the string columns
	Tuning string `yaml:"tuning"`
	// Center is the tonal center spelling, depth 0 (default: C)
	Center string `yaml:"center"`
	// Progression is shown at startup until the user types another
	Progression []string `yaml:"progression"`
	// Tunings maps a name to note spellings, low string first
	Tunings map[string][]string `yaml:"tunings"`
	Log     LogConfig           `yaml:"log"`
}

// LogConfig configures diagnostic logging
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
	// File receives log output; empty discards it
	File string `yaml:"file"`
}

// DefaultTunings returns the built-in tunings
func DefaultTunings() map[string][]string {
	return map[string][]string{
		"cgdgad":   {"C", "G", "D", "G", "A", "D"},
		"standard": {"E", "A", "D", "G", "B", "E"},
		"dadgad":   {"D", "A", "D", "G", "A", "D"},
		"open-g":   {"D", "G", "D", "G", "B", "D"},
		"drop-d":   {"D", "A", "D", "G", "B", "E"},
	}
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Tuning:      "cgdgad",
		Center:      "C",
		Progression: []string{"Fm9", "C/Bb", "G13", "Dbdim7"},
		Tunings:     DefaultTunings(),
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, ok := theory.ParseNote(c.Center); !ok {
		return fmt.Errorf("center: invalid note %q", c.Center)
	}
	for name, notes := range c.Tunings {
		if len(notes) == 0 {
			return fmt.Errorf("tunings.%s: no notes", name)
		}
		for _, n := range notes {
			if _, _, err := theory.ParseNoteWithOctave(n); err != nil {
				return fmt.Errorf("tunings.%s: %w", name, err)
			}
		}
	}
	if _, ok := c.Tunings[c.Tuning]; !ok {
		return fmt.Errorf("tuning %q: %w", c.Tuning, ErrNoTuning)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// TuningNames lists the defined tunings alphabetically
func (c *Config) TuningNames() []string {
	names := make([]string, 0, len(c.Tunings))
	for name := range c.Tunings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TuningPitches resolves a tuning to pitch classes, low string first
func (c *Config) TuningPitches(name string) ([]theory.PitchClass, error) {
	notes, ok := c.Tunings[name]
	if !ok {
		return nil, fmt.Errorf("tuning %q: %w", name, ErrNoTuning)
	}
	pcs := make([]theory.PitchClass, len(notes))
	for i, n := range notes {
		pc, _, err := theory.ParseNoteWithOctave(n)
		if err != nil {
			return nil, fmt.Errorf("tuning %q: %w", name, err)
		}
		pcs[i] = pc
	}
	return pcs, nil
}

// CenterPitch resolves the tonal center
func (c *Config) CenterPitch() (theory.PitchClass, error) {
	pc, ok := theory.ParseNote(c.Center)
	if !ok {
		return 0, &theory.InvalidNoteError{Note: c.Center}
	}
	return pc, nil
}

// ParseLevel maps a level name to a slog level
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log.level: unknown level %q", s)
	}
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Tuning != "" {
		c.Tuning = other.Tuning
	}
	if other.Center != "" {
		c.Center = other.Center
	}
	if len(other.Progression) > 0 {
		c.Progression = other.Progression
	}

	// Tunings are merged per name so a file can add one without repeating the rest
	if len(other.Tunings) > 0 && c.Tunings == nil {
		c.Tunings = make(map[string][]string, len(other.Tunings))
	}
	for name, notes := range other.Tunings {
		c.Tunings[name] = notes
	}

	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.File != "" {
		c.Log.File = other.Log.File
	}
}
