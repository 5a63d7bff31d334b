// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionConfig holds defaults for the convert, batch, and watch commands.
type ConversionConfig struct {
	Settings `yaml:",inline" mapstructure:",squash"`

	// From is the source language name. Empty means detect from the file
	// extension, falling back to C.
	From string `json:"from" yaml:"from" mapstructure:"from"`

	// To is the target language name (default "C++").
	To string `json:"to" yaml:"to" mapstructure:"to"`

	// OutputDir is where converted files are written (default ".").
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// Force overwrites existing output files instead of skipping them.
	Force bool `json:"force" yaml:"force" mapstructure:"force"`
}

// WatchConfig holds settings for the watch command.
type WatchConfig struct {
	// Debounce is the quiet period after a file event before converting
	// (default 300ms).
	Debounce time.Duration `json:"debounce" yaml:"debounce" mapstructure:"debounce"`
}

// LogConfig configures the diagnostic logger.
type LogConfig struct {
	// Level is a logrus level name (default "warn").
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "text" or "json".
	Format string `json:"format" yaml:"format" mapstructure:"format"`

	// Output is "stderr", "stdout", or a file path.
	Output string `json:"output" yaml:"output" mapstructure:"output"`
}

// HistoryConfig configures the run history database.
type HistoryConfig struct {
	// Enabled turns history recording on (default true).
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Dir holds history.db (default ~/.local/share/convert-hub).
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// MaxResults is the default list limit (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// AppConfig groups all configuration sections.
type AppConfig struct {
	Conversion ConversionConfig `json:"conversion" yaml:"conversion" mapstructure:"conversion"`
	Watch      WatchConfig      `json:"watch" yaml:"watch" mapstructure:"watch"`
	Log        LogConfig        `json:"log" yaml:"log" mapstructure:"log"`
	History    HistoryConfig    `json:"history" yaml:"history" mapstructure:"history"`
}
