// SPDX-License-Identifier: MIT

// Package config provides layered configuration for the gjsolve command.
//
// Values are resolved with koanf, highest precedence first:
//
//	changed command-line flags > GJSOLVE_* environment > gjsolve.yaml > defaults
//
// and then validated with go-playground/validator struct tags.
package config

// Config holds every setting the CLI understands.
type Config struct {
	// Format is the output encoding (text, markdown, csv, json, yaml).
	Format string `koanf:"format" validate:"oneof=text table markdown md csv json yaml yml"`
	// Precision is the number of significant digits printed; -1 means shortest.
	Precision int `koanf:"precision" validate:"gte=-1,lte=17"`
	// Tolerance is used by the canonical-form checks; 0 compares exactly.
	Tolerance float64 `koanf:"tolerance" validate:"finite,gte=0"`
	// Singular selects how a missing pivot is handled: error or propagate.
	Singular string `koanf:"singular" validate:"oneof=error propagate"`

	Verify      bool `koanf:"verify"`
	Trace       bool `koanf:"trace"`
	ShowInput   bool `koanf:"show_input"`
	ShowReduced bool `koanf:"show_reduced"`
	NoColor     bool `koanf:"no_color"`

	LogLevel  string `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `koanf:"log_format" validate:"oneof=text json"`

	// File is the config file that was read, if any. Not loaded from sources.
	File string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultFormat    = "text"
	DefaultPrecision = 6
	DefaultTolerance = 0.0
	DefaultSingular  = "error"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultFileName  = "gjsolve.yaml"
	EnvPrefix        = "GJSOLVE_"
)

// Default returns the configuration used when no source overrides anything.
func Default() *Config {
	return &Config{
		Format:    DefaultFormat,
		Precision: DefaultPrecision,
		Tolerance: DefaultTolerance,
		Singular:  DefaultSingular,
		ShowInput: true,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// defaultsMap mirrors Default for the koanf confmap provider.
func defaultsMap() map[string]any {
	d := Default()
	return map[string]any{
		"format":       d.Format,
		"precision":    d.Precision,
		"tolerance":    d.Tolerance,
		"singular":     d.Singular,
		"verify":       d.Verify,
		"trace":        d.Trace,
		"show_input":   d.ShowInput,
		"show_reduced": d.ShowReduced,
		"no_color":     d.NoColor,
		"log_level":    d.LogLevel,
		"log_format":   d.LogFormat,
	}
}
