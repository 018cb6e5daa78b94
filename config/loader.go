// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/gaussjordan/matrix"
)

// ErrInvalid wraps validation failures of a loaded configuration.
var ErrInvalid = errors.New("config: invalid configuration")

// configFlag names the flag that points at the config file; it is not a key.
const configFlag = "config"

// validate is shared; validator caches struct metadata per type.
var validate = newValidator()

// newValidator adds the "finite" tag (rejects NaN and ±Inf) to the built-ins.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("finite", isFinite); err != nil {
		panic(err)
	}

	return v
}

func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// findConfigFile returns the file to read: the explicit path, or
// gjsolve.yaml / gjsolve.yml in the working directory, or "".
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{DefaultFileName, "gjsolve.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	return ""
}

// Load resolves the configuration from defaults, the config file, the
// environment and the flags that were explicitly set.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: failed to load defaults: %w", err)
	}

	// 2. Config file (explicit path must exist; the implicit one is optional)
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment: GJSOLVE_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("config: failed to load env vars: %w", err)
	}

	// 4. Flags that were set on the command line
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == configFlag {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("config: failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tags of c.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// SingularPolicy maps the Singular setting onto the matrix policy.
// Unknown values fall back to matrix.SingularError; Validate rejects them earlier.
func (c *Config) SingularPolicy() matrix.SingularPolicy {
	if c.Singular == "propagate" {
		return matrix.SingularPropagate
	}

	return matrix.SingularError
}

// MatrixOptions returns the elimination options implied by c.
func (c *Config) MatrixOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithTolerance(c.Tolerance),
		matrix.WithSingularPolicy(c.SingularPolicy()),
	}
}
