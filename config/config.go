// Package config provides the exposure policy for API problem payloads: a
// small YAML-loaded configuration deciding whether diagnostic detail (stack
// traces and causal chains) may be surfaced, with optional hot reloading of
// the policy file.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/teilomillet/apiproblem/problem"
)

// Environment names accepted by the policy. Development implies trace
// exposure even when the flag is off.
const (
	EnvProduction  = "production"
	EnvStaging     = "staging"
	EnvDevelopment = "development"
)

var validate = validator.New()

// Config is the exposure policy. It is deliberately small: which environment
// the process runs in, and whether stack traces are explicitly allowed.
type Config struct {
	// Environment names the deployment environment. Must be one of
	// production, staging or development (default: production).
	Environment string `yaml:"environment" validate:"required,oneof=production staging development"`

	// IncludeStackTrace explicitly allows diagnostic detail regardless of
	// environment (default: false).
	IncludeStackTrace bool `yaml:"include_stack_trace"`
}

// DefaultConfig returns the safe default policy: production, traces off.
func DefaultConfig() *Config {
	return &Config{
		Environment: EnvProduction,
	}
}

// LoadFile loads a policy from a YAML file.
func LoadFile(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// expandEnvVars resolves environment variable references in the raw YAML,
// supporting the ${VAR} and ${VAR:-default} forms.
func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		if i := strings.Index(key, ":-"); i >= 0 {
			if val := os.Getenv(key[:i]); val != "" {
				return val
			}
			return key[i+2:]
		}
		return os.Getenv(key)
	})
}

// Load loads a policy from an io.Reader. Missing fields keep their defaults;
// the result is validated before being returned.
func Load(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Start with defaults, decode YAML on top.
	config := DefaultConfig()

	dec := yaml.NewDecoder(strings.NewReader(expandEnvVars(string(data))))
	if err := dec.Decode(config); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

// ExposeTraces reports whether the policy allows diagnostic detail: either
// the flag is set explicitly or the process runs in development.
func (c *Config) ExposeTraces() bool {
	return c.IncludeStackTrace || c.Environment == EnvDevelopment
}

// Apply sets a descriptor's stack-trace flag from the policy and returns the
// descriptor for chaining.
func (c *Config) Apply(d *problem.Descriptor) *problem.Descriptor {
	return d.SetIncludeStackTrace(c.ExposeTraces())
}
