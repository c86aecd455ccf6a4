// Package env loads the deployment environment: RPC endpoints and signing
// credentials per network tier, plus the optional explorer API key.
//
// Values come from the process environment, optionally backed by a local
// .env file. Process variables always take precedence over the file, and the
// process environment is never modified.
package env

import (
	"errors"

	"github.com/rs/zerolog/log"
)

// DefaultEnvFile is the declarations file consulted when none is given.
const DefaultEnvFile = ".env"

// Loader validates the schema against a Source in a single pass.
type Loader struct {
	src    Source
	schema []Var
}

// NewLoader creates a loader reading from src.
func NewLoader(src Source) *Loader {
	return &Loader{
		src:    src,
		schema: schema,
	}
}

// Load builds a Config. Every required variable that is unset or empty is
// reported as a MissingRequiredConfigError; when any is missing the errors
// are joined and no Config is returned.
func (l *Loader) Load() (*Config, error) {
	cfg := newConfig()

	var errs []error
	for _, v := range l.schema {
		value, ok := l.src.Lookup(v.Name)
		if !ok || value == "" {
			if v.Required {
				errs = append(errs, &MissingRequiredConfigError{Name: v.Name})
				continue
			}
			if v.Default == "" {
				log.Debug().Str("key", v.Name).Msg("optional variable not set")
				continue
			}
			value = v.Default
		}
		v.assign(cfg, value)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	log.Debug().Int("chains", len(cfg.rpcs)).Int("tiers", len(cfg.privateKeys)).Msg("environment loaded")
	return cfg, nil
}

type options struct {
	envFile        string
	requireEnvFile bool
	src            Source
}

// Option customises Load.
type Option func(*options)

// WithEnvFile sets the declarations file. An empty path disables the file.
func WithEnvFile(path string) Option {
	return func(o *options) { o.envFile = path }
}

// WithRequiredEnvFile turns a missing declarations file into an error.
func WithRequiredEnvFile() Option {
	return func(o *options) { o.requireEnvFile = true }
}

// WithSource replaces the process environment as the primary source.
func WithSource(src Source) Option {
	return func(o *options) { o.src = src }
}

// Load reads the process environment layered over the declarations file and
// returns the validated Config. It is meant to be called once at startup.
func Load(opts ...Option) (*Config, error) {
	o := options{
		envFile: DefaultEnvFile,
		src:     OSSource{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	sources := Layered{o.src}
	if o.envFile != "" {
		file, err := ReadDotenv(o.envFile, o.requireEnvFile)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("path", file.Path()).Int("declarations", file.Len()).Msg("env file read")
		sources = append(sources, file)
	}

	return NewLoader(sources).Load()
}
