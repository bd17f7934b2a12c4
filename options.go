package golwjgl

import (
	"context"
	"log/slog"

	"github.com/albertocavalcante/go-lwjgl/detect"
)

// Option configures resolution behavior.
type Option func(*resolverConfig) error

// resolverConfig holds all resolution configuration.
type resolverConfig struct {
	environment    detect.Environment
	hasEnvironment bool
	strictVersions bool

	// logger is the structured logger for warnings and debug output.
	// If nil, logging is disabled (silent mode).
	logger *slog.Logger
}

// WithEnvironment sets the OS and architecture used when the configuration
// has no native platforms. Without it the running process is inspected.
func WithEnvironment(env detect.Environment) Option {
	return func(c *resolverConfig) error {
		c.environment = env
		c.hasEnvironment = true
		return nil
	}
}

// WithStrictVersions turns minimum-version warnings into an error wrapping
// ErrMinVersion.
func WithStrictVersions(strict bool) Option {
	return func(c *resolverConfig) error {
		c.strictVersions = strict
		return nil
	}
}

// WithLogger sets a structured logger for resolution diagnostics.
// If not set, logging is disabled (silent mode). Warnings are still
// returned in Result.Warnings.
//
// Example:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("component", "lwjgl")
//	golwjgl.Resolve(cfg, golwjgl.WithLogger(logger))
func WithLogger(l *slog.Logger) Option {
	return func(c *resolverConfig) error {
		c.logger = l
		return nil
	}
}

// log returns the configured logger, or a no-op logger if none was set.
func (c *resolverConfig) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.New(discardHandler{})
}

// discardHandler is a slog.Handler that discards all log records.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// host returns the environment used for platform detection.
func (c *resolverConfig) host() detect.Environment {
	if c.hasEnvironment {
		return c.environment
	}
	return detect.Host()
}

// newResolverConfig creates a new resolver configuration by applying
// the given options.
func newResolverConfig(opts ...Option) (*resolverConfig, error) {
	c := &resolverConfig{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
