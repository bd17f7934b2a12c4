package golwjgl

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/albertocavalcante/go-lwjgl/catalog"
	"github.com/albertocavalcante/go-lwjgl/version"
)

// Warning templates.
const (
	noModulesWarning  = "No LWJGL modules selected. Please add modules with `lwjgl.modules` use a preset like `lwjgl.presets.gettingStarted()`."
	minVersionWarning = "Module '%s' minimum version is '%s', but request version is '%s'."
)

// Resolver turns a Config into dependency coordinates.
// A Resolver holds no per-resolution state and can be reused.
type Resolver struct {
	cfg *resolverConfig
}

// NewResolver creates a resolver with the given options.
func NewResolver(opts ...Option) (*Resolver, error) {
	cfg, err := newResolverConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Resolver{cfg: cfg}, nil
}

// Resolve resolves cfg with a one-off resolver.
func Resolve(cfg *Config, opts ...Option) (*Result, error) {
	r, err := NewResolver(opts...)
	if err != nil {
		return nil, err
	}
	return r.Resolve(cfg)
}

// Resolve computes the modules, platforms and coordinates for cfg.
//
// Core is always selected. Preset modules newer than the requested version
// are dropped when cfg.Presets.FilterMinVersion is set; explicitly
// requested modules are always kept and only produce a warning. When cfg
// selects nothing at all, the result is empty apart from a warning.
//
// The only fatal condition is an unset platform list on a host that
// platform detection does not recognize; the error wraps
// ErrUnsupportedPlatform.
func (r *Resolver) Resolve(cfg *Config) (*Result, error) {
	logger := r.cfg.log()
	ver := cfg.Version()

	result := &Result{
		Group:                cfg.Group,
		Version:              ver,
		ImplementationBucket: cfg.ImplementationBucket,
		RuntimeBucket:        cfg.RuntimeBucket,
		Implementation:       []Coordinate{},
		Runtime:              []Coordinate{},
	}

	explicit := cfg.ExplicitModules()
	presetsEmpty := cfg.Presets == nil || cfg.Presets.IsEmpty()
	if len(explicit) == 0 && presetsEmpty {
		logger.Warn(noModulesWarning)
		result.Warnings = append(result.Warnings, noModulesWarning)
		return result, nil
	}

	selected := catalog.NewSet(catalog.Core)
	if !presetsEmpty {
		selected.Add(cfg.Presets.ForVersion(ver)...)
	}
	selected.Add(explicit...)
	result.Modules = selected.Modules()

	var versionErrs []error
	for _, m := range result.Modules {
		if version.MeetsMinimum(m.MinVersion, ver) {
			continue
		}
		msg := fmt.Sprintf(minVersionWarning, m.Name, m.MinVersion, ver)
		logger.Warn(msg,
			slog.String("module", m.Name),
			slog.String("min_version", m.MinVersion),
			slog.String("version", ver))
		result.Warnings = append(result.Warnings, msg)
		versionErrs = append(versionErrs, fmt.Errorf("%w: %s", ErrMinVersion, msg))
	}
	if r.cfg.strictVersions && len(versionErrs) > 0 {
		return nil, errors.Join(versionErrs...)
	}

	platforms, detected, err := r.platforms(cfg)
	if err != nil {
		return nil, err
	}
	result.Platforms = platforms
	result.PlatformDetected = detected

	for _, m := range result.Modules {
		result.Implementation = append(result.Implementation, Coordinate{
			Group:    cfg.Group,
			Artifact: m.Artifact,
			Version:  ver,
		})
	}

	nativeModules := 0
	for _, m := range result.Modules {
		if !m.HasNatives {
			continue
		}
		nativeModules++
		for _, p := range platforms {
			result.Runtime = append(result.Runtime, Coordinate{
				Group:      cfg.Group,
				Artifact:   m.Artifact,
				Version:    ver,
				Classifier: p.Classifier(),
			})
		}
	}

	result.Summary = ResolutionSummary{
		Modules:       len(result.Modules),
		NativeModules: nativeModules,
		Platforms:     len(platforms),
		Dependencies:  len(result.Implementation) + len(result.Runtime),
	}

	logger.Debug("resolved LWJGL dependencies",
		slog.String("version", ver),
		slog.Int("modules", result.Summary.Modules),
		slog.Any("platforms", result.PlatformNames()),
		slog.Bool("platform_detected", detected),
		slog.Int("implementation", len(result.Implementation)),
		slog.Int("runtime", len(result.Runtime)))

	return result, nil
}

// platforms returns the configured platforms, or the detected host platform
// when none are configured.
func (r *Resolver) platforms(cfg *Config) ([]catalog.Platform, bool, error) {
	if platforms, ok := cfg.ExplicitPlatforms(); ok {
		return platforms, false, nil
	}

	env := r.cfg.host()
	p, ok := env.Platform()
	if !ok {
		return nil, false, &PlatformError{Arch: env.Arch, OSName: env.OSName}
	}
	r.cfg.log().Debug("detected native platform",
		slog.String("platform", p.Name),
		slog.String("os_name", env.OSName),
		slog.String("os_arch", env.Arch))
	return []catalog.Platform{p}, true, nil
}
