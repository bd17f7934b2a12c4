package golwjgl

import (
	"github.com/albertocavalcante/go-lwjgl/catalog"
	"github.com/albertocavalcante/go-lwjgl/preset"
)

// Config is the user's LWJGL selection for one resolution pass.
//
// The zero value is not usable; start from NewConfig, which applies the
// defaults. A Config is read, never modified, by Resolve.
type Config struct {
	// Group is the Maven group of the LWJGL artifacts.
	Group string

	// ImplementationBucket names the bucket that receives one dependency
	// per module (compile and runtime classpath).
	ImplementationBucket string

	// RuntimeBucket names the bucket that receives native binaries.
	RuntimeBucket string

	// Presets accumulates preset selections. Each preset call unions its
	// modules into the set used by Resolve.
	Presets *preset.Selection

	version     string
	versionFunc func() string

	modules   catalog.Set
	platforms []catalog.Platform
}

// NewConfig returns a Config with the default group, version and bucket
// names, no modules, no presets, and platform auto-detection.
func NewConfig() *Config {
	return &Config{
		Group:                DefaultGroup,
		ImplementationBucket: DefaultImplementationBucket,
		RuntimeBucket:        DefaultRuntimeBucket,
		Presets:              preset.NewSelection(),
		version:              DefaultVersion,
	}
}

// Version returns the LWJGL version to request. A function installed with
// SetVersionFunc is consulted on every call.
func (c *Config) Version() string {
	if c.versionFunc != nil {
		return c.versionFunc()
	}
	return c.version
}

// SetVersion sets the LWJGL version and drops any version function.
func (c *Config) SetVersion(v string) {
	c.version = v
	c.versionFunc = nil
}

// SetVersionFunc defers the version to fn, called when the version is read.
// This lets the version come from something that is only known after the
// configuration is written, such as a property file or another tool.
func (c *Config) SetVersionFunc(fn func() string) {
	c.versionFunc = fn
}

// Modules adds modules to the explicit selection. Modules already selected
// (by name) are ignored.
func (c *Config) Modules(modules ...catalog.Module) {
	c.modules.Add(modules...)
}

// ExplicitModules returns the explicitly requested modules, without preset
// modules and without core.
func (c *Config) ExplicitModules() []catalog.Module {
	return c.modules.Modules()
}

// NativePlatforms sets the platforms to fetch native binaries for,
// replacing any previous list.
func (c *Config) NativePlatforms(platforms ...catalog.Platform) {
	c.SetNativePlatforms(platforms)
}

// SetNativePlatforms is NativePlatforms for a slice built elsewhere.
func (c *Config) SetNativePlatforms(platforms []catalog.Platform) {
	c.platforms = append([]catalog.Platform(nil), platforms...)
}

// CustomNativePlatforms sets the native platforms by name. Names do not
// have to be canonical.
func (c *Config) CustomNativePlatforms(names ...string) {
	platforms := make([]catalog.Platform, len(names))
	for i, name := range names {
		platforms[i] = catalog.CustomPlatform(name)
	}
	c.platforms = platforms
}

// UseAllNativePlatforms selects every canonical platform.
func (c *Config) UseAllNativePlatforms() {
	c.platforms = catalog.Platforms()
}

// ExplicitPlatforms returns the configured platforms. The boolean is false
// when none are set and the host platform will be detected.
func (c *Config) ExplicitPlatforms() ([]catalog.Platform, bool) {
	if len(c.platforms) == 0 {
		return nil, false
	}
	return append([]catalog.Platform(nil), c.platforms...), true
}

// Preset applies several presets in one call:
//
//	cfg.Preset(func(p *preset.Selection) {
//		p.MinimalOpenGL()
//		p.MinimalVulkan()
//	})
func (c *Config) Preset(fn func(*preset.Selection)) {
	fn(c.Presets)
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	out.modules = *c.modules.Clone()
	out.platforms = append([]catalog.Platform(nil), c.platforms...)
	if c.Presets != nil {
		out.Presets = c.Presets.Clone()
	}
	return &out
}
