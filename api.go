// Package golwjgl resolves a declarative selection of LWJGL modules, a
// library version and a set of native platforms into the Maven coordinates
// a build has to depend on.
//
// # Overview
//
// The package provides three main pieces:
//
//   - Config: the selection (group, version, modules, presets, platforms)
//   - Resolver: turns a Config into implementation and runtime coordinates
//   - Config files: Starlark (LWJGL.bazel) and TOML front ends for Config
//
// The static data lives in subpackages: catalog (modules and platforms),
// preset (named module bundles), version (minimum-version checks) and
// detect (host platform detection).
//
// # Quick Start
//
//	cfg := golwjgl.NewConfig()
//	cfg.Modules(catalog.GLFW, catalog.OpenGL)
//	cfg.NativePlatforms(catalog.Linux, catalog.Windows)
//
//	result, err := golwjgl.Resolve(cfg)
//	// result.Implementation: org.lwjgl:lwjgl:3.3.6, org.lwjgl:lwjgl-glfw:3.3.6, ...
//	// result.Runtime:        org.lwjgl:lwjgl:3.3.6:natives-linux, ...
//
// From a config file:
//
//	result, err := golwjgl.ResolveFile("LWJGL.bazel")
//
// # Platforms
//
// When no native platforms are configured, the platform of the running
// process is detected. Resolution fails with an error wrapping
// ErrUnsupportedPlatform if the host is not recognized; pass
// WithEnvironment to resolve for another machine.
//
// # Warnings
//
// Modules requested for a version older than their first release are kept
// and reported in Result.Warnings, unless they came from a preset with
// minimum-version filtering on, in which case they are dropped.
// WithStrictVersions turns the warnings into an error.
//
// # Thread Safety
//
// Resolver is safe for concurrent use. Config is not; build one per
// resolution or Clone it.
package golwjgl

import (
	"fmt"
)

// ResolveFile loads a config file (Starlark, or TOML for ".toml") and
// resolves it.
func ResolveFile(path string, opts ...Option) (*Result, error) {
	cfg, err := LoadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return Resolve(cfg, opts...)
}

// ResolveContent parses Starlark config content and resolves it.
func ResolveContent(content string, opts ...Option) (*Result, error) {
	cfg, err := ParseConfig(DefaultConfigFile, []byte(content))
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return Resolve(cfg, opts...)
}
