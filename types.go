package golwjgl

import (
	"strings"

	"github.com/albertocavalcante/go-lwjgl/catalog"
)

// Default configuration values.
const (
	DefaultGroup                = "org.lwjgl"
	DefaultVersion              = "3.3.6"
	DefaultImplementationBucket = "implementation"
	DefaultRuntimeBucket        = "runtimeOnly"
)

// Coordinate is a resolved Maven dependency.
type Coordinate struct {
	Group    string `json:"group"`
	Artifact string `json:"artifact"`
	Version  string `json:"version"`

	// Classifier selects a platform's native binaries, e.g.
	// "natives-linux". Empty for the main artifact.
	Classifier string `json:"classifier,omitempty"`
}

// String returns the Gradle notation group:artifact:version[:classifier].
func (c Coordinate) String() string {
	parts := []string{c.Group, c.Artifact, c.Version}
	if c.Classifier != "" {
		parts = append(parts, c.Classifier)
	}
	return strings.Join(parts, ":")
}

// Result is the outcome of resolving a Config.
type Result struct {
	// Group and Version are the values the coordinates were built with.
	Group   string `json:"group"`
	Version string `json:"version"`

	// ImplementationBucket and RuntimeBucket name the dependency buckets
	// Install adds coordinates to.
	ImplementationBucket string `json:"implementation_bucket"`
	RuntimeBucket        string `json:"runtime_bucket"`

	// Modules is the final module selection: core first, then preset
	// modules, then explicit modules.
	Modules []catalog.Module `json:"modules"`

	// Platforms are the native platforms, explicit or detected.
	Platforms []catalog.Platform `json:"platforms"`

	// PlatformDetected is true when Platforms came from the host.
	PlatformDetected bool `json:"platform_detected,omitempty"`

	// Implementation holds one coordinate per selected module.
	Implementation []Coordinate `json:"implementation"`

	// Runtime holds one classified coordinate per native module and platform.
	Runtime []Coordinate `json:"runtime"`

	// Warnings contains non-fatal issues, such as modules requested for a
	// version older than their first release.
	Warnings []string `json:"warnings,omitempty"`

	// Summary provides aggregate counts.
	Summary ResolutionSummary `json:"summary"`
}

// ResolutionSummary provides statistics about a resolution.
type ResolutionSummary struct {
	// Modules is the count of selected modules, core included.
	Modules int `json:"modules"`

	// NativeModules is the count of selected modules with native binaries.
	NativeModules int `json:"native_modules"`

	// Platforms is the count of native platforms.
	Platforms int `json:"platforms"`

	// Dependencies is the total number of coordinates across both buckets.
	Dependencies int `json:"dependencies"`
}

// ModuleNames returns the names of the selected modules in order.
func (r *Result) ModuleNames() []string {
	names := make([]string, len(r.Modules))
	for i, m := range r.Modules {
		names[i] = m.Name
	}
	return names
}

// PlatformNames returns the names of the native platforms in order.
func (r *Result) PlatformNames() []string {
	names := make([]string, len(r.Platforms))
	for i, p := range r.Platforms {
		names[i] = p.Name
	}
	return names
}

// IsEmpty reports whether the resolution produced no coordinates.
func (r *Result) IsEmpty() bool {
	return len(r.Implementation) == 0 && len(r.Runtime) == 0
}
