package catalog

// DefaultMinVersion is the first LWJGL 3 release with Maven artifacts.
// Modules without a later introduction date default to it.
const DefaultMinVersion = "3.1.0"

// artifactPrefix is prepended to a module name to build its artifact name.
const artifactPrefix = "lwjgl-"

// Module identifies an LWJGL component that can be requested as a dependency.
//
// Two modules are the same module when their names are equal. Code that
// needs identity should key on Name (see [Set]); the remaining fields are
// informational.
type Module struct {
	// Name is the short identifier, e.g. "glfw".
	Name string `json:"name"`

	// HasNatives reports whether the module ships platform-specific native
	// binaries, which require one runtime dependency per platform.
	HasNatives bool `json:"has_natives"`

	// MinVersion is the first LWJGL version that published this module.
	MinVersion string `json:"min_version"`

	// Artifact is the Maven artifact name, "lwjgl-<name>" for everything
	// except the core module.
	Artifact string `json:"artifact"`
}

// NewModule returns a module with native binaries, the default minimum
// version, and the default artifact name. Use the With* methods to adjust
// the other attributes.
func NewModule(name string) Module {
	return Module{
		Name:       name,
		HasNatives: true,
		MinVersion: DefaultMinVersion,
		Artifact:   artifactPrefix + name,
	}
}

// WithoutNatives returns a copy of m that ships no native binaries.
func (m Module) WithoutNatives() Module {
	m.HasNatives = false
	return m
}

// WithMinVersion returns a copy of m with the given minimum version.
func (m Module) WithMinVersion(v string) Module {
	m.MinVersion = v
	return m
}

// WithArtifact returns a copy of m with a custom artifact name.
func (m Module) WithArtifact(artifact string) Module {
	m.Artifact = artifact
	return m
}

// String returns the module name.
func (m Module) String() string {
	return m.Name
}
