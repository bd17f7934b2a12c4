// Package catalog holds the static reference data for LWJGL: the modules
// that can be requested as dependencies and the platforms native binaries
// are published for.
//
// # Modules
//
// Every module is a value keyed by its name. The attributes (whether the
// module ships native binaries, the first LWJGL release that published it,
// and the Maven artifact name) mirror the upstream LWJGL module table:
//
//	catalog.GLFW.Name        // "glfw"
//	catalog.GLFW.Artifact    // "lwjgl-glfw"
//	catalog.GLFW.HasNatives  // true
//	catalog.Core.Artifact    // "lwjgl"
//
// The table is built once at package initialization and never changes.
// [Modules] returns a copy of the full list (without [Core], which every
// resolution adds on its own).
//
// # Platforms
//
// A [Platform] is the suffix used to build the `natives-<name>` classifier.
// [Platforms] lists the eight platforms LWJGL publishes natives for. Any
// other name can be used through [CustomPlatform].
//
// # Sets
//
// [Set] is an insertion-ordered set of modules keyed by name. Adding a
// module whose name is already present is a no-op, which is how explicit
// selections and presets collapse duplicates.
package catalog
