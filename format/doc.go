// Package format renders a resolution result for humans and for other
// build tools.
//
// Output formats:
//   - text: human-readable summary of modules, platforms and coordinates
//   - json: the Result as indented JSON
//   - coordinates: one Gradle-style coordinate per line
//   - maven: a POM <dependencies> block
//   - gradle: a Gradle Kotlin DSL dependencies block
//   - starlark: a MODULE.bazel snippet for rules_jvm_external
package format
