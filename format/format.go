package format

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	golwjgl "github.com/albertocavalcante/go-lwjgl"
)

const separatorWidth = 60 // Width of separator lines in text output

// Format names an output format.
type Format string

// Supported output formats.
const (
	Text        Format = "text"
	JSON        Format = "json"
	Coordinates Format = "coordinates"
	Maven       Format = "maven"
	Gradle      Format = "gradle"
	Starlark    Format = "starlark"
)

// ErrUnknownFormat is returned by Parse for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown output format")

var allFormats = []Format{Text, JSON, Coordinates, Maven, Gradle, Starlark}

// Formats returns every supported format.
func Formats() []Format {
	return append([]Format(nil), allFormats...)
}

// Parse returns the format with the given name, ignoring case.
func Parse(name string) (Format, error) {
	for _, f := range allFormats {
		if strings.EqualFold(string(f), strings.TrimSpace(name)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (valid: %s)", ErrUnknownFormat, name, formatNames())
}

func formatNames() string {
	names := make([]string, len(allFormats))
	for i, f := range allFormats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Render renders r in the given format.
func Render(r *golwjgl.Result, f Format) ([]byte, error) {
	switch f {
	case Text:
		return []byte(ToText(r)), nil
	case JSON:
		return ToJSON(r)
	case Coordinates:
		return []byte(ToCoordinates(r)), nil
	case Maven:
		return ToMaven(r)
	case Gradle:
		return []byte(ToGradle(r)), nil
	case Starlark:
		return []byte(ToStarlark(r, DefaultRepositoryName)), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownFormat, f)
}

// ToJSON outputs the result as indented JSON with a trailing newline.
func ToJSON(r *golwjgl.Result) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// ToText outputs a human-readable summary of the result.
func ToText(r *golwjgl.Result) string {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("LWJGL %s (%s)\n", r.Version, r.Group))
	buf.WriteString(strings.Repeat("=", separatorWidth) + "\n\n")

	buf.WriteString(fmt.Sprintf("Modules: %d (%d with natives)\n", r.Summary.Modules, r.Summary.NativeModules))
	platforms := strings.Join(r.PlatformNames(), ", ")
	if platforms == "" {
		platforms = "none"
	}
	if r.PlatformDetected {
		platforms += " (detected)"
	}
	buf.WriteString(fmt.Sprintf("Platforms: %s\n", platforms))
	buf.WriteString(fmt.Sprintf("Dependencies: %d\n", r.Summary.Dependencies))

	writeCoordinates(&buf, r.ImplementationBucket, r.Implementation)
	writeCoordinates(&buf, r.RuntimeBucket, r.Runtime)

	if len(r.Warnings) > 0 {
		buf.WriteString("\nWarnings:\n")
		for _, w := range r.Warnings {
			buf.WriteString("  ! " + w + "\n")
		}
	}

	return buf.String()
}

func writeCoordinates(buf *bytes.Buffer, bucket string, coords []golwjgl.Coordinate) {
	if len(coords) == 0 {
		return
	}
	buf.WriteString(fmt.Sprintf("\n%s:\n", bucket))
	for i, c := range coords {
		connector := "├── "
		if i == len(coords)-1 {
			connector = "└── "
		}
		buf.WriteString(connector + c.String() + "\n")
	}
}

// ToCoordinates outputs every coordinate on its own line, implementation
// coordinates first.
func ToCoordinates(r *golwjgl.Result) string {
	var buf bytes.Buffer
	for _, c := range r.Implementation {
		buf.WriteString(c.String() + "\n")
	}
	for _, c := range r.Runtime {
		buf.WriteString(c.String() + "\n")
	}
	return buf.String()
}

// ToGradle outputs a Gradle Kotlin DSL dependencies block using the
// result's bucket names as configurations.
func ToGradle(r *golwjgl.Result) string {
	var buf bytes.Buffer
	buf.WriteString("dependencies {\n")
	for _, c := range r.Implementation {
		buf.WriteString(fmt.Sprintf("    %s(%q)\n", r.ImplementationBucket, c.String()))
	}
	for _, c := range r.Runtime {
		buf.WriteString(fmt.Sprintf("    %s(%q)\n", r.RuntimeBucket, c.String()))
	}
	buf.WriteString("}\n")
	return buf.String()
}

type pomDependencies struct {
	XMLName      xml.Name        `xml:"dependencies"`
	Dependencies []pomDependency `xml:"dependency"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Classifier string `xml:"classifier,omitempty"`
	Scope      string `xml:"scope,omitempty"`
}

// ToMaven outputs a POM <dependencies> block. Native coordinates get the
// runtime scope.
func ToMaven(r *golwjgl.Result) ([]byte, error) {
	pom := pomDependencies{
		Dependencies: make([]pomDependency, 0, len(r.Implementation)+len(r.Runtime)),
	}
	for _, c := range r.Implementation {
		pom.Dependencies = append(pom.Dependencies, pomDependency{
			GroupID:    c.Group,
			ArtifactID: c.Artifact,
			Version:    c.Version,
		})
	}
	for _, c := range r.Runtime {
		pom.Dependencies = append(pom.Dependencies, pomDependency{
			GroupID:    c.Group,
			ArtifactID: c.Artifact,
			Version:    c.Version,
			Classifier: c.Classifier,
			Scope:      "runtime",
		})
	}
	data, err := xml.MarshalIndent(pom, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
