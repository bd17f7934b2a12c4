// Package detect maps an OS name and CPU architecture to the LWJGL native
// platform that should be used for them.
//
// The vocabulary is the one the JVM reports through the os.name and os.arch
// system properties ("Mac OS X", "aarch64", "amd64", ...), since that is
// how LWJGL documents its platform matrix. [Host] converts the Go runtime's
// GOOS and GOARCH values into that vocabulary.
package detect

import (
	"runtime"
	"strings"

	"github.com/albertocavalcante/go-lwjgl/catalog"
)

// macOSNames are the substrings that identify macOS in an OS name.
var macOSNames = []string{"mac os", "macos", "darwin"}

// Detect returns the canonical platform for an architecture and an OS name.
// The OS name must already be lowercased; the architecture is matched as is.
// The boolean is false when the OS family is not recognized, in which case
// the caller has to be told which platforms to use.
//
// Windows mapping: a 64-bit architecture that is not "aarch64*" selects
// "windows" (x64), any other 64-bit architecture selects "windows-arm64",
// everything else selects "windows-x86".
func Detect(arch, osName string) (catalog.Platform, bool) {
	isAarch64 := strings.HasPrefix(arch, "aarch64")
	is64Bit := strings.Contains(arch, "64")
	isArm := strings.HasPrefix(arch, "arm") || isAarch64

	switch {
	case strings.Contains(osName, "windows"):
		switch {
		case is64Bit && !isAarch64:
			return catalog.Windows, true
		case is64Bit:
			return catalog.WindowsArm64, true
		default:
			return catalog.WindowsX86, true
		}

	case strings.Contains(osName, "linux"):
		switch {
		case isArm && (is64Bit || strings.HasPrefix(arch, "armv8")):
			return catalog.LinuxArm64, true
		case isArm:
			return catalog.LinuxArm32, true
		default:
			return catalog.Linux, true
		}

	case containsAny(osName, macOSNames):
		if isAarch64 {
			return catalog.MacOSArm64, true
		}
		return catalog.MacOS, true
	}

	return catalog.Platform{}, false
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Environment is a snapshot of the values platform detection reads.
type Environment struct {
	// Arch is the CPU architecture, e.g. "amd64" or "aarch64".
	Arch string

	// OSName is the operating system name in any case, e.g. "Mac OS X".
	OSName string
}

// Platform runs Detect on the environment, lowercasing the OS name first.
func (e Environment) Platform() (catalog.Platform, bool) {
	return Detect(e.Arch, strings.ToLower(e.OSName))
}

// IsZero reports whether neither field is set.
func (e Environment) IsZero() bool {
	return e.Arch == "" && e.OSName == ""
}

// goarchNames translates GOARCH values that differ from the JVM's os.arch.
var goarchNames = map[string]string{
	"arm64": "aarch64",
	"386":   "x86",
}

// goosNames translates GOOS values that differ from the JVM's os.name.
var goosNames = map[string]string{
	"darwin":  "Mac OS X",
	"linux":   "Linux",
	"windows": "Windows",
}

// FromGo builds an Environment from GOOS and GOARCH style values.
func FromGo(goos, goarch string) Environment {
	arch := goarch
	if name, ok := goarchNames[goarch]; ok {
		arch = name
	}
	osName := goos
	if name, ok := goosNames[goos]; ok {
		osName = name
	}
	return Environment{Arch: arch, OSName: osName}
}

// Host returns the environment of the running process.
func Host() Environment {
	return FromGo(runtime.GOOS, runtime.GOARCH)
}
