package catalog

import "strings"

// classifierPrefix is prepended to a platform name to build its classifier.
const classifierPrefix = "natives-"

// Platform identifies a target OS and architecture for native binaries.
//
// The name is the identifier used in the classifier of the dependency
// coordinates: the platform "linux-arm64" selects the "natives-linux-arm64"
// classifier.
type Platform struct {
	Name string `json:"name"`
}

// Classifier returns the Maven classifier of this platform's native binaries.
func (p Platform) Classifier() string {
	return classifierPrefix + p.Name
}

// String returns the platform name.
func (p Platform) String() string {
	return p.Name
}

// Canonical platforms LWJGL publishes natives for.
var (
	LinuxArm64   = Platform{Name: "linux-arm64"}
	LinuxArm32   = Platform{Name: "linux-arm32"}
	Linux        = Platform{Name: "linux"}
	MacOSArm64   = Platform{Name: "macos-arm64"}
	MacOS        = Platform{Name: "macos"}
	WindowsArm64 = Platform{Name: "windows-arm64"}
	Windows      = Platform{Name: "windows"}
	WindowsX86   = Platform{Name: "windows-x86"}
)

var allPlatforms = []Platform{
	LinuxArm64, LinuxArm32, Linux, MacOSArm64, MacOS, WindowsArm64, Windows, WindowsX86,
}

// Platforms returns the canonical platforms. The returned slice is a copy.
func Platforms() []Platform {
	out := make([]Platform, len(allPlatforms))
	copy(out, allPlatforms)
	return out
}

// PlatformByName looks up a canonical platform. A "natives-" prefix is
// accepted so classifiers can be passed back in.
func PlatformByName(name string) (Platform, bool) {
	name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), classifierPrefix)
	for _, p := range allPlatforms {
		if p.Name == name {
			return p, true
		}
	}
	return Platform{}, false
}

// CustomPlatform returns a platform that is not part of the canonical list,
// for native builds published outside of LWJGL's own matrix.
func CustomPlatform(name string) Platform {
	return Platform{Name: name}
}
