package golwjgl

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration failures.
var (
	// ErrUnsupportedPlatform indicates no native platforms were configured
	// and the host platform could not be detected.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrUnknownModule indicates a module name that is not in the catalog.
	ErrUnknownModule = errors.New("unknown module")

	// ErrUnknownPlatform indicates a platform name that is not canonical.
	// Use custom_native_platforms for names outside the catalog.
	ErrUnknownPlatform = errors.New("unknown platform")

	// ErrUnknownPreset indicates a preset name that does not exist.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrMinVersion indicates a selected module requires a newer LWJGL
	// version. Only returned when strict versions are enabled.
	ErrMinVersion = errors.New("minimum version not met")

	// ErrNoHandler indicates Install was called without a dependency handler.
	ErrNoHandler = errors.New("no dependency handler")
)

// PlatformError reports a host that platform detection does not recognize.
type PlatformError struct {
	Arch   string
	OSName string
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("unrecognized or unsupported operating system (os.name=%q, os.arch=%q): set native platforms explicitly",
		e.OSName, e.Arch)
}

// Is makes errors.Is(err, ErrUnsupportedPlatform) match.
func (e *PlatformError) Is(target error) bool {
	return target == ErrUnsupportedPlatform
}
