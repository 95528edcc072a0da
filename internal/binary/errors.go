package binary

import "fmt"

// UnsupportedPlatformError indicates the raw platform tag is not in
// the recognized set.
type UnsupportedPlatformError struct {
	Platform string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %s (supported: darwin, win32, linux, elementary OS, sunos)", e.Platform)
}

// UnsupportedArchitectureError indicates the raw architecture tag is
// not recognized, or is recognized but has no build for the target
// platform.
type UnsupportedArchitectureError struct {
	Arch string
	// Platform is set when the architecture itself is known but not
	// available on the normalized platform.
	Platform string
}

func (e *UnsupportedArchitectureError) Error() string {
	if e.Platform != "" {
		return fmt.Sprintf("unsupported architecture: %s is not available for platform %s", e.Arch, e.Platform)
	}
	return fmt.Sprintf("unsupported architecture: %s", e.Arch)
}
