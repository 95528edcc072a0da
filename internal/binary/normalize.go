package binary

import (
	"strings"

	"github.com/tidewell/mongodist/internal/platform"
)

// normalizePlatform maps a generic host platform tag to the
// distributor's platform token. A Raspbian OS descriptor overrides the
// raw tag entirely: no prebuilt binaries exist for it, so the source
// archive is selected.
func normalizePlatform(raw string, os *platform.OSInfo) (string, error) {
	if os != nil && strings.Contains(strings.ToLower(os.Dist), "raspbian") {
		return PlatformSrc, nil
	}

	switch raw {
	case "darwin":
		return PlatformOSX, nil
	case "win32":
		return PlatformWin32, nil
	case "linux", "elementary OS":
		return PlatformLinux, nil
	case "sunos":
		return PlatformSunOS, nil
	default:
		return "", &UnsupportedPlatformError{Platform: raw}
	}
}

// normalizeArch maps a generic CPU architecture tag to the
// distributor's architecture token. The 32-bit legacy tag only has
// builds on linux and win32, under different names.
func normalizeArch(raw, normalizedPlatform string) (string, error) {
	switch raw {
	case "ia32":
		switch normalizedPlatform {
		case PlatformLinux:
			return ArchI686, nil
		case PlatformWin32:
			return ArchI386, nil
		default:
			return "", &UnsupportedArchitectureError{Arch: raw, Platform: normalizedPlatform}
		}
	case "x64":
		return ArchX8664, nil
	default:
		return "", &UnsupportedArchitectureError{Arch: raw}
	}
}
