package binary

import (
	"github.com/tidewell/mongodist/internal/platform"
)

// Platform tokens used by the distributor's archive naming convention.
const (
	PlatformOSX   = "osx"
	PlatformWin32 = "win32"
	PlatformLinux = "linux"
	PlatformSunOS = "sunos5"
	// PlatformSrc selects the source archive; used for hosts (such as
	// Raspbian) that have no prebuilt binaries.
	PlatformSrc = "src"
)

// Architecture tokens used by the distributor.
const (
	ArchX8664 = "x86_64"
	ArchI686  = "i686"
	ArchI386  = "i386"
)

// Config holds the inputs for one resolution. It is not modified by
// the resolver.
type Config struct {
	// Version is the target MongoDB version (e.g. "4.0.0"). The value
	// is embedded in the archive name verbatim; no format validation
	// is performed.
	Version string
	// Platform is the generic host platform tag (e.g. "darwin",
	// "win32", "linux").
	Platform string
	// Arch is the generic CPU architecture tag (e.g. "x64", "ia32").
	Arch string
	// SSL selects the SSL-enabled binary build where one exists.
	SSL bool
	// OS optionally supplies a pre-fetched OS descriptor. When nil and
	// the target requires distribution-specific binaries, the resolver
	// probes the host once.
	OS *platform.OSInfo
}

// Logger provides structured logging for resolution warnings.
// This interface allows users to plug in their own logging implementation.
type Logger interface {
	// Debug logs debug-level messages with optional key-value pairs.
	Debug(msg string, keysAndValues ...interface{})

	// Info logs info-level messages with optional key-value pairs.
	Info(msg string, keysAndValues ...interface{})

	// Warn logs warning-level messages with optional key-value pairs.
	Warn(msg string, keysAndValues ...interface{})

	// Error logs error-level messages with optional key-value pairs.
	Error(msg string, keysAndValues ...interface{})
}

// noopLogger is a Logger implementation that does nothing.
// This is the default logger used when none is provided.
type noopLogger struct{}

func (n *noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (n *noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (n *noopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (n *noopLogger) Error(msg string, keysAndValues ...interface{}) {}

// defaultLogger returns the default no-op logger.
func defaultLogger() Logger {
	return &noopLogger{}
}
