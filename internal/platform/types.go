// Package platform probes the host operating system for the
// distribution details that drive OS-specific binary selection.
//
// On Linux the probe reports the distribution name and release (for
// example "ubuntu" / "16.04") using gopsutil. Other operating systems
// report whatever gopsutil knows about them; callers that only need
// the generic platform tag should use runtime.GOOS instead.
package platform

import "context"

// OSInfo describes the host operating system as reported by the probe.
type OSInfo struct {
	// Dist is the distribution name (e.g. "ubuntu", "centos").
	Dist string
	// Release is the distribution release identifier (e.g. "16.04").
	// May be empty when the host does not report one.
	Release string
}

// Detector is the interface for OS probing.
type Detector interface {
	Detect(ctx context.Context) (*OSInfo, error)
}
