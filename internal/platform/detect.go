package platform

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using actual host inspection.
type RealDetector struct{}

// NewDetector creates a new OS detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Detect probes the host and returns its distribution name and release.
// The error from the underlying probe is returned unchanged so callers
// can surface it verbatim.
func (d *RealDetector) Detect(ctx context.Context) (*OSInfo, error) {
	dist, _, release, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		return nil, err
	}

	return &OSInfo{
		Dist:    strings.TrimSpace(dist),
		Release: strings.TrimSpace(release),
	}, nil
}
