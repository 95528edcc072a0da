package binary

import (
	"context"
	"fmt"

	"github.com/tidewell/mongodist/internal/platform"
)

// downloadBase is the distributor's download endpoint.
const downloadBase = "https://downloads.mongodb.org"

// Resolver computes the archive filename and download URL for one
// target. The normalized platform and architecture are fixed at
// construction; the OS descriptor is the only field populated later,
// at most once.
//
// A Resolver is built per resolution and is not safe for concurrent
// use.
type Resolver struct {
	version  string
	platform string
	arch     string
	ssl      bool

	logger   Logger
	detector platform.Detector

	// osInfo caches the OS descriptor: either supplied via Config.OS
	// or probed once on first need.
	osInfo *platform.OSInfo
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for resolution warnings.
func WithLogger(l Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// WithDetector sets the OS probe used when no descriptor is supplied.
func WithDetector(d platform.Detector) Option {
	return func(r *Resolver) {
		r.detector = d
	}
}

// New creates a Resolver for the given target. Platform and
// architecture are normalized here; unrecognized values fail with
// *UnsupportedPlatformError or *UnsupportedArchitectureError.
func New(cfg Config, opts ...Option) (*Resolver, error) {
	p, err := normalizePlatform(cfg.Platform, cfg.OS)
	if err != nil {
		return nil, err
	}

	arch, err := normalizeArch(cfg.Arch, p)
	if err != nil {
		return nil, err
	}

	r := &Resolver{
		version:  cfg.Version,
		platform: p,
		arch:     arch,
		ssl:      cfg.SSL,
		logger:   defaultLogger(),
		detector: platform.NewDetector(),
		osInfo:   cfg.OS,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// DownloadURL returns the full download URL for the target.
func (r *Resolver) DownloadURL(ctx context.Context) (string, error) {
	name, err := r.ArchiveName(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", downloadBase, r.platform, name), nil
}

// ArchiveName returns the archive filename for the target. For Linux
// targets on 64-bit architectures this may probe the host OS; the
// probe runs at most once per Resolver.
func (r *Resolver) ArchiveName(ctx context.Context) (string, error) {
	name := "mongodb-" + r.platform

	if r.ssl {
		name += "-ssl"
	}

	// The source archive is not architecture-specific.
	if r.platform != PlatformSrc {
		name += "-" + r.arch
	}

	if r.platform == PlatformLinux && r.arch != ArchI686 {
		qualifier, err := r.linuxQualifier(ctx)
		if err != nil {
			return "", err
		}
		if qualifier != "" {
			name += "-" + qualifier
		}
	}

	if r.platform == PlatformSrc {
		return name + "-r" + r.version + "." + r.extension(), nil
	}
	return name + "-" + r.version + "." + r.extension(), nil
}

// extension returns the archive file extension for the platform.
func (r *Resolver) extension() string {
	switch r.platform {
	case PlatformWin32:
		return "zip"
	case PlatformSrc:
		return "tar.gz"
	default:
		return "tgz"
	}
}

// linuxQualifier classifies the host distribution and returns the
// OS-version qualifier, or an empty string for distributions without
// distribution-specific builds.
func (r *Resolver) linuxQualifier(ctx context.Context) (string, error) {
	info, err := r.os(ctx)
	if err != nil {
		return "", err
	}

	for _, rule := range distroRules {
		if rule.match(info.Dist) {
			return rule.qualifier(info.Release), nil
		}
	}

	r.logger.Warn("unrecognized linux distribution, using generic linux binaries",
		"dist", info.Dist)
	return "", nil
}

// os returns the OS descriptor, probing the host on first need. The
// cache slot is only ever written once, from nil to a probed value;
// probe errors propagate to the caller unchanged.
func (r *Resolver) os(ctx context.Context) (*platform.OSInfo, error) {
	if r.osInfo != nil {
		return r.osInfo, nil
	}

	info, err := r.detector.Detect(ctx)
	if err != nil {
		return nil, err
	}
	r.osInfo = info
	return r.osInfo, nil
}

// ResolveDownloadURL is a one-shot helper: it builds a Resolver for
// cfg and returns the download URL.
func ResolveDownloadURL(ctx context.Context, cfg Config, opts ...Option) (string, error) {
	r, err := New(cfg, opts...)
	if err != nil {
		return "", err
	}
	return r.DownloadURL(ctx)
}

// ResolveArchiveName is a one-shot helper: it builds a Resolver for
// cfg and returns the archive filename.
func ResolveArchiveName(ctx context.Context, cfg Config, opts ...Option) (string, error) {
	r, err := New(cfg, opts...)
	if err != nil {
		return "", err
	}
	return r.ArchiveName(ctx)
}
