// Package binary resolves the download URL and archive filename for a
// prebuilt MongoDB distribution, given a target version, platform, CPU
// architecture, and optional SSL flag.
//
// # Resolution Pipeline
//
// 1. Platform/arch normalization (construction time)
//   - Generic host tags are mapped to the distributor's naming
//     convention (darwin -> osx, x64 -> x86_64, ...)
//   - A Raspbian OS descriptor overrides the platform to the source
//     archive form ("src")
//   - Unrecognized values fail immediately with typed errors
//
// 2. Linux distribution qualifier (resolution time)
//   - Only for linux targets on 64-bit architectures
//   - The OS descriptor is taken from the configuration, or probed
//     once via a platform.Detector and cached on the resolver
//   - An ordered rule table maps the distribution name and release to
//     a version qualifier (e.g. "ubuntu1604", "rhel70", "debian81")
//   - Unrecognized distributions log a warning and use no qualifier
//
// 3. Archive name and URL assembly
//   - mongodb-{platform}[-ssl][-{arch}][-{qualifier}]-{version}.{ext}
//   - https://downloads.mongodb.org/{platform}/{archive}
//
// # Usage
//
//	r, err := binary.New(binary.Config{
//	    Version:  "4.0.0",
//	    Platform: "linux",
//	    Arch:     "x64",
//	})
//	if err != nil {
//	    return err
//	}
//	url, err := r.DownloadURL(ctx)
//
// The package produces strings only; downloading, verification, and
// extraction belong to the caller.
package binary
