package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tidewell/mongodist/internal/binary"
	"github.com/tidewell/mongodist/internal/manifest"
	"github.com/tidewell/mongodist/internal/platform"
)

var (
	resolveVersion  string
	resolvePlatform string
	resolveArch     string
	resolveSSL      bool
	resolveDist     string
	resolveRelease  string
	resolveArchive  bool
	resolveTargets  string
)

// createResolveCommand creates the resolve subcommand
func createResolveCommand() *cobra.Command {
	resolveCmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the download URL for a MongoDB version",
		Long: `Resolve the download URL (or archive filename) for a MongoDB
version. Platform and architecture default to the current host. A
YAML manifest can be supplied with --targets to resolve several
targets at once.`,
		RunE: executeResolve,
	}

	resolveCmd.Flags().StringVar(&resolveVersion, "version", "", "target MongoDB version (e.g. 4.0.0)")
	resolveCmd.Flags().StringVar(&resolvePlatform, "platform", "", "target platform (darwin, win32, linux, sunos); defaults to the host")
	resolveCmd.Flags().StringVar(&resolveArch, "arch", "", "target architecture (x64, ia32); defaults to the host")
	resolveCmd.Flags().BoolVar(&resolveSSL, "ssl", false, "select the SSL-enabled build")
	resolveCmd.Flags().StringVar(&resolveDist, "dist", "", "Linux distribution name; skips host probing")
	resolveCmd.Flags().StringVar(&resolveRelease, "release", "", "Linux distribution release (with --dist)")
	resolveCmd.Flags().BoolVar(&resolveArchive, "archive-only", false, "print the archive filename instead of the URL")
	resolveCmd.Flags().StringVar(&resolveTargets, "targets", "", "YAML manifest of targets to resolve")

	return resolveCmd
}

// executeResolve handles the resolve command logic
func executeResolve(cmd *cobra.Command, args []string) error {
	if resolveTargets != "" {
		return resolveManifest(cmd, resolveTargets)
	}

	if resolveVersion == "" {
		return fmt.Errorf("no target version provided, usage: mongodist resolve --version VERSION")
	}

	cfg := binary.Config{
		Version:  resolveVersion,
		Platform: resolvePlatform,
		Arch:     resolveArch,
		SSL:      resolveSSL,
	}
	if cfg.Platform == "" {
		cfg.Platform = hostPlatform()
	}
	if cfg.Arch == "" {
		cfg.Arch = hostArch()
	}
	if resolveDist != "" {
		cfg.OS = &platform.OSInfo{Dist: resolveDist, Release: resolveRelease}
	}

	out, err := resolveOne(cmd, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// resolveManifest resolves every target in a manifest file, one
// result per line in manifest order.
func resolveManifest(cmd *cobra.Command, path string) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}

	log.Debugw("loaded target manifest", "path", path, "targets", len(m.Targets))

	for i, t := range m.Targets {
		out, err := resolveOne(cmd, t.Config())
		if err != nil {
			return fmt.Errorf("target %d: %w", i, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}

func resolveOne(cmd *cobra.Command, cfg binary.Config) (string, error) {
	r, err := binary.New(cfg, binary.WithLogger(&zapLogger{s: log}))
	if err != nil {
		return "", err
	}

	if resolveArchive {
		return r.ArchiveName(cmd.Context())
	}
	return r.DownloadURL(cmd.Context())
}

// hostPlatform maps the running host to the generic platform tag the
// resolver expects.
func hostPlatform() string {
	switch runtime.GOOS {
	case "windows":
		return "win32"
	case "solaris", "illumos":
		return "sunos"
	default:
		return runtime.GOOS
	}
}

// hostArch maps the running host to the generic architecture tag the
// resolver expects.
func hostArch() string {
	switch runtime.GOARCH {
	case "amd64":
		return "x64"
	case "386":
		return "ia32"
	default:
		return runtime.GOARCH
	}
}
