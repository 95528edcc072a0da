package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

var verbose bool

// newRootCommand creates the mongodist root command
func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mongodist",
		Short: "Resolve download URLs for prebuilt MongoDB binaries",
		Long: `mongodist computes the download URL and archive filename for a
prebuilt MongoDB distribution, given a target version, platform, CPU
architecture, and optional SSL flag. On Linux it resolves the host
distribution to select a compatible binary build.

No network requests are made; mongodist only produces the URL.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogger()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(createResolveCommand())
	rootCmd.AddCommand(createProbeCommand())

	return rootCmd
}

// log is the process-wide logger, initialized before any command runs.
var log *zap.SugaredLogger

func initLogger() error {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	log = logger.Sugar()
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
