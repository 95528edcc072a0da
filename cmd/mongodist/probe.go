package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tidewell/mongodist/internal/platform"
)

// createProbeCommand creates the probe subcommand
func createProbeCommand() *cobra.Command {
	probeCmd := &cobra.Command{
		Use:   "probe",
		Short: "Print the detected host OS descriptor",
		Long: `Probe the host operating system and print the distribution name
and release as seen by the resolver. Useful for checking which
Linux build qualifier a resolution on this host would use.`,
		RunE: executeProbe,
	}

	return probeCmd
}

// executeProbe handles the probe command logic
func executeProbe(cmd *cobra.Command, args []string) error {
	info, err := platform.NewDetector().Detect(cmd.Context())
	if err != nil {
		return fmt.Errorf("probing host OS: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "dist: %s\n", info.Dist)
	fmt.Fprintf(cmd.OutOrStdout(), "release: %s\n", info.Release)
	return nil
}
