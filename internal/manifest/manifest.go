// Package manifest loads YAML target manifests for batch resolution.
//
// A manifest lists the targets to resolve:
//
//	targets:
//	  - version: "4.0.0"
//	    platform: linux
//	    arch: x64
//	    os:
//	      dist: Ubuntu
//	      release: "16.04"
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tidewell/mongodist/internal/binary"
	"github.com/tidewell/mongodist/internal/platform"
)

// Manifest is a parsed target manifest.
type Manifest struct {
	Targets []Target `yaml:"targets"`
}

// Target is one resolution target in a manifest.
type Target struct {
	Version  string `yaml:"version"`
	Platform string `yaml:"platform"`
	Arch     string `yaml:"arch"`
	SSL      bool   `yaml:"ssl"`
	OS       *OS    `yaml:"os"`
}

// OS is an optional pre-supplied OS descriptor for a target.
type OS struct {
	Dist    string `yaml:"dist"`
	Release string `yaml:"release"`
}

// Config converts the target into a resolver configuration.
func (t Target) Config() binary.Config {
	cfg := binary.Config{
		Version:  t.Version,
		Platform: t.Platform,
		Arch:     t.Arch,
		SSL:      t.SSL,
	}
	if t.OS != nil {
		cfg.OS = &platform.OSInfo{
			Dist:    t.OS.Dist,
			Release: t.OS.Release,
		}
	}
	return cfg
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses manifest data and validates required fields.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	if len(m.Targets) == 0 {
		return nil, fmt.Errorf("manifest has no targets")
	}

	for i, t := range m.Targets {
		if t.Version == "" {
			return nil, fmt.Errorf("target %d: version is required", i)
		}
		if t.Platform == "" {
			return nil, fmt.Errorf("target %d: platform is required", i)
		}
		if t.Arch == "" {
			return nil, fmt.Errorf("target %d: arch is required", i)
		}
	}

	return &m, nil
}
