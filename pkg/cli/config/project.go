package config

import (
	"path/filepath"

	"github.com/urfave/cli/v3"
)

// Project holds project layout configuration
type Project struct {
	Manifest string
	DistDir  string
}

// Flags returns CLI flags for project configuration
func (c *Project) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "manifest",
			Usage:       "Path to pyproject.toml",
			Value:       "pyproject.toml",
			Destination: &c.Manifest,
			Sources:     cli.EnvVars("POETRY_RELEASE_MANIFEST"),
		},
		&cli.StringFlag{
			Name:        "dist-dir",
			Usage:       "Directory containing build artifacts",
			Value:       "dist",
			Destination: &c.DistDir,
			Sources:     cli.EnvVars("POETRY_RELEASE_DIST_DIR"),
		},
	}
}

// Root returns the project root directory, derived from the manifest path
func (c *Project) Root() string {
	return filepath.Dir(c.Manifest)
}
