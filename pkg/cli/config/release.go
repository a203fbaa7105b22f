package config

import "github.com/urfave/cli/v3"

// Release holds release creation configuration
type Release struct {
	PreRelease   bool
	TargetBranch string
	Remote       string
}

// Flags returns CLI flags for release configuration
func (c *Release) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "pre-release",
			Aliases:     []string{"p"},
			Usage:       "Mark the release as a pre-release",
			Destination: &c.PreRelease,
		},
		&cli.StringFlag{
			Name:        "target-branch",
			Usage:       "Branch the tag points at when it does not exist yet",
			Value:       "main",
			Destination: &c.TargetBranch,
			Sources:     cli.EnvVars("POETRY_RELEASE_TARGET_BRANCH"),
		},
		&cli.StringFlag{
			Name:        "remote",
			Usage:       "Git remote to release to (required when the repository has more than one)",
			Destination: &c.Remote,
			Sources:     cli.EnvVars("POETRY_RELEASE_REMOTE"),
		},
	}
}
