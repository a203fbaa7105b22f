package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/release-tools/poetry-release/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub API configuration
type GitHub struct {
	Token string `masq:"secret"`
}

// Flags returns CLI flags for GitHub configuration. The token is not marked
// required here: its absence must surface as the command's own coded error,
// not a flag parse failure.
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Destination: &c.Token,
			Sources:     cli.EnvVars("GITHUB_TOKEN"),
		},
	}
}

// Validate checks that a token is present
func (c *GitHub) Validate() error {
	if c.Token == "" {
		return goerr.New("in order to authenticate with GitHub, a PAT needs to be specified through a 'GITHUB_TOKEN' environment variable",
			goerr.T(types.TagMissingToken),
		)
	}
	return nil
}
