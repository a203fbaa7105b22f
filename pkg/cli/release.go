package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/release-tools/poetry-release/pkg/cli/config"
	"github.com/release-tools/poetry-release/pkg/domain/model"
	"github.com/release-tools/poetry-release/pkg/domain/types"
	githubinfra "github.com/release-tools/poetry-release/pkg/infra/github"
	"github.com/release-tools/poetry-release/pkg/infra/gitremote"
	"github.com/release-tools/poetry-release/pkg/infra/project"
	"github.com/release-tools/poetry-release/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRelease() *cli.Command {
	var (
		githubCfg  config.GitHub
		projectCfg config.Project
		releaseCfg config.Release
	)

	flags := append(githubCfg.Flags(), projectCfg.Flags()...)
	flags = append(flags, releaseCfg.Flags()...)

	return &cli.Command{
		Name:    "release",
		Aliases: []string{"r"},
		Usage:   "Create a git tag and a GitHub release, attaching built artifacts",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			meta, err := project.LoadManifest(projectCfg.Manifest)
			if err != nil {
				return err
			}

			remote, err := selectRemote(projectCfg.Root(), releaseCfg.Remote)
			if err != nil {
				return err
			}

			if err := githubCfg.Validate(); err != nil {
				return err
			}

			artifacts, err := project.FindArtifacts(projectCfg.DistDir, meta)
			if err != nil {
				return err
			}

			logger.Info("Starting release",
				slog.String("project", meta.Name),
				slog.String("tag", meta.Tag()),
				slog.String("remote", remote.Name),
				slog.Int("artifacts", len(artifacts)),
			)

			client, err := githubinfra.NewClient(githubCfg.Token)
			if err != nil {
				return goerr.Wrap(err, "failed to create GitHub client")
			}

			releaseUC := usecase.NewRelease(client)

			result, err := releaseUC.Run(ctx, &model.ReleaseRequest{
				Tag:          meta.Tag(),
				ProjectName:  meta.Name,
				Remote:       remote,
				TargetBranch: releaseCfg.TargetBranch,
				PreRelease:   releaseCfg.PreRelease,
				Artifacts:    artifacts,
			})
			if err != nil {
				return err
			}

			if failed := result.FailedCount(); failed > 0 {
				logger.Warn("Some assets failed to upload",
					slog.Int("failed", failed),
					slog.Int("total", len(result.Uploaded)),
				)
			}

			return nil
		},
	}
}

// selectRemote resolves the single remote to release to. With a name given,
// that remote must exist. Without one, the repository must have exactly one
// remote.
func selectRemote(root, name string) (*model.GitRemote, error) {
	remotes, err := gitremote.Discover(root)
	if err != nil {
		return nil, err
	}

	if len(remotes) == 0 {
		return nil, goerr.New("found 0 git remotes",
			goerr.T(types.TagNoRemote),
		)
	}

	if name != "" {
		for _, r := range remotes {
			if r.Name == name {
				return r, nil
			}
		}
		return nil, goerr.New("named git remote not found",
			goerr.T(types.TagNoRemote),
			goerr.V("remote", name),
		)
	}

	if len(remotes) > 1 {
		return nil, goerr.New("found multiple git remotes, use --remote to choose one",
			goerr.T(types.TagAmbiguousRemote),
			goerr.V("count", len(remotes)),
		)
	}

	return remotes[0], nil
}
