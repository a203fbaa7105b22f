package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/release-tools/poetry-release/pkg/domain/interfaces"
	"github.com/release-tools/poetry-release/pkg/domain/model"
	"github.com/release-tools/poetry-release/pkg/domain/types"
)

type releaseUseCase struct {
	client interfaces.ReleaseClient
	out    io.Writer
}

// Option configures the release use case
type Option func(*releaseUseCase)

// WithOutput sets the writer for the human-readable report (default: stdout)
func WithOutput(w io.Writer) Option {
	return func(uc *releaseUseCase) {
		uc.out = w
	}
}

// NewRelease creates a new instance of ReleaseUseCase
func NewRelease(client interfaces.ReleaseClient, opts ...Option) interfaces.ReleaseUseCase {
	uc := &releaseUseCase{
		client: client,
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func doneMark() string {
	return color.New(color.FgGreen).Sprint("Done.")
}

func failedMark() string {
	return color.New(color.FgRed).Sprint("Failed.")
}

// Run creates the tag/release and uploads the requested artifacts in order.
// Release creation failure is fatal and no upload is attempted. A single
// failed upload is recorded in the result and remaining uploads still run.
func (uc *releaseUseCase) Run(ctx context.Context, req *model.ReleaseRequest) (*model.ReleaseResult, error) {
	logger := ctxlog.From(ctx)

	logger.Info("Creating release",
		"owner", req.Remote.Owner,
		"repo", req.Remote.Repo,
		"tag", req.Tag,
		"pre_release", req.PreRelease,
		"artifacts", len(req.Artifacts),
	)

	release, err := uc.client.CreateRelease(ctx, req.Remote, req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create release",
			goerr.T(types.TagReleaseCreation),
			goerr.V("tag", req.Tag),
			goerr.V("owner", req.Remote.Owner),
			goerr.V("repo", req.Remote.Repo),
		)
	}

	fmt.Fprintf(uc.out, "Release %s created and accessable through the following URL:\n", req.Tag)
	fmt.Fprintf(uc.out, "  %s\n", release.URL)

	result := &model.ReleaseResult{
		ReleaseURL: release.URL,
		Uploaded:   make([]model.AssetUpload, 0, len(req.Artifacts)),
	}

	if len(req.Artifacts) > 0 {
		fmt.Fprintf(uc.out, "Attempting to attach %d asset(s) to the release.\n", len(req.Artifacts))
	}

	for i, path := range req.Artifacts {
		name := filepath.Base(path)
		fmt.Fprintf(uc.out, "  %d. Uploading '%s'...", i+1, name)

		if err := uc.client.UploadAsset(ctx, req.Remote, release, path); err != nil {
			fmt.Fprintf(uc.out, " %s\n", failedMark())
			fmt.Fprintln(uc.out, err.Error())

			logger.Error("Failed to upload asset",
				"asset", name,
				"error", err,
			)
			result.Uploaded = append(result.Uploaded, model.AssetUpload{
				Name:   name,
				Status: model.StatusFailed,
				Reason: err.Error(),
			})
			continue
		}

		fmt.Fprintf(uc.out, " %s\n", doneMark())
		result.Uploaded = append(result.Uploaded, model.AssetUpload{
			Name:   name,
			Status: model.StatusUploaded,
		})
	}

	logger.Info("Release workflow finished",
		"release_url", result.ReleaseURL,
		"uploaded", len(result.Uploaded)-result.FailedCount(),
		"failed", result.FailedCount(),
	)

	return result, nil
}
