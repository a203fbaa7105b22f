package github

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/release-tools/poetry-release/pkg/domain/interfaces"
	"github.com/release-tools/poetry-release/pkg/domain/model"
)

type client struct {
	githubClient *github.Client
}

// Option configures the GitHub client
type Option func(*client) error

// WithEndpoints overrides the API and upload base URLs. Used for tests
// against a local HTTP server.
func WithEndpoints(apiURL, uploadURL string) Option {
	return func(c *client) error {
		base, err := url.Parse(ensureTrailingSlash(apiURL))
		if err != nil {
			return goerr.Wrap(err, "invalid API base URL", goerr.V("url", apiURL))
		}
		upload, err := url.Parse(ensureTrailingSlash(uploadURL))
		if err != nil {
			return goerr.Wrap(err, "invalid upload base URL", goerr.V("url", uploadURL))
		}
		c.githubClient.BaseURL = base
		c.githubClient.UploadURL = upload
		return nil
	}
}

// NewClient creates a new GitHub release client authenticated with a
// personal access token
func NewClient(token string, opts ...Option) (interfaces.ReleaseClient, error) {
	c := &client{
		githubClient: github.NewClient(nil).WithAuthToken(token),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// CreateRelease creates a release for req.Tag on the remote repository. The
// tag itself is created by the service when it does not exist yet. Release
// notes are generated server side.
func (c *client) CreateRelease(ctx context.Context, remote *model.GitRemote, req *model.ReleaseRequest) (*model.Release, error) {
	release, _, err := c.githubClient.Repositories.CreateRelease(ctx, remote.Owner, remote.Repo, &github.RepositoryRelease{
		TagName:              github.Ptr(req.Tag),
		TargetCommitish:      github.Ptr(req.TargetBranch),
		Prerelease:           github.Ptr(req.PreRelease),
		GenerateReleaseNotes: github.Ptr(true),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "create release request failed",
			goerr.V("owner", remote.Owner),
			goerr.V("repo", remote.Repo),
			goerr.V("tag", req.Tag),
		)
	}

	return &model.Release{
		ID:        release.GetID(),
		URL:       release.GetHTMLURL(),
		UploadURL: release.GetUploadURL(),
	}, nil
}

// UploadAsset uploads the file at path as a release asset. The asset name is
// the file's base name.
func (c *client) UploadAsset(ctx context.Context, remote *model.GitRemote, release *model.Release, path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return goerr.New("asset file doesn't exist or isn't a regular file",
			goerr.V("path", path),
		)
	}

	f, err := os.Open(path)
	if err != nil {
		return goerr.Wrap(err, "failed to open asset file", goerr.V("path", path))
	}
	defer f.Close()

	opts := &github.UploadOptions{
		Name:      filepath.Base(path),
		MediaType: mediaTypeFor(path),
	}

	if _, _, err := c.githubClient.Repositories.UploadReleaseAsset(ctx, remote.Owner, remote.Repo, release.ID, opts, f); err != nil {
		return goerr.Wrap(err, "failed to upload release asset",
			goerr.V("asset", opts.Name),
			goerr.V("release_id", release.ID),
		)
	}

	return nil
}

// mediaTypeFor returns the Content-Type for an asset upload. Gzip archives
// get their own type, everything else is sent as an opaque byte stream.
func mediaTypeFor(path string) string {
	if strings.HasSuffix(path, ".gz") {
		return "application/gzip"
	}
	return "application/octet-stream"
}

func ensureTrailingSlash(s string) string {
	if !strings.HasSuffix(s, "/") {
		return s + "/"
	}
	return s
}
