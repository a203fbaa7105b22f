package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/m-mizutani/gt"

	"github.com/release-tools/poetry-release/pkg/domain/model"
	"github.com/release-tools/poetry-release/pkg/domain/types"
	"github.com/release-tools/poetry-release/pkg/usecase"
)

func init() {
	color.NoColor = true
}

// MockReleaseClient is a mock implementation of ReleaseClient
type MockReleaseClient struct {
	createReleaseFunc func(ctx context.Context, remote *model.GitRemote, req *model.ReleaseRequest) (*model.Release, error)
	uploadAssetFunc   func(ctx context.Context, remote *model.GitRemote, release *model.Release, path string) error
	uploadCalls       []string
}

func (m *MockReleaseClient) CreateRelease(ctx context.Context, remote *model.GitRemote, req *model.ReleaseRequest) (*model.Release, error) {
	if m.createReleaseFunc != nil {
		return m.createReleaseFunc(ctx, remote, req)
	}
	return nil, errors.New("mock not configured")
}

func (m *MockReleaseClient) UploadAsset(ctx context.Context, remote *model.GitRemote, release *model.Release, path string) error {
	m.uploadCalls = append(m.uploadCalls, path)
	if m.uploadAssetFunc != nil {
		return m.uploadAssetFunc(ctx, remote, release, path)
	}
	return nil
}

func testRequest(artifacts ...string) *model.ReleaseRequest {
	return &model.ReleaseRequest{
		Tag:         "v0.1.0",
		ProjectName: "poetry-plugin-github-release",
		Remote: &model.GitRemote{
			Name:  "origin",
			URL:   "git@github.com:owner/repo.git",
			Owner: "owner",
			Repo:  "repo",
		},
		TargetBranch: "main",
		Artifacts:    artifacts,
	}
}

func TestRelease_Run_Success(t *testing.T) {
	ctx := context.Background()

	mockClient := &MockReleaseClient{
		createReleaseFunc: func(ctx context.Context, remote *model.GitRemote, req *model.ReleaseRequest) (*model.Release, error) {
			return &model.Release{
				ID:  7,
				URL: "https://github.com/owner/repo/releases/tag/" + req.Tag,
			}, nil
		},
	}

	var out bytes.Buffer
	uc := usecase.NewRelease(mockClient, usecase.WithOutput(&out))

	req := testRequest(
		"dist/poetry-plugin-github-release-0.1.0.tar.gz",
		"dist/poetry_plugin_github_release-0.1.0-py3-none-any.whl",
	)

	result, err := uc.Run(ctx, req)
	gt.NoError(t, err)
	gt.Value(t, result).NotNil()

	gt.String(t, result.ReleaseURL).Contains("/releases/tag/v0.1.0")
	gt.Number(t, len(result.Uploaded)).Equal(2)
	gt.Value(t, result.Uploaded[0].Name).Equal("poetry-plugin-github-release-0.1.0.tar.gz")
	gt.Value(t, result.Uploaded[0].Status).Equal(model.StatusUploaded)
	gt.Value(t, result.Uploaded[1].Name).Equal("poetry_plugin_github_release-0.1.0-py3-none-any.whl")
	gt.Value(t, result.Uploaded[1].Status).Equal(model.StatusUploaded)
	gt.Number(t, result.FailedCount()).Equal(0)

	// Uploads happen in request order
	gt.Array(t, mockClient.uploadCalls).Equal([]string{
		"dist/poetry-plugin-github-release-0.1.0.tar.gz",
		"dist/poetry_plugin_github_release-0.1.0-py3-none-any.whl",
	})

	report := out.String()
	gt.String(t, report).Contains("Release v0.1.0 created and accessable through the following URL:")
	gt.String(t, report).Contains("  https://github.com/owner/repo/releases/tag/v0.1.0")
	gt.String(t, report).Contains("Attempting to attach 2 asset(s) to the release.")
	gt.String(t, report).Contains("  1. Uploading 'poetry-plugin-github-release-0.1.0.tar.gz'... Done.")
	gt.String(t, report).Contains("  2. Uploading 'poetry_plugin_github_release-0.1.0-py3-none-any.whl'... Done.")
}

func TestRelease_Run_CreateReleaseError(t *testing.T) {
	ctx := context.Background()

	mockClient := &MockReleaseClient{
		createReleaseFunc: func(ctx context.Context, remote *model.GitRemote, req *model.ReleaseRequest) (*model.Release, error) {
			return nil, errors.New("422 Validation Failed: tag_name already_exists")
		},
	}

	var out bytes.Buffer
	uc := usecase.NewRelease(mockClient, usecase.WithOutput(&out))

	result, err := uc.Run(ctx, testRequest("dist/pkg-0.1.0.tar.gz"))

	gt.Error(t, err)
	gt.Value(t, result).Nil()
	gt.Number(t, types.ExitCode(err)).Equal(5)

	// Fatal: no upload is attempted
	gt.Number(t, len(mockClient.uploadCalls)).Equal(0)
	gt.String(t, out.String()).NotContains("Uploading")
}

func TestRelease_Run_PartialUploadFailure(t *testing.T) {
	ctx := context.Background()

	mockClient := &MockReleaseClient{
		createReleaseFunc: func(ctx context.Context, remote *model.GitRemote, req *model.ReleaseRequest) (*model.Release, error) {
			return &model.Release{ID: 7, URL: "https://github.com/owner/repo/releases/tag/v0.1.0"}, nil
		},
		uploadAssetFunc: func(ctx context.Context, remote *model.GitRemote, release *model.Release, path string) error {
			if strings.HasSuffix(path, ".tar.gz") {
				return errors.New("upload error")
			}
			return nil
		},
	}

	var out bytes.Buffer
	uc := usecase.NewRelease(mockClient, usecase.WithOutput(&out))

	req := testRequest(
		"dist/pkg-0.1.0.tar.gz",
		"dist/pkg-0.1.0-py3-none-any.whl",
		"dist/pkg-0.1.0.extra",
	)

	result, err := uc.Run(ctx, req)
	gt.NoError(t, err)

	// A single failure does not abort the remaining uploads
	gt.Number(t, len(mockClient.uploadCalls)).Equal(3)
	gt.Number(t, len(result.Uploaded)).Equal(3)
	gt.Value(t, result.Uploaded[0].Status).Equal(model.StatusFailed)
	gt.String(t, result.Uploaded[0].Reason).Contains("upload error")
	gt.Value(t, result.Uploaded[1].Status).Equal(model.StatusUploaded)
	gt.Value(t, result.Uploaded[2].Status).Equal(model.StatusUploaded)
	gt.Number(t, result.FailedCount()).Equal(1)

	report := out.String()
	gt.String(t, report).Contains("  1. Uploading 'pkg-0.1.0.tar.gz'... Failed.")
	gt.String(t, report).Contains("upload error")
	gt.String(t, report).Contains("  2. Uploading 'pkg-0.1.0-py3-none-any.whl'... Done.")
}

func TestRelease_Run_NoArtifacts(t *testing.T) {
	ctx := context.Background()

	mockClient := &MockReleaseClient{
		createReleaseFunc: func(ctx context.Context, remote *model.GitRemote, req *model.ReleaseRequest) (*model.Release, error) {
			return &model.Release{ID: 7, URL: "https://github.com/owner/repo/releases/tag/v0.1.0"}, nil
		},
	}

	var out bytes.Buffer
	uc := usecase.NewRelease(mockClient, usecase.WithOutput(&out))

	result, err := uc.Run(ctx, testRequest())
	gt.NoError(t, err)
	gt.Number(t, len(result.Uploaded)).Equal(0)

	// The attach banner only shows up when there is something to attach
	gt.String(t, out.String()).NotContains("Attempting to attach")
}
