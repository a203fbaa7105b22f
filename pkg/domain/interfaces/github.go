package interfaces

import (
	"context"

	"github.com/release-tools/poetry-release/pkg/domain/model"
)

// ReleaseClient defines operations against the hosting service's release API
type ReleaseClient interface {
	// CreateRelease creates a tag (if it does not exist) and a release for it
	CreateRelease(ctx context.Context, remote *model.GitRemote, req *model.ReleaseRequest) (*model.Release, error)

	// UploadAsset uploads the file at path as an asset of the release
	UploadAsset(ctx context.Context, remote *model.GitRemote, release *model.Release, path string) error
}
