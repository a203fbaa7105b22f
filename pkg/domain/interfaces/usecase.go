package interfaces

import (
	"context"

	"github.com/release-tools/poetry-release/pkg/domain/model"
)

// ReleaseUseCase defines the release workflow entry point
type ReleaseUseCase interface {
	// Run creates the tag/release and uploads the requested artifacts
	Run(ctx context.Context, req *model.ReleaseRequest) (*model.ReleaseResult, error)
}
