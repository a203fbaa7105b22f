package types_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/release-tools/poetry-release/pkg/domain/types"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: 0,
		},
		{
			name:     "missing version",
			err:      goerr.New("missing version", goerr.T(types.TagMissingVersion)),
			expected: 1,
		},
		{
			name:     "not a git repository",
			err:      goerr.New("no .git/config", goerr.T(types.TagNotGitRepo)),
			expected: 2,
		},
		{
			name:     "no remote",
			err:      goerr.New("found 0 git remotes", goerr.T(types.TagNoRemote)),
			expected: 3,
		},
		{
			name:     "missing token",
			err:      goerr.New("no token", goerr.T(types.TagMissingToken)),
			expected: 4,
		},
		{
			name:     "release creation failed",
			err:      goerr.New("create failed", goerr.T(types.TagReleaseCreation)),
			expected: 5,
		},
		{
			name:     "ambiguous remote",
			err:      goerr.New("multiple remotes", goerr.T(types.TagAmbiguousRemote)),
			expected: 99,
		},
		{
			name:     "untagged error",
			err:      errors.New("something else"),
			expected: 1,
		},
		{
			name:     "tag survives wrapping",
			err:      goerr.Wrap(goerr.New("create failed", goerr.T(types.TagReleaseCreation)), "command failed"),
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Number(t, types.ExitCode(tt.err)).Equal(tt.expected)
		})
	}
}
