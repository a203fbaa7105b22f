package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify release command failures. Each tag maps to a distinct
// process exit code so scripts can branch on the failure kind.
var (
	TagMissingVersion  = goerr.NewTag("missing_version")
	TagNotGitRepo      = goerr.NewTag("not_git_repository")
	TagNoRemote        = goerr.NewTag("no_git_remote")
	TagAmbiguousRemote = goerr.NewTag("ambiguous_remote")
	TagMissingToken    = goerr.NewTag("missing_token")
	TagReleaseCreation = goerr.NewTag("release_creation")
	TagAssetUpload     = goerr.NewTag("asset_upload")
)

// ExitCode maps an error to the process exit status of the release command.
// nil maps to 0; untagged errors map to 1.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case goerr.HasTag(err, TagMissingVersion):
		return 1
	case goerr.HasTag(err, TagNotGitRepo):
		return 2
	case goerr.HasTag(err, TagNoRemote):
		return 3
	case goerr.HasTag(err, TagMissingToken):
		return 4
	case goerr.HasTag(err, TagReleaseCreation):
		return 5
	case goerr.HasTag(err, TagAmbiguousRemote):
		return 99
	default:
		return 1
	}
}
