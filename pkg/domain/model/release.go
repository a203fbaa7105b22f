package model

// ReleaseRequest carries everything the release workflow needs for one
// invocation. It is built once from project metadata at command start and
// not modified afterwards.
type ReleaseRequest struct {
	Tag          string     // Tag to create, e.g. "v0.1.0"
	ProjectName  string     // Project name from the manifest
	Remote       *GitRemote // Target repository
	TargetBranch string     // Commitish the tag points at when it does not exist yet
	PreRelease   bool       // Mark the release as a pre-release
	Artifacts    []string   // Paths of files to attach, uploaded in this order
}

// Release represents a release created on the hosting service
type Release struct {
	ID        int64  // Release identifier assigned by the service
	URL       string // Human-facing release page URL
	UploadURL string // Asset upload endpoint for this release
}

// UploadStatus is the outcome of a single asset upload
type UploadStatus string

const (
	StatusUploaded UploadStatus = "uploaded"
	StatusFailed   UploadStatus = "failed"
)

// AssetUpload records the outcome of one asset upload attempt
type AssetUpload struct {
	Name   string       // Base name of the uploaded file
	Status UploadStatus // Uploaded or failed
	Reason string       // Failure reason, empty on success
}

// Failed reports whether this upload attempt failed
func (a *AssetUpload) Failed() bool {
	return a.Status == StatusFailed
}

// ReleaseResult is the outcome of a release workflow run. Uploaded holds one
// entry per requested artifact, in request order.
type ReleaseResult struct {
	ReleaseURL string
	Uploaded   []AssetUpload
}

// FailedCount returns the number of failed asset uploads
func (r *ReleaseResult) FailedCount() int {
	var n int
	for i := range r.Uploaded {
		if r.Uploaded[i].Failed() {
			n++
		}
	}
	return n
}
