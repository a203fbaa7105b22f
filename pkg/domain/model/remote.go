package model

// GitRemote represents a Git remote read from the repository configuration
type GitRemote struct {
	Name  string // Remote name, e.g. "origin"
	URL   string // Remote URL as written in .git/config
	Owner string // Repository owner parsed from the URL
	Repo  string // Repository name parsed from the URL, without ".git"
}
