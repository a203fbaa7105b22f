package gitremote

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/release-tools/poetry-release/pkg/domain/model"
	"github.com/release-tools/poetry-release/pkg/domain/types"
	"gopkg.in/ini.v1"
)

const remoteSectionPrefix = `remote "`

// Discover reads the Git remotes configured for the repository rooted at
// root. The repository's own config file is read directly, global and system
// level configuration is not consulted.
func Discover(root string) ([]*model.GitRemote, error) {
	configPath := filepath.Join(root, ".git", "config")
	if _, err := os.Stat(configPath); err != nil {
		return nil, goerr.New("working directory is not a git repository",
			goerr.T(types.TagNotGitRepo),
			goerr.V("path", configPath),
		)
	}

	cfg, err := ini.Load(configPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse git config", goerr.V("path", configPath))
	}

	var remotes []*model.GitRemote
	for _, section := range cfg.Sections() {
		name := section.Name()
		if !strings.HasPrefix(name, remoteSectionPrefix) || !strings.HasSuffix(name, `"`) {
			continue
		}

		rawURL := section.Key("url").String()
		if rawURL == "" {
			continue
		}

		owner, repo, ok := parseRemoteURL(rawURL)
		if !ok {
			continue
		}

		remotes = append(remotes, &model.GitRemote{
			Name:  strings.TrimSuffix(strings.TrimPrefix(name, remoteSectionPrefix), `"`),
			URL:   rawURL,
			Owner: owner,
			Repo:  repo,
		})
	}

	return remotes, nil
}

// parseRemoteURL extracts owner and repository name from an SSH
// ("git@host:owner/repo.git") or HTTPS ("https://host/owner/repo.git")
// remote URL.
func parseRemoteURL(rawURL string) (owner, repo string, ok bool) {
	var path string
	if strings.HasPrefix(rawURL, "git@") {
		_, path, ok = strings.Cut(rawURL, ":")
		if !ok {
			return "", "", false
		}
	} else {
		path = rawURL
	}

	path = strings.TrimSuffix(strings.TrimSuffix(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) < 2 {
		return "", "", false
	}

	owner = parts[len(parts)-2]
	repo = parts[len(parts)-1]
	if owner == "" || repo == "" {
		return "", "", false
	}

	return owner, repo, true
}
