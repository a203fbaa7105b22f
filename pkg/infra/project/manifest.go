package project

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/release-tools/poetry-release/pkg/domain/model"
	"github.com/release-tools/poetry-release/pkg/domain/types"
)

// pyProject mirrors the manifest tables this tool reads. Poetry projects
// carry name/version either under [tool.poetry] or, for newer Poetry, under
// the standard [project] table.
type pyProject struct {
	Project struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Name    string `toml:"name"`
			Version string `toml:"version"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// LoadManifest reads project name and version from the pyproject.toml at
// path. [tool.poetry] takes precedence over [project].
func LoadManifest(path string) (*model.ProjectMeta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read manifest", goerr.V("path", path))
	}

	var manifest pyProject
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, goerr.Wrap(err, "failed to parse manifest", goerr.V("path", path))
	}

	meta := &model.ProjectMeta{
		Name:    manifest.Tool.Poetry.Name,
		Version: manifest.Tool.Poetry.Version,
	}
	if meta.Name == "" {
		meta.Name = manifest.Project.Name
	}
	if meta.Version == "" {
		meta.Version = manifest.Project.Version
	}

	if meta.Version == "" {
		return nil, goerr.New("missing 'version' field in configuration",
			goerr.T(types.TagMissingVersion),
			goerr.V("path", path),
		)
	}

	return meta, nil
}
