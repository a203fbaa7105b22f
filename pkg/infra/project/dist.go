package project

import (
	"path/filepath"
	"regexp"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/release-tools/poetry-release/pkg/domain/model"
)

var escapePattern = regexp.MustCompile(`[-_.]+`)

// EscapeName normalizes a project name the way wheel file names are built:
// runs of "-", "_" and "." collapse into a single underscore.
func EscapeName(name string) string {
	return escapePattern.ReplaceAllString(name, "_")
}

// FindArtifacts returns the build output files for meta's version found in
// distDir: wheels named with the escaped project name and the source archive
// named with the plain project name. The result is sorted lexicographically,
// which puts the ".tar.gz" archive before "_"-escaped wheel names.
func FindArtifacts(distDir string, meta *model.ProjectMeta) ([]string, error) {
	version := meta.FileVersion()

	wheels, err := filepath.Glob(filepath.Join(distDir, EscapeName(meta.Name)+"-"+version+"-*.whl"))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to glob wheels", goerr.V("dist", distDir))
	}

	archives, err := filepath.Glob(filepath.Join(distDir, meta.Name+"-"+version+".tar.gz"))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to glob source archives", goerr.V("dist", distDir))
	}

	artifacts := append(archives, wheels...)
	sort.Strings(artifacts)

	return artifacts, nil
}
