package model

import "strings"

// ProjectMeta holds the project metadata read from pyproject.toml
type ProjectMeta struct {
	Name    string // Project name as written in the manifest
	Version string // Version string, e.g. "0.1.0" or "1.2.3-beta.4"
}

// Tag returns the git tag for this version ("v" prefix convention)
func (m *ProjectMeta) Tag() string {
	return "v" + m.Version
}

// FileVersion returns the version form used in built distribution file names.
// Poetry shortens pre-release suffixes: "1.2.3-beta.4" becomes "1.2.3b4".
// Versions without a "-" separator are returned unchanged.
func (m *ProjectMeta) FileVersion() string {
	idx := strings.Index(m.Version, "-")
	if idx < 0 {
		return m.Version
	}

	base := m.Version[:idx]
	suffix := m.Version[idx+1:]
	if suffix == "" {
		return base
	}

	var digits strings.Builder
	for _, c := range suffix {
		if c >= '0' && c <= '9' {
			digits.WriteRune(c)
		}
	}

	return base + string(suffix[0]) + digits.String()
}
