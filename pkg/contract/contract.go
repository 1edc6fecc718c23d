// Package contract holds the structural contract every CursorCult rule-pack
// repository must satisfy: the exact tracked file set, the canonical license
// text, the required README lines, and the vN tag scheme. The values are
// process-wide constants shared by the verifier and the scaffolder.
package contract

import (
	"regexp"
	"strconv"
)

// Org is the GitHub organization hosting all rule-pack repositories.
const Org = "CursorCult"

// MetaRepo is the org's meta repository, excluded from catalog listings.
const MetaRepo = "_CursorCult"

// InstallLine is the installation instruction every rule-pack README must
// contain verbatim.
const InstallLine = "go install github.com/cursorcult/cursorcult/cmd/cursorcult@latest"

// LinkCommand is the command prefix of the link example every README must
// contain; the full expected line is "<LinkCommand> <repo name>".
const LinkCommand = "cursorcult link"

// CoreFiles is the set of files every rule-pack repository must track.
func CoreFiles() map[string]struct{} {
	return map[string]struct{}{
		"LICENSE":   {},
		"README.md": {},
		"RULES.md":  {},
	}
}

// CIWorkflowPaths is the set of accepted locations for the verification
// workflow; a repository must track at least one of them.
func CIWorkflowPaths() map[string]struct{} {
	return map[string]struct{}{
		".github/workflows/ccverify.yml":  {},
		".github/workflows/ccverify.yaml": {},
	}
}

// tagPattern accepts v0, v1, v2, ... with no leading zeros, so every version
// number has exactly one spelling.
var tagPattern = regexp.MustCompile(`^v(0|[1-9][0-9]*)$`)

// IsValidTagName reports whether name follows the vN scheme (v0, v1, ...).
func IsValidTagName(name string) bool {
	return tagPattern.MatchString(name)
}

// ParseTagVersion extracts the integer version from a vN tag name.
// ok is false when the name does not follow the scheme.
func ParseTagVersion(name string) (version int, ok bool) {
	m := tagPattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatTag renders a version number as its tag name.
func FormatTag(version int) string {
	return "v" + strconv.Itoa(version)
}
