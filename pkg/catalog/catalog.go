// Package catalog lists the rule-pack repositories hosted in the org,
// together with their vN tags, via the GitHub REST API.
package catalog

import (
	"fmt"

	"github.com/cursorcult/cursorcult/pkg/contract"
)

// RepoInfo describes one rule-pack repository as seen in the org catalog.
type RepoInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// LatestTag returns the highest vN tag, or empty string when the repository
// has no valid version tag yet. Tags with other names are ignored.
func (r RepoInfo) LatestTag() string {
	best := -1
	for _, t := range r.Tags {
		if v, ok := contract.ParseTagVersion(t); ok && v > best {
			best = v
		}
	}
	if best < 0 {
		return ""
	}
	return contract.FormatTag(best)
}

// RepoURL returns the clone URL for a pack in the given org.
func RepoURL(org, name string) string {
	return fmt.Sprintf("https://github.com/%s/%s.git", org, name)
}

// ReadmeURL returns the web URL of a pack's README on main.
func ReadmeURL(org, name string) string {
	return fmt.Sprintf("https://github.com/%s/%s/blob/main/README.md", org, name)
}
