package verify

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cursorcult/cursorcult/pkg/contract"
)

// Each checker inspects one facet of a rule-pack repository and returns
// human-readable violations (empty slice = pass). Checkers accumulate every
// violation they find instead of stopping at the first, so one run reports
// the complete picture.

// CheckTrackedFiles validates that the tracked file set is exactly the core
// files plus one CI workflow, with nothing extra.
func CheckTrackedFiles(tracked []string) []string {
	var errs []string

	trackedSet := make(map[string]struct{}, len(tracked))
	for _, f := range tracked {
		trackedSet[f] = struct{}{}
	}

	var missing []string
	for f := range contract.CoreFiles() {
		if _, ok := trackedSet[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		errs = append(errs, fmt.Sprintf("Missing required files: %s.", strings.Join(missing, ", ")))
	}

	ciPaths := contract.CIWorkflowPaths()
	hasCI := false
	for f := range ciPaths {
		if _, ok := trackedSet[f]; ok {
			hasCI = true
			break
		}
	}
	if !hasCI {
		errs = append(errs, "Missing required CI workflow: .github/workflows/ccverify.yml (or .yaml).")
	}

	var extra []string
	core := contract.CoreFiles()
	for f := range trackedSet {
		if _, ok := core[f]; ok {
			continue
		}
		if _, ok := ciPaths[f]; ok {
			continue
		}
		extra = append(extra, f)
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		errs = append(errs, fmt.Sprintf("Extra tracked files not allowed: %s.", strings.Join(extra, ", ")))
	}

	return errs
}

// CheckLicense validates that LICENSE exists and its normalized content
// matches the canonical Unlicense text exactly.
func CheckLicense(path string) []string {
	licensePath := filepath.Join(path, "LICENSE")
	data, err := os.ReadFile(licensePath)
	if err != nil {
		return []string{"LICENSE file missing."}
	}
	if Normalize(string(data)) != Normalize(contract.UnlicenseText) {
		return []string{"LICENSE is not the Unlicense (content mismatch)."}
	}
	return nil
}

// CheckReadme validates that README.md exists and contains both the install
// instruction and the link example for the given repository name. This is a
// raw substring check, not a markdown parse.
func CheckReadme(path, repoName string) []string {
	readmePath := filepath.Join(path, "README.md")
	data, err := os.ReadFile(readmePath)
	if err != nil {
		return []string{"README.md file missing."}
	}

	var errs []string
	readme := string(data)
	if !strings.Contains(readme, contract.InstallLine) {
		errs = append(errs, fmt.Sprintf("README.md must include installation line: '%s'.", contract.InstallLine))
	}
	expectedLink := contract.LinkCommand + " " + repoName
	if !strings.Contains(readme, expectedLink) {
		errs = append(errs, fmt.Sprintf("README.md must include link example: '%s' (adjust for rule name).", expectedLink))
	}
	return errs
}

// CheckTags validates the tag scheme against the main branch history:
// every tag is named vN, every tag points at a main commit, every main
// commit carries a tag, and the versions form a contiguous run from v0.
// Zero tags is a legal pre-release state and passes unconditionally.
//
// Tags with invalid names still count toward the coverage and off-main
// checks; they are only excluded from the contiguity sequence.
func CheckTags(mainCommits []string, tags map[string]string) []string {
	if len(tags) == 0 {
		return nil
	}

	tagNames := make([]string, 0, len(tags))
	for name := range tags {
		tagNames = append(tagNames, name)
	}
	sort.Strings(tagNames)

	var errs []string
	for _, name := range tagNames {
		if !contract.IsValidTagName(name) {
			errs = append(errs, fmt.Sprintf("Invalid tag name '%s'. Only v0, v1, v2, ... are allowed.", name))
		}
	}

	mainSet := make(map[string]struct{}, len(mainCommits))
	for _, c := range mainCommits {
		mainSet[c] = struct{}{}
	}
	tagCommits := make(map[string]struct{}, len(tags))
	for _, sha := range tags {
		tagCommits[sha] = struct{}{}
	}

	offMain := false
	for sha := range tagCommits {
		if _, ok := mainSet[sha]; !ok {
			offMain = true
			break
		}
	}
	if offMain {
		errs = append(errs, "All vN tags must point to commits on main.")
	}

	untagged := 0
	for sha := range mainSet {
		if _, ok := tagCommits[sha]; !ok {
			untagged++
		}
	}
	if untagged > 0 {
		errs = append(errs, fmt.Sprintf("Main has %d untagged commits. Every main commit must have a vN tag.", untagged))
	}

	var versions []int
	for _, name := range tagNames {
		if v, ok := contract.ParseTagVersion(name); ok {
			versions = append(versions, v)
		}
	}
	sort.Ints(versions)
	if len(versions) > 0 && !isContiguousFromZero(versions) {
		found := make([]string, len(versions))
		for i, v := range versions {
			found[i] = contract.FormatTag(v)
		}
		errs = append(errs, fmt.Sprintf("vN tags must be contiguous from v0. Found: %s.", strings.Join(found, ", ")))
	}

	return errs
}

func isContiguousFromZero(sorted []int) bool {
	for i, v := range sorted {
		if v != i {
			return false
		}
	}
	return true
}
