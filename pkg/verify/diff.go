package verify

import (
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/cursorcult/cursorcult/pkg/contract"
)

// LicenseDiff returns a unified diff between the canonical Unlicense text and
// the repository's LICENSE, both normalized. An empty string means the
// contents match. Used to explain a license content-mismatch violation.
func LicenseDiff(path string) (string, error) {
	data, err := os.ReadFile(filepath.Join(path, "LICENSE"))
	if err != nil {
		return "", err
	}

	want := Normalize(contract.UnlicenseText)
	got := Normalize(string(data))
	if want == got {
		return "", nil
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "unlicense",
		ToFile:   "LICENSE",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}
