package reporter

import (
	"io"

	"github.com/cursorcult/cursorcult/pkg/catalog"
)

// Reporter renders a catalog listing in one output format.
type Reporter interface {
	Report(w io.Writer, org string, packs []catalog.RepoInfo) error
}

// New picks a Reporter by format name. Unknown formats fall back to the
// table renderer.
func New(format string) Reporter {
	switch format {
	case "json":
		return &JSONReporter{}
	case "plain":
		return &PlainReporter{}
	default:
		return &TableReporter{}
	}
}
