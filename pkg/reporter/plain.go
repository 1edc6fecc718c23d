package reporter

import (
	"fmt"
	"io"

	"github.com/cursorcult/cursorcult/pkg/catalog"
)

// PlainReporter prints one line per pack, suitable for piping into other
// tools.
type PlainReporter struct{}

func (r *PlainReporter) Report(w io.Writer, org string, packs []catalog.RepoInfo) error {
	for _, p := range packs {
		latest := p.LatestTag()
		if latest == "" {
			latest = "no tags"
		}
		if _, err := fmt.Fprintf(w, "%s — %s — latest %s — %s\n",
			p.Name, p.Description, latest, catalog.ReadmeURL(org, p.Name)); err != nil {
			return err
		}
	}
	return nil
}
