package reporter

import (
	"encoding/json"
	"io"

	"github.com/cursorcult/cursorcult/pkg/catalog"
)

type JSONReporter struct{}

func (r *JSONReporter) Report(w io.Writer, org string, packs []catalog.RepoInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	type pack struct {
		catalog.RepoInfo
		LatestTag string `json:"latest_tag,omitempty"`
		ReadmeURL string `json:"readme_url"`
	}
	type output struct {
		Org   string `json:"org"`
		Count int    `json:"count"`
		Packs []pack `json:"packs"`
	}

	out := output{Org: org, Count: len(packs), Packs: make([]pack, 0, len(packs))}
	for _, p := range packs {
		out.Packs = append(out.Packs, pack{
			RepoInfo:  p,
			LatestTag: p.LatestTag(),
			ReadmeURL: catalog.ReadmeURL(org, p.Name),
		})
	}
	return enc.Encode(out)
}
