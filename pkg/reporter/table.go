package reporter

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/cursorcult/cursorcult/pkg/catalog"
)

type TableReporter struct{}

func (r *TableReporter) Report(w io.Writer, org string, packs []catalog.RepoInfo) error {
	if len(packs) == 0 {
		_, err := io.WriteString(w, "No rule packs found.\n")
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"NAME", "DESCRIPTION", "LATEST", "README"})

	for _, p := range packs {
		latest := p.LatestTag()
		if latest == "" {
			latest = "no tags"
		}
		t.AppendRow(table.Row{p.Name, p.Description, latest, catalog.ReadmeURL(org, p.Name)})
	}

	t.Render()
	return nil
}
