package scaffold

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/cursorcult/cursorcult/pkg/contract"
)

var readmeTmpl = template.Must(template.New("readme").Parse(`# {{ .Name }}

TODO: one-line description.

**Install**

` + "```sh" + `
{{ .InstallLine }}
{{ .LinkCommand }} {{ .Name }}
` + "```" + `

**When to use**

- TODO

**What it enforces**

- TODO

**Credits**

- Developed by the CursorCult org. Anyone can use it.
`))

var rulesTmpl = template.Must(template.New("rules").Parse(`# {{ .Name }} Rule

TODO: Describe the rule precisely.
`))

type templateData struct {
	Name        string
	InstallLine string
	LinkCommand string
}

// RenderReadme produces the starter README.md for a new pack. It already
// satisfies the README checks: both required lines are present verbatim.
func RenderReadme(name string) (string, error) {
	return render(readmeTmpl, name)
}

// RenderRules produces the starter RULES.md for a new pack.
func RenderRules(name string) (string, error) {
	return render(rulesTmpl, name)
}

func render(tmpl *template.Template, name string) (string, error) {
	data := templateData{
		Name:        name,
		InstallLine: contract.InstallLine,
		LinkCommand: contract.LinkCommand,
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
