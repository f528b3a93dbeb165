package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"git.home.luguber.info/inful/docsite/internal/errors"
)

// NavFileName is the navigation-configuration file consumed by the
// static-site generator, written at the output root.
const NavFileName = "mkdocs.yml"

const navTemplateName = "toc"

// navTemplate renders the mkdocs navigation file: the site name plus a
// pages mapping from section to its sorted page files.
const navTemplate = `site_name: {{ .SiteName }}
pages:
{{- range .Sections }}
- {{ .Name }}:
{{- $section := .Name }}
{{- range .Pages }}
  - '{{ $section }}/{{ . }}'
{{- end }}
{{- end }}
`

type navSection struct {
	Name  string
	Pages []string
}

type navData struct {
	SiteName string
	Sections []navSection
}

// RenderNav renders the table of contents into the navigation file at
// root. Sections and pages are re-sorted before rendering, so two
// tables with the same content produce byte-identical output.
// Rendering failure is fatal and the diagnostic carries the template
// name and the data that was passed.
func RenderNav(toc TableOfContents, root, siteName string) error {
	data := navData{SiteName: siteName}
	for _, section := range sortedKeys(toc) {
		pages := append([]string(nil), toc[section]...)
		data.Sections = append(data.Sections, navSection{Name: section, Pages: sortPageNames(pages)})
	}

	tpl, err := template.New(navTemplateName).Option("missingkey=error").Parse(navTemplate)
	if err != nil {
		return errors.Wrap(err, errors.CategoryTemplate, errors.SeverityFatal,
			"failed to parse navigation template").
			WithContext("template", navTemplateName)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return errors.Wrap(err, errors.CategoryTemplate, errors.SeverityFatal,
			fmt.Sprintf("failed to render template %s with data %+v", navTemplateName, data)).
			WithContext("template", navTemplateName)
	}

	navPath := filepath.Join(root, NavFileName)
	if err := os.WriteFile(navPath, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal,
			"failed to write navigation file").
			WithContext("path", navPath)
	}

	return nil
}
