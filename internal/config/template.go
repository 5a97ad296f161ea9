package config

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/pathvana/pathvana/internal/perrors"
)

// templateData carries the variables available to mapping-target templates.
type templateData struct {
	FOLDER string
	HOME   string
}

// ExpandTarget expands a path-mapping target template. The ${folder}
// placeholder is substituted with the working directory; targets containing
// Go template actions additionally render with the sprig function map and
// the variables .FOLDER and .HOME.
func ExpandTarget(target, folder, home string) (string, error) {
	expanded := strings.ReplaceAll(target, "${folder}", folder)
	if !strings.Contains(expanded, "{{") {
		return expanded, nil
	}

	tmpl, err := template.New("target").Funcs(sprig.TxtFuncMap()).Parse(expanded)
	if err != nil {
		return "", perrors.NewConfigurationError("path_mappings", "invalid target template", err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, templateData{FOLDER: folder, HOME: home}); err != nil {
		return "", perrors.NewConfigurationError("path_mappings", "failed to render target template", err)
	}
	return b.String(), nil
}
