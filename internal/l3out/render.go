// SPDX-License-Identifier:Apache-2.0

package l3out

import (
	"bytes"
	"embed"
	"strings"
	"text/template"
)

var (
	//go:embed templates/*
	templates embed.FS
)

// Summary renders the plan in a line-oriented form meant for operator
// review, one record per line.
func (p Plan) Summary() (string, error) {
	t, err := template.New("summary.tmpl").Funcs(
		template.FuncMap{
			"join": func(items []string, sep string) string {
				return strings.Join(items, sep)
			},
		}).ParseFS(templates, "templates/*")
	if err != nil {
		return "", err
	}

	var b bytes.Buffer
	err = t.Execute(&b, p)
	return b.String(), err
}
