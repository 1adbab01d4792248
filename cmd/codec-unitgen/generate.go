package main

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"text/template"
)

var funcMap = template.FuncMap{
	"quote": strconv.Quote,
}

var templates = template.Must(template.New("").Funcs(funcMap).Parse(`
{{define "units"}}// Code generated by codec-unitgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

var definitions = []Definition{
{{- range .Units}}
	{UnitTypeID: {{.ID}}, Unit: {{quote .Unit}}, UnitType: {{quote .UnitType}}},
{{- end}}
}
{{end}}
`))

type unitsData struct {
	Source  string
	Package string
	Units   []RawUnit
}

// GenerateUnits renders the unit table as Go source, ordered by unit type ID.
func GenerateUnits(table *RawUnitTable, pkg, source string) (string, error) {
	units := make([]RawUnit, len(table.Units))
	copy(units, table.Units)
	sort.Slice(units, func(i, j int) bool { return units[i].ID < units[j].ID })

	var buf bytes.Buffer
	data := unitsData{Source: source, Package: pkg, Units: units}
	if err := templates.ExecuteTemplate(&buf, "units", data); err != nil {
		return "", fmt.Errorf("executing units template: %w", err)
	}
	return buf.String(), nil
}
