package options

import (
	"bytes"
	"html/template"
)

// Разметка select-контрола. html/template сам экранирует метки и значения.
var selectTmpl = template.Must(template.New("select").Parse(
	`<select name="{{.Field}}" id="{{.Field}}">
{{- range .Options}}
<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
{{- end}}
</select>
`))

type selectData struct {
	Field   string
	Options []Option
}

// RenderSelect рендерит option-список в готовый <select>.
// field — значение атрибутов name/id контрола.
func RenderSelect(field string, opts []Option) (string, error) {
	if field == "" {
		field = "value"
	}
	var buf bytes.Buffer
	if err := selectTmpl.Execute(&buf, selectData{Field: field, Options: opts}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
