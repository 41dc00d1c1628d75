package render

import (
	"html/template"
	"io"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<div class="panel">
<h1>{{.Title}}</h1>
{{- range .Rows}}
<div class="row">
{{- range .}}
<div class="stat-box {{.ClassList}}"{{if not .Style.IsZero}} style="{{.Style.CSS}}"{{end}}>
<h3>{{.Title}}</h3>
<div class="stat">{{if .Href}}<a class="playerNameLink" href="{{.Href}}">{{.Value}}</a>{{else}}{{.Value}}{{end}}</div>
{{- range .Footers}}
<div class="stat-footer">{{if .Date}}{{.Prefix}} <a href="{{$.GameHref .Date}}">{{.Time}}</a>{{else}}{{.Prefix}}{{end}}</div>
{{- end}}
</div>
{{- end}}
</div>
{{- end}}
</div>
</body>
</html>
`

var tmpl = template.Must(template.New("page").Parse(pageTemplate))

func WriteHTML(w io.Writer, p Page) error {
	return tmpl.Execute(w, p)
}
