// Package export writes the task list as a standalone HTML page.
package export

import (
	"fmt"
	"html/template"
	"io"

	"github.com/hy4ri/tasklist/internal/view"
)

// Page is the data passed to the HTML template.
type Page struct {
	Lang  string
	Theme string
	Title string
	List  view.List
}

// Item titles arrive HTML-escaped from view.Project; template.HTML stops
// html/template from escaping them a second time.
var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"escaped": func(s string) template.HTML { return template.HTML(s) },
}).Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}" data-theme="{{.Theme}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<header><h1>{{.Title}}</h1><span id="task-count">{{.List.Count}}</span></header>
<ul id="task-list">
{{- if .List.Empty}}
<li class="task-muted">{{.List.Placeholder}}</li>
{{- else}}
{{- range .List.Items}}
<li class="task-item{{if .Completed}} completed{{end}}">
<div class="task-content">
<span class="task-title">{{escaped .Title}}</span>
{{- if .HasDescription}}
<p class="task-desc">{{escaped .Description}}</p>
{{- end}}
<span class="task-meta">{{$.CreatedPrefix}} {{.CreatedAt}}</span>
</div>
<div class="task-actions">
{{- range .Actions}}
<button class="action-btn btn-{{.Kind}}" data-id="{{.TaskID}}" title="{{.Label}}"></button>
{{- end}}
</div>
</li>
{{- end}}
{{- end}}
</ul>
</body>
</html>
`))

type pageData struct {
	Page
	CreatedPrefix string
}

// HTML renders page to w. createdPrefix labels the creation time, e.g. "Creada:".
func HTML(w io.Writer, page Page, createdPrefix string) error {
	if err := pageTemplate.Execute(w, pageData{Page: page, CreatedPrefix: createdPrefix}); err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}
	return nil
}
