// Package web renders the HTML landing page describing the probe endpoints.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"time"
)

//go:embed templates/index.html.tmpl
var templatesFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html.tmpl"))

type indexData struct {
	CurrentTime string
	AppStatus   string
}

// Page serves the status page. Now is injectable for tests and defaults
// to time.Now.
type Page struct {
	Now func() time.Time
}

func NewPage() *Page {
	return &Page{Now: time.Now}
}

// Index renders the status page with the current server time.
func (p *Page) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = indexTmpl.Execute(w, indexData{
		CurrentTime: p.Now().Format("2006-01-02 15:04:05"),
		AppStatus:   "Running",
	})
}
