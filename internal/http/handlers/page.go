package handlers

import (
	_ "embed"
	"html/template"
	"net/http"
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

// Index serves the single-page contribution form and list view.
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, map[string]any{"Title": "Ganesh Utsav Contributions"}); err != nil {
		a.Logger.Error().Err(err).Msg("page: render failed")
	}
}
