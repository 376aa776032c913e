// Package web renders the HTML dashboard. The page is a thin client over
// the JSON API.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var Templates embed.FS

const indexTemplate = "templates/index.html"

type pageData struct {
	Title    string
	Version  string
	APIBase  string
	PageSize int
}

type Dashboard struct {
	logger  *slog.Logger
	fsys    fs.FS
	version string
}

func NewDashboard(logger *slog.Logger, fsys fs.FS, version string) *Dashboard {
	return &Dashboard{
		logger:  logger,
		fsys:    fsys,
		version: version,
	}
}

// ServeHTTP parses the template on every request so a missing or broken
// template shows up as a 500 page instead of a startup failure.
func (d *Dashboard) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tmpl, err := template.ParseFS(d.fsys, indexTemplate)
	if err != nil {
		d.logger.ErrorContext(ctx, "loading dashboard template", "err", err.Error())
		d.renderError(w, err)
		return
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, pageData{
		Title:    "IPAM - IP Address Management",
		Version:  d.version,
		APIBase:  "/api",
		PageSize: 100,
	})
	if err != nil {
		d.logger.ErrorContext(ctx, "rendering dashboard", "err", err.Error())
		d.renderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (d *Dashboard) renderError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = fmt.Fprintf(w, "<h1>Dashboard error</h1><p>Could not load template: %s</p>", template.HTMLEscapeString(err.Error()))
}
