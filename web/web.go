// Package web holds the status dashboard served on /.
package web

import (
	"embed"
	"html/template"
)

// DashboardTemplate is the name the dashboard is registered under
const DashboardTemplate = "dashboard.html"

//go:embed dashboard.html
var files embed.FS

// Templates parses the embedded dashboard for use with gin's SetHTMLTemplate
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, DashboardTemplate))
}

// DashboardData fills the dashboard template
type DashboardData struct {
	Title    string
	Subtitle string
}
