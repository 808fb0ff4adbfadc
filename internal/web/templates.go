package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/Zachkp/folio/internal/icons"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var assetFS embed.FS

var funcs = template.FuncMap{
	"icon":  icons.Render,
	"join":  strings.Join,
	"add":   func(a, b int) int { return a + b },
	"until": until,
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

func staticFS() http.FileSystem {
	sub, err := fs.Sub(assetFS, "static")
	if err != nil {
		return http.FS(assetFS)
	}
	return http.FS(sub)
}

// until returns 0..n-1 for ranging over slide indicators.
func until(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
