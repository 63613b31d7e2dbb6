// Package templates embeds the HTML views rendered by the handlers.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/oddam/donations/internal/models"
	"github.com/oddam/donations/internal/routes"
)

//go:embed *.html
var files embed.FS

// Funcs are the helpers available to every view.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("2006-01-02")
		},
		"join":          strings.Join,
		"dict":          dict,
		"donationTaken": routes.DonationTaken,
		"categoryNames": func(list []models.Category) string {
			names := make([]string, len(list))
			for i, c := range list {
				names[i] = c.Name
			}
			return strings.Join(names, ", ")
		},
	}
}

// dict builds a map from alternating keys and values, for passing several values to a sub-template.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}

// Parse compiles all views. Each is addressed by its file name, e.g. "index.html".
func Parse() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(files, "*.html")
}
