package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	viewIndex  = "index"
	viewNew    = "new"
	viewEdit   = "edit"
	viewSignIn = "signin"
)

// pageData feeds every view; each template reads the fields it needs.
type pageData struct {
	Title    string
	Flash    string
	Error    string
	Username string

	Files        []string
	Filename     string
	Content      string
	FormUsername string
}

// viewFuncs are available to every template. Document names are user chosen,
// so links to them go through pathEscape.
var viewFuncs = template.FuncMap{
	"pathEscape": url.PathEscape,
}

type views struct {
	pages map[string]*template.Template
}

func loadViews() (*views, error) {
	base, err := template.New("layout.html").Funcs(viewFuncs).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse layout: %w", err)
	}

	v := &views{pages: map[string]*template.Template{}}
	for _, name := range []string{viewIndex, viewNew, viewEdit, viewSignIn} {
		layout, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("web: clone layout: %w", err)
		}
		page, err := layout.ParseFS(templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("web: parse %s view: %w", name, err)
		}
		v.pages[name] = page
	}
	return v, nil
}

func (v *views) render(name string, data pageData) ([]byte, error) {
	page, ok := v.pages[name]
	if !ok {
		return nil, fmt.Errorf("web: unknown view %q", name)
	}
	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("web: render %s view: %w", name, err)
	}
	return buf.Bytes(), nil
}
