// Package web agrupa lo que comparten los handlers HTML/JSON: templates,
// mensajes flash, parseo de formularios y respuestas JSON.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"time"

	"animal-rescue-portal/internal/middleware"
	"animal-rescue-portal/internal/platform/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page es el modelo común que reciben todos los templates.
type Page struct {
	Title   string
	Flashes []Flash
	Form    url.Values
	User    *CurrentUser
	Now     time.Time
	Data    any
}

type CurrentUser struct {
	ID       string
	Username string
}

// Value devuelve el primer valor del campo, para repoblar inputs.
func (p Page) Value(field string) string {
	if p.Form == nil {
		return ""
	}
	return p.Form.Get(field)
}

// Checked reporta si field incluye value (checkboxes y radios).
func (p Page) Checked(field, value string) bool {
	for _, v := range p.Form[field] {
		if v == value {
			return true
		}
	}
	return false
}

// CurrentYear lo usa el footer.
func (p Page) CurrentYear() int {
	return p.Now.Year()
}

// MinDate es el min="" de los date pickers (hoy).
func (p Page) MinDate() string {
	return p.Now.Format("2006-01-02")
}

type Renderer struct {
	pages map[string]*template.Template
	log   logger.Logger
	now   func() time.Time
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	},
	"datetime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02 15:04")
	},
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"money": func(f *float64) string {
		if f == nil {
			return ""
		}
		return fmt.Sprintf("%.2f", *f)
	},
}

// NewRenderer parsea layout.html junto a cada página por separado, así cada
// página puede definir su propio bloque "content".
func NewRenderer(log logger.Logger) (*Renderer, error) {
	if log == nil {
		log = logger.Nop()
	}

	layout, err := fs.ReadFile(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("web: read layout: %w", err)
	}

	entries, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(entries))
	for _, e := range entries {
		name := strings.TrimSuffix(strings.TrimPrefix(e, "templates/"), ".html")
		if name == "layout" {
			continue
		}
		body, err := fs.ReadFile(templateFS, e)
		if err != nil {
			return nil, fmt.Errorf("web: read %s: %w", e, err)
		}

		t := template.New("layout").Funcs(funcs)
		if _, err := t.Parse(string(layout)); err != nil {
			return nil, fmt.Errorf("web: parse layout: %w", err)
		}
		if _, err := t.Parse(string(body)); err != nil {
			return nil, fmt.Errorf("web: parse %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{
		pages: pages,
		log:   log,
		now:   time.Now,
	}, nil
}

// Render completa Page con usuario, flashes pendientes y hora, y escribe
// la página con status.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, name string, p Page) {
	t, ok := rd.pages[name]
	if !ok {
		rd.log.Error("template not found", map[string]any{"template": name})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if p.User == nil {
		if c, ok := middleware.GetClaims(r.Context()); ok {
			p.User = &CurrentUser{ID: c.UserID, Username: c.Username}
		}
	}
	p.Flashes = append(PopFlashes(w, r), p.Flashes...)
	if p.Now.IsZero() {
		p.Now = rd.now().UTC()
	}

	// Render a buffer para no mandar una respuesta a medias si falla.
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		rd.log.Error("template render failed", map[string]any{"template": name, "err": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// NotFound renderiza la página 404.
func (rd *Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	rd.log.Info("route not found", map[string]any{"path": r.URL.Path})
	rd.Render(w, r, http.StatusNotFound, "404", Page{Title: "Page Not Found"})
}

// ServerError renderiza la página 500.
func (rd *Renderer) ServerError(w http.ResponseWriter, r *http.Request) {
	rd.Render(w, r, http.StatusInternalServerError, "500", Page{Title: "Server Error"})
}
