package httpx

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"sync"
	"time"
)

// templateFuncs are the helpers available inside page templates.
var templateFuncs = template.FuncMap{
	"shortDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("Jan 2, 2006")
	},
	"longDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("Jan 2, 2006 15:04")
	},
	// displayName renders a writer or owner name, substituting a
	// placeholder when the account has been deleted.
	"displayName": func(name string) string {
		if name == "" {
			return "(deleted user)"
		}
		return name
	},
}

// TemplateRendererOptions configures a TemplateRenderer.
type TemplateRendererOptions struct {
	// FS holds the *.tmpl files, usually the embedded set from the
	// repository root.
	FS fs.FS

	// Reload reparses templates on every render. Dev mode only.
	Reload bool
}

// TemplateRenderer parses the page templates once and executes them by
// name. Every page template shares the partials defined alongside it.
type TemplateRenderer struct {
	fsys   fs.FS
	reload bool

	mu  sync.RWMutex
	tpl *template.Template
}

// NewTemplateRenderer parses all templates up front so a syntax error
// fails at startup rather than on first request.
func NewTemplateRenderer(opts TemplateRendererOptions) (*TemplateRenderer, error) {
	r := &TemplateRenderer{fsys: opts.FS, reload: opts.Reload}
	tpl, err := r.parse()
	if err != nil {
		return nil, err
	}
	r.tpl = tpl
	return r, nil
}

func (r *TemplateRenderer) parse() (*template.Template, error) {
	tpl, err := template.New("").Funcs(templateFuncs).ParseFS(r.fsys, "*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tpl, nil
}

// Render executes the named page template into w.
func (r *TemplateRenderer) Render(w io.Writer, page string, data any) error {
	tpl := r.current()
	if r.reload {
		fresh, err := r.parse()
		if err != nil {
			return err
		}
		r.mu.Lock()
		r.tpl = fresh
		r.mu.Unlock()
		tpl = fresh
	}

	if err := tpl.ExecuteTemplate(w, page, data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	return nil
}

func (r *TemplateRenderer) current() *template.Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tpl
}
