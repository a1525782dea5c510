// Package render executes the site's HTML templates and exposes them as
// templ components, so handlers can write full pages and Datastar can patch
// fragments with the same call.
//
// The template set is a layout plus shared partials. Every file under
// pages/ is parsed into its own clone of that base set, so pages can
// define blocks with the same name without clashing.
package render

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/a-h/templ"
)

// LayoutTemplate is the entry point for full pages.
const LayoutTemplate = "layout"

// Renderer holds the parsed template sets.
type Renderer struct {
	fsys  fs.FS
	funcs template.FuncMap

	mu    sync.RWMutex
	pages map[string]*template.Template // "" is the base set
}

// New parses every template in fsys.
func New(fsys fs.FS) (*Renderer, error) {
	r := &Renderer{fsys: fsys, funcs: Funcs()}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-parses the templates. On failure the previous set stays active.
func (r *Renderer) Reload() error {
	base, err := template.New("").Funcs(r.funcs).ParseFS(r.fsys, "layout.html", "partials/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse base templates: %w", err)
	}

	files, err := fs.Glob(r.fsys, "pages/*.html")
	if err != nil {
		return fmt.Errorf("failed to list page templates: %w", err)
	}

	pages := map[string]*template.Template{"": base}
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".html")
		t, err := base.Clone()
		if err != nil {
			return fmt.Errorf("failed to clone base for %s: %w", name, err)
		}
		if _, err := t.ParseFS(r.fsys, file); err != nil {
			return fmt.Errorf("failed to parse page %s: %w", name, err)
		}
		pages[name] = t
	}

	r.mu.Lock()
	r.pages = pages
	r.mu.Unlock()
	return nil
}

// Pages returns the names of the parsed pages.
func (r *Renderer) Pages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.pages))
	for name := range r.pages {
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (r *Renderer) set(page string) (*template.Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.pages[page]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", page)
	}
	return t, nil
}

// Page renders a full page through the layout.
func (r *Renderer) Page(page string, data any) templ.Component {
	return r.Fragment(page, LayoutTemplate, data)
}

// Fragment renders one named template of a page. An empty page selects the
// shared partials.
func (r *Renderer) Fragment(page, name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		t, err := r.set(page)
		if err != nil {
			return err
		}
		if t.Lookup(name) == nil {
			return fmt.Errorf("page %q has no template %q", page, name)
		}
		return t.ExecuteTemplate(w, name, data)
	})
}
