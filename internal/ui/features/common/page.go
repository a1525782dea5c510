package common

import (
	"bytes"
	"net/http"

	"github.com/leapstack-labs/musbsite/internal/form"
	"github.com/leapstack-labs/musbsite/internal/ui/render"
)

// NewsletterForm is the form name of the footer and news page signup.
const NewsletterForm = "newsletter"

// Page builds the common page data for r.
func (d Deps) Page(r *http.Request, title, description string, data any) render.Page {
	return render.Page{
		Title:       title,
		Description: description,
		Path:        r.URL.Path,
		Dev:         d.Dev,
		Subscribed:  d.FormStatus(r, NewsletterForm).Snapshot.State == form.Success,
		Data:        data,
	}
}

// Render writes a full page.
func (d Deps) Render(w http.ResponseWriter, r *http.Request, page string, p render.Page) {
	d.RenderStatus(w, r, http.StatusOK, page, p)
}

// RenderStatus writes a full page with the given status code.
func (d Deps) RenderStatus(w http.ResponseWriter, r *http.Request, status int, page string, p render.Page) {
	var buf bytes.Buffer
	if err := d.Renderer.Page(page, p).Render(r.Context(), &buf); err != nil {
		d.Log().Error("failed to render page", "page", page, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// NotFound is the data of the not-found page.
type NotFound struct {
	Heading   string
	Message   string
	BackHref  string
	BackLabel string
}

// RenderNotFound writes the not-found page with status 404.
func (d Deps) RenderNotFound(w http.ResponseWriter, r *http.Request, nf NotFound) {
	if nf.Heading == "" {
		nf.Heading = "Page Not Found"
	}
	if nf.BackHref == "" {
		nf.BackHref, nf.BackLabel = "/", "Back to Home"
	}
	d.RenderStatus(w, r, http.StatusNotFound, "not-found", d.Page(r, nf.Heading, "", nf))
}
