package render

import (
	"encoding/json"
	"html/template"
	"strings"
	"sync"
	"unicode/utf8"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/Masterminds/sprig/v3"
	"github.com/gosimple/slug"
	"github.com/microcosm-cc/bluemonday"

	"github.com/leapstack-labs/musbsite/internal/icon"
	"github.com/leapstack-labs/musbsite/internal/ui/resources"
)

// DatastarScript is the Datastar client bundle the layout loads.
const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

// Funcs returns the template functions: sprig's HTML-safe set plus the
// site's own helpers.
func Funcs() template.FuncMap {
	f := sprig.HtmlFuncMap()
	f["icon"] = IconClass
	f["sanitize"] = Sanitize
	f["plaintext"] = PlainText
	f["excerpt"] = Excerpt
	f["slug"] = slug.Make
	f["signals"] = Signals
	f["static"] = resources.StaticPath
	f["datastar"] = func() string { return DatastarScript }
	f["nav"] = func() []NavItem { return Nav }
	f["active"] = Active
	return f
}

// IconClass resolves a CMS icon key to its CSS classes. fallback names the
// icon used when key is unknown.
func IconClass(key, fallback string) string {
	return icon.Parse(key, icon.Parse(fallback, icon.Activity)).Class()
}

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// Sanitize cleans CMS-authored HTML for inline rendering.
func Sanitize(html string) template.HTML {
	policyOnce.Do(func() { policy = bluemonday.UGCPolicy() })
	return template.HTML(policy.Sanitize(html)) //nolint:gosec // sanitized above
}

// PlainText flattens CMS HTML to readable text for meta descriptions and
// excerpts. Markdown emphasis markers are dropped and whitespace collapsed.
func PlainText(html string) string {
	md, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		md = html
	}
	md = strings.NewReplacer("**", "", "__", "", "#", "", "`", "").Replace(md)
	return strings.Join(strings.Fields(md), " ")
}

// Excerpt returns at most n characters of the plain text of html, ending
// with an ellipsis when cut.
func Excerpt(n int, html string) string {
	text := PlainText(html)
	if n <= 0 || utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:n])) + "…"
}

// Signals encodes v as a Datastar data-signals value.
func Signals(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Active reports whether the nav entry href is the current page or one of
// its children.
func Active(current, href string) bool {
	if href == "/" {
		return current == "/"
	}
	return current == href || strings.HasPrefix(current, href+"/")
}
