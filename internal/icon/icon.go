// Package icon maps the icon keys the CMS stores on records to the finite
// set of icons the site ships.
package icon

import "strings"

// Kind is one shipped icon.
type Kind int

// Shipped icons.
const (
	Activity Kind = iota
	Microscope
	TestTube
	BarChart
	Briefcase
	GraduationCap
	FlaskConical
	TrendingUp
	Shield
	FileText
	BookOpen
	Newspaper
	Paperclip
	Mail
	Beaker
	Archive
	Database
	Layers
	Star
	ShieldCheck
	ArrowRight
)

var names = [...]string{
	Activity:      "activity",
	Microscope:    "microscope",
	TestTube:      "test-tube",
	BarChart:      "bar-chart",
	Briefcase:     "briefcase",
	GraduationCap: "graduation-cap",
	FlaskConical:  "flask-conical",
	TrendingUp:    "trending-up",
	Shield:        "shield",
	FileText:      "file-text",
	BookOpen:      "book-open",
	Newspaper:     "newspaper",
	Paperclip:     "paperclip",
	Mail:          "mail",
	Beaker:        "beaker",
	Archive:       "archive",
	Database:      "database",
	Layers:        "layers",
	Star:          "star",
	ShieldCheck:   "shield-check",
	ArrowRight:    "arrow-right",
}

// lookup is keyed by the normalised name.
var lookup = func() map[string]Kind {
	m := make(map[string]Kind, len(names))
	for k, n := range names {
		m[normalize(n)] = Kind(k)
	}
	// Aliases the CMS has used.
	m["barchart3"] = BarChart
	m["flask"] = FlaskConical
	m["testtubes"] = TestTube
	return m
}()

// String returns the kebab-case icon name used in CSS classes.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(names) {
		return names[Activity]
	}
	return names[k]
}

// Class returns the CSS class list for the icon.
func (k Kind) Class() string { return "icon icon-" + k.String() }

// Parse resolves a CMS key such as "FlaskConical", "flask-conical" or
// "Flask Conical". Unknown or empty keys resolve to fallback.
func Parse(key string, fallback Kind) Kind {
	if k, ok := lookup[normalize(key)]; ok {
		return k
	}
	return fallback
}

// Known reports whether key names a shipped icon.
func Known(key string) bool {
	_, ok := lookup[normalize(key)]
	return ok
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
