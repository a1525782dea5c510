// Package innovations provides the innovation page and the technology
// showcase.
package innovations

import (
	"strings"

	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/icon"
)

// DefaultGradient colours a technology that names none.
const DefaultGradient = "from-blue-500 to-indigo-500"

// DefaultTechnologies are shown when the backend lists no technologies.
var DefaultTechnologies = []content.Technology{
	{
		ID:          "increlac",
		Name:        "IncreLac™",
		Tagline:     "GLP-1 Promoting Probiotics",
		Description: "A next-generation probiotic platform designed to support endogenous GLP-1 stimulation for metabolic health and weight management.",
		FocusAreas:  []string{"Metabolic health", "GLP-1 signaling pathways", "Gut–endocrine axis"},
		Features: []string{
			"Scientific data & summaries",
			"Publications & abstracts",
			"News & updates",
			"Flyers / one-pagers",
			"Partnership inquiries",
		},
		Icon:     "TrendingUp",
		Gradient: "from-emerald-500 to-teal-500",
	},
}

// includeIcons picks an icon for a "technology page includes" line by its
// leading words.
var includeIcons = []struct {
	prefix string
	kind   icon.Kind
}{
	{"publication", icon.BookOpen},
	{"news", icon.Newspaper},
	{"flyer", icon.Paperclip},
	{"partnership", icon.Mail},
}

// Include is one line of a technology's page contents.
type Include struct {
	Icon icon.Kind
	Text string
}

// Showcase is a technology prepared for its card.
type Showcase struct {
	content.Technology
	Kind     icon.Kind
	Includes []Include
	Gradient string
}

// Href links the card to the technology page.
func (s Showcase) Href() string { return "/innovations/" + s.ID.String() }

// NewShowcase maps a technology record. Unknown icons fall back to the flask.
func NewShowcase(t content.Technology) Showcase {
	s := Showcase{
		Technology: t,
		Kind:       icon.Parse(t.Icon, icon.FlaskConical),
		Gradient:   t.Gradient,
	}
	if s.Gradient == "" {
		s.Gradient = DefaultGradient
	}
	for _, f := range t.Features {
		s.Includes = append(s.Includes, Include{Icon: includeIcon(f), Text: f})
	}
	return s
}

func includeIcon(text string) icon.Kind {
	lower := strings.ToLower(text)
	for _, ic := range includeIcons {
		if strings.HasPrefix(lower, ic.prefix) {
			return ic.kind
		}
	}
	return icon.FileText
}

// Pathway is one step of the concept-to-product pathway.
type Pathway struct {
	Step  int
	Title string
}

var (
	// Supports lists the sponsored research the site offers.
	Supports = []string{
		"Proof-of-concept studies",
		"Mechanistic validation",
		"Human clinical trials",
		"Biomarkers, microbiome, and translational endpoints",
	}
	// Differences lists what sets the research apart.
	Differences = []string{
		"Scientist-led study design",
		"Integrated research, central lab, and biorepository",
		"No bias toward company size. Startups and global brands are treated equally",
		"Clear timelines, transparent data, and actionable outcomes",
	}
	// Steps is the concept-to-product pathway.
	Steps = []Pathway{
		{1, "Scientific feasibility & mechanism mapping"},
		{2, "In vitro and in vivo validation"},
		{3, "Biomarker and functional outcome identification"},
		{4, "Human clinical evaluation"},
		{5, "Data interpretation for claims, positioning, and go-to-market decisions"},
	}
	// IdealFor lists the concepts the pathway suits.
	IdealFor = []string{
		"New ingredients or formulations",
		"Next-generation probiotics / postbiotics",
		"Gut, metabolic, brain, aging, women's health innovations",
	}
	// TrustPoints back the "why innovate with us" section.
	TrustPoints = []Include{
		{icon.Star, "Scientist-founded and led"},
		{icon.FlaskConical, "Integrated research, lab, and biorepository"},
		{icon.Shield, "Regulatory-aligned execution"},
		{icon.ShieldCheck, "Transparent, ethical, publication-ready science"},
		{icon.Layers, "Flexible partnerships and co-development models"},
	}
)

// PageData is the data of the innovations page.
type PageData struct {
	Settings     content.Settings
	Technologies []Showcase
	Supports     []string
	Differences  []string
	Steps        []Pathway
	IdealFor     []string
	TrustPoints  []Include
}

// DetailData is the data of a technology page.
type DetailData struct {
	Tech Showcase
}
