package common

import "github.com/leapstack-labs/musbsite/internal/content"

// Card is a settings-driven content card. Editors fill the fields they need.
type Card struct {
	Icon        string
	Title       string
	Description string
	Who         string
	Items       []string
	Quote       string
	CTAText     string
	CTALink     string
	Color       string
}

// Cards reads the card array at path, or returns def when the settings have
// none.
func Cards(s content.Settings, path string, def []Card) []Card {
	objs := s.Objects(path)
	if len(objs) == 0 {
		return def
	}
	cards := make([]Card, 0, len(objs))
	for _, o := range objs {
		cards = append(cards, Card{
			Icon:        o.String("icon", ""),
			Title:       o.String("title", o.String("name", "")),
			Description: o.String("description", ""),
			Who:         o.String("who", ""),
			Items:       o.Strings("deliverables", o.Strings("items", nil)),
			Quote:       o.String("quote", ""),
			CTAText:     o.String("cta_text", "Learn More"),
			CTALink:     o.String("cta_link", "/contact"),
			Color:       o.String("color", "cyan"),
		})
	}
	return cards
}

// ServiceCards are the three service lines shown on the home and why
// choose us pages.
var ServiceCards = []Card{
	{
		Icon:  "flask-conical",
		Title: "Research & Innovation",
		Who:   "Biotech, nutrition, pharma, ingredient, and wellness companies seeking scientific validation.",
		Items: []string{
			"Preclinical screening and mechanistic studies",
			"In vitro, C. elegans, and animal models",
			"Human clinical trials and translational research",
			"Biomarkers, microbiome, and functional outcomes",
		},
		Quote:   "We turn scientific concepts into credible evidence that informs product development, claims, and commercialization.",
		CTAText: "Discuss a Research Project",
		CTALink: "/contact?interest=Research+%26+Innovation",
		Color:   "cyan",
	},
	{
		Icon:  "microscope",
		Title: "Central Laboratory Services",
		Who:   "Sponsors needing reliable, compliant testing to support research and clinical studies.",
		Items: []string{
			"Clinical and research biomarker testing",
			"ELISA, proteomics, real-time PCR",
			"Microbiome and molecular analysis",
			"SOP-driven workflows with sponsor-ready reporting",
		},
		Quote:   "Our central lab services ensure accuracy, reproducibility, and data integrity across preclinical and clinical programs.",
		CTAText: "Request Laboratory Services",
		CTALink: "/contact?interest=Central+Lab+Services",
		Color:   "blue",
	},
	{
		Icon:  "database",
		Title: "Biorepository",
		Who:   "Organizations managing biological samples across studies, sites, or timepoints.",
		Items: []string{
			"Sample processing, labeling, and tracking",
			"Secure, long-term storage under controlled conditions",
			"Support for longitudinal and multi-omics studies",
			"Retrieval and chain-of-custody documentation",
		},
		Quote:   "Our biorepository protects the long-term value of your samples and supports future discovery and regulatory needs.",
		CTAText: "Explore Biorepository Support",
		CTALink: "/contact?interest=Biorepository",
		Color:   "indigo",
	},
}
