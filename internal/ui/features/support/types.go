// Package support provides the "for businesses" page.
package support

import (
	"net/url"

	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// RouteOption is one choice of the inquiry router. Each one opens the
// contact page with its interest preselected.
type RouteOption struct {
	Label       string
	Description string
	Icon        string
}

// Href links the option to the contact page.
func (o RouteOption) Href() string {
	return "/contact?interest=" + url.QueryEscape(o.Label)
}

// RouterOptions are the inquiry router choices.
var RouterOptions = []RouteOption{
	{Label: "Research & Innovation", Description: "Scientific validation and clinical evidence", Icon: "flask-conical"},
	{Label: "Central Lab Services", Description: "Testing and biomarker analysis", Icon: "microscope"},
	{Label: "Biorepository", Description: "Sample storage and management", Icon: "database"},
	{Label: "Not sure (help me choose)", Description: "Speak with a strategist", Icon: "star"},
}

// DefaultPillars are the three support pillars.
var DefaultPillars = []common.Card{
	{
		Icon:        "flask-conical",
		Title:       "Research & Innovation",
		Description: "From concept to evidence: preclinical and clinical research that moves products forward.",
		Items: []string{
			"In vitro screening and mechanistic validation",
			"Preclinical efficacy and safety studies",
			"Human clinical trials and outcomes research",
			"Biomarkers, microbiome endpoints, and data interpretation",
		},
		CTAText: "Discuss a Research Project",
		Color:   "cyan",
	},
	{
		Icon:        "microscope",
		Title:       "Central Lab Services",
		Description: "Reliable, scalable testing to support studies, product validation, and regulatory-ready reporting.",
		Items: []string{
			"Clinical and research biomarker testing",
			"ELISA, proteomics, real-time PCR",
			"Microbiome workflows and analytics support",
			"SOP-driven quality control and documentation",
		},
		CTAText: "Inquire About Lab Services",
		Color:   "indigo",
	},
	{
		Icon:        "database",
		Title:       "Biorepository",
		Description: "Secure biospecimen processing, tracking, and storage for longitudinal research.",
		Items: []string{
			"Sample processing and standardized aliquoting",
			"Long-term storage with chain-of-custody",
			"Study-ready labeling, tracking, and retrieval",
			"Built for multi-site and longitudinal programs",
		},
		CTAText: "Request Biorepository Support",
		Color:   "blue",
	},
}

// DefaultExpertise lists the research domains.
var DefaultExpertise = []string{
	"Leaky Gut", "Inflammation", "Microbiome", "Biotics", "Aging",
	"Cognitive Health", "Neurodegeneration", "Muscle Health", "Gut Health",
	"Diabetes & Obesity", "Skin Health", "Brain Health", "Vascular Health",
	"Toxicology", "Bioavailability",
}

// DefaultStories are the success story cards.
var DefaultStories = []common.Card{
	{Icon: "database", Who: "Integrated", Title: "Micronutrient Efficacy Validation", Description: "Demonstrated 30% improved bioavailability through our preclinical-to-clinical workflow."},
	{Icon: "database", Who: "Research", Title: "Microbiome Signature Discovery", Description: "Identified novel biomarkers for a biotech startup's lead ingredient validation."},
	{Icon: "database", Who: "Biorepository", Title: "Multi-Year Biospecimen Security", Description: "Managed 50,000+ aliquots with 100% chain-of-custody integrity for aging studies."},
}

// DefaultApproach are the approach steps.
var DefaultApproach = []common.Card{
	{Title: "Collaborative Partnerships", Description: "Transparent communication and aligned milestones"},
	{Title: "Expert Research Execution", Description: "Rigorous design and operational excellence"},
	{Title: "Comprehensive Consultation", Description: "Strategic input from discovery through commercialization"},
	{Title: "Rigorous Quality Control", Description: "SOP-driven, reproducible processes"},
	{Title: "Ethical Standards", Description: "IRB, GCP, and regulatory-aligned conduct"},
	{Title: "End-to-End Support", Description: "Bench → preclinical → clinical → interpretation"},
}

// DefaultHeroPoints list the hero highlights.
var DefaultHeroPoints = []string{
	"Comprehensive solutions from early screening to clinical studies",
	"Deep expertise in microbiome, biotics, aging, and metabolic health",
	"Led by world-class scientists and industry experts for top-tier results",
}

// PageData is the data of the support page.
type PageData struct {
	Settings   content.Settings
	HeroTitle  string
	HeroPoints []string
	Router     []RouteOption
	Pillars    []common.Card
	Expertise  []string
	Stories    []common.Card
	Approach   []common.Card
}

// Show reports whether a settings toggle leaves its section on.
func (p PageData) Show(key string) bool {
	return p.Settings.Bool(key, true)
}

// NewPageData resolves the page sections from s.
func NewPageData(s content.Settings) PageData {
	return PageData{
		Settings:   s,
		HeroTitle:  s.String("hero_title", "Your Trusted Partner in R&D Excellence"),
		HeroPoints: s.Strings("hero_points", DefaultHeroPoints),
		Router:     RouterOptions,
		Pillars:    common.Cards(s, "pillars", DefaultPillars),
		Expertise:  s.Strings("expertise", DefaultExpertise),
		Stories:    common.Cards(s, "success_stories", DefaultStories),
		Approach:   common.Cards(s, "approach", DefaultApproach),
	}
}
