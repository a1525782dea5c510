// Package home provides the landing page feature.
package home

import (
	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/listing"
	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// StudyLimit is how many studies the home study section shows.
const StudyLimit = 3

// CapabilityLimit is how many capabilities the home page shows.
const CapabilityLimit = 8

// StudyConditions are the condition choices of the home study section.
var StudyConditions = []string{listing.All, "Gut", "Brain", "Metabolic", "Aging", "Women’s Health", "Cancer Support"}

// HeroSlide is one slide of the home hero.
type HeroSlide struct {
	Headline     string
	Subtext      []string
	PrimaryCTA   string
	SecondaryCTA string
	Image        string
}

// DefaultSlides are shown when the home settings carry no slides.
var DefaultSlides = []HeroSlide{
	{
		Headline: "Your Trusted Partner\nin R&D Excellence",
		Subtext: []string{
			"Comprehensive solutions from early discovery to human clinical studies",
			"Deep expertise in microbiome, biotics, aging, and metabolic health",
			"Led by world-class scientists delivering rigorous, real-world evidence",
		},
		PrimaryCTA:   "Find a Clinical Study",
		SecondaryCTA: "Work With Us (Sponsors & Partners)",
		Image:        "/static/hero-1.svg",
	},
	{
		Headline: "Advancing Global Health Through Innovation",
		Subtext: []string{
			"Pioneering breakthrough discoveries in musculoskeletal biology",
			"Accelerating translational research with world-class integrity",
			"Bridging the gap between clinical excellence and commercial success",
		},
		PrimaryCTA:   "Our Research",
		SecondaryCTA: "Partner With Us",
		Image:        "/static/hero-2.svg",
	},
}

// StudySignals are the home study section's filter signals.
type StudySignals struct {
	ViewID    string `json:"viewId"`
	Condition string `json:"condition"`
}

// StudiesView is the data of the home-studies fragment.
type StudiesView struct {
	Signals    StudySignals
	Conditions []string
	View       listing.View[content.Study]
}

// Scoped returns the data-signals value of the section.
func (v StudiesView) Scoped() map[string]StudySignals {
	return map[string]StudySignals{viewName: v.Signals}
}

// PageData is the data of the home page.
type PageData struct {
	Settings       content.Settings
	Slides         []HeroSlide
	Studies        StudiesView
	Services       []common.Card
	Capabilities   []content.Capability
	Facilities     []content.Facility
	Certifications []content.Certification
	Partners       []content.Partner
}

// Show reports whether the section toggled by key is enabled. Sections are
// on unless the settings turn them off.
func (p PageData) Show(key string) bool {
	return p.Settings.Bool(key, true)
}

// Hero returns the first slide.
func (p PageData) Hero() HeroSlide {
	if len(p.Slides) == 0 {
		return DefaultSlides[0]
	}
	return p.Slides[0]
}

// MoreSlides returns the slides after the first.
func (p PageData) MoreSlides() []HeroSlide {
	if len(p.Slides) < 2 {
		return nil
	}
	return p.Slides[1:]
}

// slidesFrom reads hero_slides, or returns the defaults.
func slidesFrom(s content.Settings) []HeroSlide {
	objs := s.Objects("hero_slides")
	if len(objs) == 0 {
		return DefaultSlides
	}
	slides := make([]HeroSlide, 0, len(objs))
	for _, o := range objs {
		slides = append(slides, HeroSlide{
			Headline:     o.String("headline", o.String("title", "")),
			Subtext:      o.Strings("subtext", nil),
			PrimaryCTA:   o.String("primaryCTA", o.String("primary_cta", "Find a Clinical Study")),
			SecondaryCTA: o.String("secondaryCTA", o.String("secondary_cta", "")),
			Image:        o.String("image", ""),
		})
	}
	return slides
}
