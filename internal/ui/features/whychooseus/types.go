// Package whychooseus provides the "why choose us" company page. Every
// section reads the about settings and falls back to the copy below.
package whychooseus

import (
	"strings"

	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// DefaultTrustIndicators back the "why partner with us" section.
var DefaultTrustIndicators = []common.Card{
	{Icon: "brain", Title: "Multidisciplinary Expertise", Description: "Clinical and preclinical research expertise across diverse therapeutic areas."},
	{Icon: "graduation-cap", Title: "Academia-Affiliated", Description: "Led by academia-affiliated scientists and board-certified clinicians."},
	{Icon: "database", Title: "Integrated Services", Description: "Integrated research, lab, and biorepository services for seamless project execution."},
	{Icon: "workflow", Title: "End-to-End Support", Description: "Comprehensive research support from discovery to validation."},
	{Icon: "heart-pulse", Title: "Ethical & Community-Focused", Description: "Commitment to community-focused, transparent, and ethical research practices."},
}

// DefaultCoreValues back the core values section.
var DefaultCoreValues = []common.Card{
	{Icon: "shield-check", Title: "Integrity", Description: "We uphold the highest standards of scientific and ethical conduct in every study we perform."},
	{Icon: "zap", Title: "Innovation", Description: "We continuously push boundaries, leveraging emerging technologies and novel approaches."},
	{Icon: "users", Title: "Collaboration", Description: "We work as an extension of your team, aligning with your goals and timelines."},
	{Icon: "target", Title: "Responsibility", Description: "We take ownership of outcomes and ensure every project meets the highest quality standards."},
	{Icon: "refresh-ccw", Title: "Continuous Improvement", Description: "We learn from every study to refine our processes and deliver ever-better results."},
	{Icon: "heart", Title: "Community Impact", Description: "We are driven by the belief that ethical research can transform public health and wellbeing."},
}

// DefaultPartnerFeatures back the extended partner section.
var DefaultPartnerFeatures = []common.Card{
	{Icon: "layers", Title: "Full-Spectrum Services", Description: "From discovery to clinical validation, we cover every stage of the research lifecycle."},
	{Icon: "users", Title: "Dedicated Project Teams", Description: "Your study is led by named scientists who understand your therapeutic area."},
	{Icon: "zap", Title: "Operational Agility", Description: "Lean teams, fast timelines, and adaptive protocols that keep your program moving."},
	{Icon: "shield-check", Title: "Regulatory Confidence", Description: "GLP/GCP-compliant workflows and sponsor-ready documentation and reporting."},
}

const (
	defaultHeroTitle = "Your Science Partner for <em>Evidence-Driven</em> Growth"
	defaultHeroDesc  = "At MusB™ Research, we don't just run studies. We help you understand your product's strengths, limitations, and real-world impact so you can make the best scientific, business, and health decisions."
	defaultStory     = "MusB™ Research was founded with a singular vision: to bridge the gap between groundbreaking scientific discovery and real-world health impact. Born from a deep commitment to scientific rigor and community wellbeing, our team of scientists, clinicians, and innovators has built a platform that empowers companies to develop products with credible, evidence-based claims.\n\n" +
		"From humble beginnings to a 20,000+ sq. ft. research complex, we've grown to serve sponsors worldwide while staying true to our founding principle: that great science should serve everyone."
	defaultPartnerContent = "We operate as a seamless extension of your internal team, providing deep scientific expertise, operational agility, and end-to-end project management."
	defaultMission        = "To advance human health through rigorous, ethical, and innovative research that bridges scientific discovery with real-world impact."
	defaultVision         = "To be the most trusted name in translational and clinical research, setting the global standard for scientific integrity and innovation."
)

// PageData is the data of the why choose us page.
type PageData struct {
	Settings content.Settings

	HeroTagline    string
	HeroTitle      string // CMS HTML
	HeroDesc       string
	StoryTitle     string
	Story          []string // paragraphs
	PartnerTitle   string
	PartnerContent string
	MissionTitle   string
	Mission        string
	VisionTitle    string
	Vision         string
	ThreeWaysTitle string
	ThreeWaysSub   string
	WhyTitle       string

	ThreeWays       []common.Card
	CoreValues      []common.Card
	TrustIndicators []common.Card
	PartnerFeatures []common.Card
}

// Show reports whether a settings toggle leaves its section on.
func (p PageData) Show(key string) bool {
	return p.Settings.Bool(key, true)
}

// NewPageData resolves every section from s.
func NewPageData(s content.Settings) PageData {
	return PageData{
		Settings:        s,
		HeroTagline:     s.String("hero_tagline", "Scientist-Led Growth"),
		HeroTitle:       s.String("hero_title", defaultHeroTitle),
		HeroDesc:        s.String("hero_description", defaultHeroDesc),
		StoryTitle:      s.String("story_title", "Our Story"),
		Story:           paragraphs(s.String("story_content", defaultStory)),
		PartnerTitle:    s.String("partner_title", "Your Extended R&D Partner"),
		PartnerContent:  s.String("partner_content", defaultPartnerContent),
		MissionTitle:    s.String("mission_title", "Our Mission"),
		Mission:         s.String("mission_content", defaultMission),
		VisionTitle:     s.String("vision_title", "Our Vision"),
		Vision:          s.String("vision_content", defaultVision),
		ThreeWaysTitle:  s.String("three_ways_title", "Three Ways MusB™ Research Supports Your Program"),
		ThreeWaysSub:    s.String("three_ways_subtitle", ""),
		WhyTitle:        s.String("why_choose_title", "Why Partner With Us"),
		ThreeWays:       common.Cards(s, "three_ways_cards", common.ServiceCards),
		CoreValues:      common.Cards(s, "core_values", DefaultCoreValues),
		TrustIndicators: common.Cards(s, "trust_indicators", DefaultTrustIndicators),
		PartnerFeatures: common.Cards(s, "partner_features", DefaultPartnerFeatures),
	}
}

func paragraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
