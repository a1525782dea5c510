// Package facilities provides the facilities page and its sponsor inquiry
// form.
package facilities

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/musbsite/internal/api"
	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/icon"
	"github.com/leapstack-labs/musbsite/internal/listing"
	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// FormName names the sponsor inquiry's signals and machine.
const FormName = "sponsor"

// InquiryType is the inquiry type the backend files facilities leads under.
const InquiryType = "general"

// Pillar is the static part of a pillar section.
type Pillar struct {
	Key          string
	Anchor       string
	Icon         icon.Kind
	Title        string
	Description  string
	CTA          string
	DetailsLabel string

	// Interest is the inquiry interest the pillar's CTA preselects.
	Interest string
}

// Pillars lists the pillar sections in page order.
var Pillars = []Pillar{
	{
		Key: content.PillarResearch, Anchor: "research", Icon: icon.Microscope,
		Title: "Research & Innovation", Description: "From discovery through human clinical trials.",
		CTA: "Discuss a Research Plan", DetailsLabel: "View Details",
		Interest: "Research & Innovation",
	},
	{
		Key: content.PillarLab, Anchor: "lab", Icon: icon.Beaker,
		Title: "Central Lab Services", Description: "Biomarker, molecular and microbiome testing.",
		CTA: "Request Lab Services", DetailsLabel: "View Capabilities",
		Interest: "Central Lab Services",
	},
	{
		Key: content.PillarBiorepository, Anchor: "bio", Icon: icon.Archive,
		Title: "Biorepository", Description: "Secure sample storage and tracking.",
		CTA: "Explore Biorepository", DetailsLabel: "View Storage specs",
		Interest: "Biorepository",
	},
}

// Section is a pillar with its settings copy and modules.
type Section struct {
	Pillar
	Modules []content.FacilityModule
}

// BuildSections groups modules under their pillars. Titles and descriptions
// come from the <anchor>_pillar_title and _desc settings. Modules of other
// pillars are not shown.
func BuildSections(page content.FacilitiesPage) []Section {
	groups := listing.Group(page.Modules, func(m content.FacilityModule) string { return m.Pillar },
		content.PillarResearch, content.PillarLab, content.PillarBiorepository)
	out := make([]Section, 0, len(Pillars))
	for _, p := range Pillars {
		p.Title = page.Settings.String(p.Anchor+"_pillar_title", p.Title)
		p.Description = page.Settings.String(p.Anchor+"_pillar_desc", p.Description)
		sec := Section{Pillar: p}
		if g, ok := listing.Find(groups, func(b listing.Bucket[string, content.FacilityModule]) bool { return b.Key == p.Key }); ok {
			sec.Modules = g.Items
		}
		out = append(out, sec)
	}
	return out
}

// Badge is a trust badge or success signal with its icon.
type Badge struct {
	content.Badge
	Kind icon.Kind
}

// Badges maps badge records. Unknown icons fall back to Activity.
func Badges(items []content.Badge) []Badge {
	out := make([]Badge, 0, len(items))
	for _, b := range items {
		out = append(out, Badge{Badge: b, Kind: icon.Parse(b.Icon, icon.Activity)})
	}
	return out
}

// Interests and Stages are the inquiry's choices.
var (
	Interests = []string{"Research & Innovation", "Central Lab Services", "Biorepository", "Not sure (Help me choose)"}
	Stages    = []string{"Concept", "Preclinical", "Clinical", "Post-Market / Commercial"}
)

// Input is the sponsor inquiry's fields.
type Input struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Company  string `json:"company" validate:"max=200"`
	Role     string `json:"role" validate:"max=200"`
	Interest string `json:"interest" validate:"required"`
	Stage    string `json:"stage" validate:"required"`
}

// Blank is the form after a reset.
func Blank() Input {
	return Input{Interest: Interests[0], Stage: Stages[0]}
}

// Inquiry converts the input for the backend. The role, interest and stage
// travel in the message.
func (in Input) Inquiry() api.SponsorInquiry {
	return api.SponsorInquiry{
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		Company:     strings.TrimSpace(in.Company),
		InquiryType: InquiryType,
		Message: fmt.Sprintf("Role: %s\nInterest: %s\nStage: %s\n\n(Submitted via Facilities Page)",
			strings.TrimSpace(in.Role), in.Interest, in.Stage),
	}
}

// PageData is the data of the facilities page.
type PageData struct {
	Settings       content.Settings
	Sections       []Section
	TrustBadges    []Badge
	SuccessSignals []Badge
	Interests      []string
	Stages         []string
	Signals        map[string]any
	Status         common.FormStatus
}
