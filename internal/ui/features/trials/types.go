// Package trials provides the clinical trials page: the study finder, the
// full study list, the volunteer FAQ and the study match form.
package trials

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"

	"github.com/leapstack-labs/musbsite/internal/api"
	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/icon"
	"github.com/leapstack-labs/musbsite/internal/listing"
	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// FinderLimit is how many studies the finder shows.
const FinderLimit = 4

// MatchForm names the study match form's signals and machine.
const MatchForm = "match"

// MatchSubject is the contact subject of a study match request.
const MatchSubject = "Study Matching Request"

var (
	// Conditions are the condition choices of the full list.
	Conditions = []string{listing.All, "Gut", "Metabolic", "Aging", "Women’s Health", "Brain/Cognition", "Skin", "Other"}
	// Types are the participation type choices of the full list.
	Types = []string{listing.All, "Virtual", "On-site", "Hybrid"}
	// FinderConditions are the finder's choices.
	FinderConditions = []string{listing.All, "Gut", "Brain", "Metabolic", "Aging", "Women’s Health", "Cancer Support"}

	// AgeRanges, Interests and Participation are the match form's choices.
	AgeRanges     = []string{"18-24", "25-34", "35-44", "45-54", "55-64", "65+"}
	Interests     = []string{"Gut Health", "Aging", "Metabolic", "Cognition", "Women's Health", "Skin"}
	Participation = []string{"Virtual", "On-site", "Either"}
)

// FAQ is one volunteer question.
type FAQ struct {
	Question string
	Answer   string
}

// Anchor is the element ID the question is linked by.
func (f FAQ) Anchor() string { return slug.Make(f.Question) }

// FAQs are the volunteer questions.
var FAQs = []FAQ{
	{"Can I join a MusB™ Research study from home?", "Yes. Many studies are 100% virtual. Please contact our team to enquire about this option. If eligible, we ship the product to your home. You share information through online surveys. Your information is kept confidential."},
	{"How do I sign up to participate?", "Click 'Check Eligibility,' complete a short form, and our team will contact you if you qualify."},
	{"How long do studies last?", "Many studies run about 4-8 weeks, though some may be shorter or longer depending on the protocol."},
	{"What do I get for participating?", "Eligible volunteers may receive a no-cost product supply and a personalized health report upon completion. Some studies may include compensation."},
	{"Can I discuss the study with my healthcare provider?", "Yes. You are encouraged to discuss participation with your healthcare provider."},
	{"How are MusB™ studies different?", "Our studies focus on scientific rigor, participant convenience, and real-world relevance, using both onsite and virtual participation and validated products."},
}

// Step is one step of how a study works.
type Step struct {
	Icon        icon.Kind
	Title       string
	Description string
}

// Steps explain how a study works.
var Steps = []Step{
	{icon.Activity, "Quick Eligibility Check", "Answer a few short questions to see if you qualify. It only takes a minute and your information stays confidential."},
	{icon.FileText, "Enroll & Receive Your Study Product", "If eligible, our research team will contact you and schedule your visit at one of our MusB™ Research facilities."},
	{icon.Microscope, "Participate & Share Your Experience", "Continue your normal routine while using the study product. We will check in with you through simple follow-ups."},
	{icon.Star, "Complete the Study & Get Compensated", "Finish the study activities and receive your compensation as a thank-you for contributing to important research."},
}

// StudySignals are the full list's filter signals.
type StudySignals struct {
	ViewID    string `json:"viewId"`
	Condition string `json:"condition"`
	Type      string `json:"type"`
	Search    string `json:"search"`
}

// FinderSignals are the finder's filter signals.
type FinderSignals struct {
	ViewID    string `json:"viewId"`
	Condition string `json:"condition"`
}

// FilterStudies applies the full list's filters.
func FilterStudies(items []content.Study, s StudySignals) listing.View[content.Study] {
	return listing.Slice(items, 0,
		listing.Equals(s.Condition, func(x content.Study) string { return x.Condition }),
		listing.Equals(s.Type, func(x content.Study) string { return x.Type }),
		listing.Search(s.Search,
			func(x content.Study) string { return x.Title },
			func(x content.Study) string { return x.Description },
		),
	)
}

// FindStudies applies the finder's condition filter.
func FindStudies(items []content.Study, s FinderSignals) listing.View[content.Study] {
	return listing.Slice(items, FinderLimit,
		listing.Equals(s.Condition, func(x content.Study) string { return x.Condition }),
	)
}

// StudiesView is the data of the trials-results fragment.
type StudiesView struct {
	Signals    StudySignals
	Conditions []string
	Types      []string
	View       listing.View[content.Study]
}

// Scoped returns the data-signals value of the list.
func (v StudiesView) Scoped() map[string]StudySignals {
	return map[string]StudySignals{viewName: v.Signals}
}

// FinderView is the data of the trials-finder fragment.
type FinderView struct {
	Signals    FinderSignals
	Conditions []string
	View       listing.View[content.Study]
}

// Scoped returns the data-signals value of the finder.
func (v FinderView) Scoped() map[string]FinderSignals {
	return map[string]FinderSignals{finderName: v.Signals}
}

// MatchInput is the study match form's fields.
type MatchInput struct {
	Name          string   `json:"name" validate:"required,max=200"`
	Email         string   `json:"email" validate:"required,email"`
	Phone         string   `json:"phone" validate:"max=50"`
	AgeRange      string   `json:"ageRange"`
	Interests     []string `json:"interests"`
	Participation string   `json:"participation"`
}

// Submission converts the input for the contact endpoint. The match
// details travel in the message.
func (in MatchInput) Submission() api.ContactSubmission {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	return api.ContactSubmission{
		Name:    name,
		Email:   strings.TrimSpace(in.Email),
		Phone:   phone,
		Subject: MatchSubject,
		Message: fmt.Sprintf("%s:\nName: %s\nPhone: %s\nAge Range: %s\nInterests: %s\nPreferred Participation: %s",
			MatchSubject, name, phone, in.AgeRange, strings.Join(in.Interests, ", "), in.Participation),
	}
}

// MatchData is the data of the match form section.
type MatchData struct {
	AgeRanges     []string
	Interests     []string
	Participation []string
	Signals       map[string]any
	Status        common.FormStatus
}

// PageData is the data of the trials page.
type PageData struct {
	Finder  FinderView
	Studies StudiesView
	Steps   []Step
	FAQs    []FAQ
	Match   MatchData
}
