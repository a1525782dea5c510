// Package contact provides the contact page and its inquiry form.
package contact

import (
	"strings"

	"github.com/leapstack-labs/musbsite/internal/api"
	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// FormName names the contact form's signals and machine.
const FormName = "contact"

// DefaultInquiryType is selected when nothing else applies.
const DefaultInquiryType = "general"

// DefaultInquiryTypes are offered when the backend has none.
var DefaultInquiryTypes = []content.InquiryType{
	{Slug: "business", Label: "Business / Sponsorship"},
	{Slug: "research", Label: "Research Collaboration"},
	{Slug: "lab", Label: "Central Laboratory Services"},
	{Slug: "biorepository", Label: "Biorepository"},
	{Slug: "participation", Label: "Clinical Study Participation"},
	{Slug: "careers", Label: "Careers"},
	{Slug: DefaultInquiryType, Label: "General Inquiry"},
}

// Areas are the interest checkboxes shown for sponsor inquiries.
var Areas = []string{"Research & Innovation", "Central Laboratory", "Biorepository"}

// interests maps the labels other pages link with to inquiry slugs.
var interests = map[string]string{
	"research & innovation":     "research",
	"central lab services":      "lab",
	"central laboratory":        "lab",
	"biorepository":             "biorepository",
	"clinical study":            "participation",
	"not sure (help me choose)": DefaultInquiryType,
}

// Input is the contact form's fields.
type Input struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       string   `json:"phone" validate:"max=40"`
	InquiryType string   `json:"inquiryType" validate:"required"`
	Areas       []string `json:"areas"`
	Company     string   `json:"company" validate:"max=200"`
	Message     string   `json:"message" validate:"required,max=5000"`
}

// Blank is the form after a reset.
func Blank() Input {
	return Input{InquiryType: DefaultInquiryType, Areas: []string{}}
}

// Submission converts the input to the backend request.
func (in Input) Submission() api.ContactSubmission {
	msg := strings.TrimSpace(in.Message)
	if len(in.Areas) > 0 {
		msg += "\n\nAreas of Interest: " + strings.Join(in.Areas, ", ")
	}
	return api.ContactSubmission{
		Name:            strings.TrimSpace(in.Name),
		Email:           strings.TrimSpace(in.Email),
		Phone:           strings.TrimSpace(in.Phone),
		Company:         strings.TrimSpace(in.Company),
		Message:         msg,
		InquiryTypeSlug: in.InquiryType,
	}
}

// ResolveInterest picks the inquiry slug for an interest query value. It
// matches known interest labels, then inquiry slugs and labels.
func ResolveInterest(interest string, types []content.InquiryType) string {
	key := strings.ToLower(strings.TrimSpace(interest))
	if key == "" {
		return DefaultInquiryType
	}
	if slug, ok := interests[key]; ok {
		return slug
	}
	for _, t := range types {
		if strings.EqualFold(t.Slug, key) || strings.EqualFold(t.Label, key) {
			return t.Slug
		}
	}
	return DefaultInquiryType
}

// Details is the contact information column.
type Details struct {
	Address  string
	MapURL   string
	Phone    string
	Text     string
	WhatsApp string
	Email    string
}

// PageData is the data of the contact page.
type PageData struct {
	Title        string
	Intro        string
	ResponseTime string
	Types        []content.InquiryType
	Areas        []string
	Details      Details
	Signals      map[string]any
	Status       common.FormStatus
}
