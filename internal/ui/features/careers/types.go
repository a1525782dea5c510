// Package careers provides the careers page, job pages and the job
// application form.
package careers

import (
	"bytes"
	"strings"

	"github.com/leapstack-labs/musbsite/internal/api"
	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/icon"
	"github.com/leapstack-labs/musbsite/internal/listing"
	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

// ApplicationForm names the job application's signals and machine.
const ApplicationForm = "application"

// Upload limits of the application form.
const (
	MaxResumeSize      = 10 << 20
	MaxApplicationSize = MaxResumeSize + 1<<20

	// parts beyond this spill to temporary files
	multipartMemory = 1 << 20
)

// ResumeTooLarge is the hint shown for an oversized upload.
const ResumeTooLarge = "Resume must be 10 MB or smaller."

// Step is one step of the hiring process.
type Step struct {
	Icon        icon.Kind
	Title       string
	Description string
}

// Value is one culture value.
type Value struct {
	Icon icon.Kind
	Name string
}

var (
	// HiringSteps is the hiring process.
	HiringSteps = []Step{
		{icon.FileText, "Apply Online", "Submit your application through our careers portal."},
		{icon.Mail, "Interview & Discussion", "Meet with our team to discuss skills, experience, and fit."},
		{icon.Star, "Join the Team", "Successful candidates receive an offer and onboarding support."},
	}
	// CultureValues back the culture section.
	CultureValues = []Value{
		{icon.Star, "Excellence"},
		{icon.ShieldCheck, "Integrity"},
		{icon.TrendingUp, "Innovation"},
		{icon.Layers, "Collaboration"},
		{icon.Shield, "Responsibility"},
		{icon.Activity, "Continuous Improvement"},
	}
	// Benefits back the "why work with us" section.
	Benefits = []string{
		"Mission-driven, science-first culture",
		"Work with renowned scientists and clinicians",
		"Exposure to cutting-edge research and clinical trials",
		"Collaborative, inclusive environment",
		"Opportunities for growth and learning",
		"Real-world impact on public health",
	}
)

// JobSignals are the open positions filter signals.
type JobSignals struct {
	ViewID     string `json:"viewId"`
	Department string `json:"department"`
	Search     string `json:"search"`
}

// JobsView is the data of the careers-jobs fragment.
type JobsView struct {
	Signals     JobSignals
	Departments []string
	View        listing.View[content.JobOpening]
}

// Scoped returns the data-signals value of the section.
func (v JobsView) Scoped() map[string]JobSignals {
	return map[string]JobSignals{viewName: v.Signals}
}

// FilterJobs applies the department and search filters. Search covers the
// title and summary.
func FilterJobs(items []content.JobOpening, s JobSignals) listing.View[content.JobOpening] {
	return listing.Slice(items, 0,
		listing.Equals(s.Department, func(j content.JobOpening) string { return j.Department }),
		listing.Search(s.Search,
			func(j content.JobOpening) string { return j.Title },
			func(j content.JobOpening) string { return j.Summary },
		),
	)
}

// Departments lists the department choices, led by All.
func Departments(items []content.JobOpening) []string {
	return listing.Distinct(items, func(j content.JobOpening) string { return j.Department }, listing.All)
}

// Category is a career path card.
type Category struct {
	content.CareerCategory
	Kind icon.Kind
}

// Categories maps category records to cards. Unknown icons fall back to the
// briefcase.
func Categories(items []content.CareerCategory) []Category {
	out := make([]Category, 0, len(items))
	for _, c := range items {
		out = append(out, Category{CareerCategory: c, Kind: icon.Parse(c.Icon, icon.Briefcase)})
	}
	return out
}

// PageData is the data of the careers page.
type PageData struct {
	Jobs        JobsView
	Categories  []Category
	Benefits    []string
	Values      []Value
	HiringSteps []Step
}

// Resume is an uploaded resume.
type Resume struct {
	Name        string
	ContentType string
	Data        []byte
}

// Application is the job application form's fields.
type Application struct {
	JobID       string  `json:"job" validate:"required"`
	Name        string  `json:"name" validate:"required,max=200"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       string  `json:"phone" validate:"max=40"`
	CoverLetter string  `json:"coverLetter" validate:"max=5000"`
	Resume      *Resume `json:"-"`
}

// Request converts the application for the backend.
func (a Application) Request() api.JobApplication {
	req := api.JobApplication{
		JobID:       a.JobID,
		Name:        strings.TrimSpace(a.Name),
		Email:       strings.TrimSpace(a.Email),
		Phone:       strings.TrimSpace(a.Phone),
		CoverLetter: strings.TrimSpace(a.CoverLetter),
	}
	if a.Resume != nil {
		req.Resume = &api.File{
			Name:        a.Resume.Name,
			ContentType: a.Resume.ContentType,
			Reader:      bytes.NewReader(a.Resume.Data),
		}
	}
	return req
}

// JobData is the data of a job page.
type JobData struct {
	Job    content.JobOpening
	Status common.FormStatus
}
