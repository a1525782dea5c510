package api

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/leapstack-labs/musbsite/internal/content"
)

// Ack is the JSON object returned by mutation endpoints.
type Ack struct {
	ID      content.ID `json:"id"`
	Message string     `json:"message"`
	Detail  string     `json:"detail"`
}

// ---- Page settings (singletons) ----

func (c *Client) settings(ctx context.Context, endpoint, path string) (content.Settings, error) {
	var raw json.RawMessage
	if err := c.getList(ctx, endpoint, path, nil, &raw); err != nil {
		return content.Settings{}, err
	}
	return content.NewSettings(raw), nil
}

// HomeSettings fetches the home page settings.
func (c *Client) HomeSettings(ctx context.Context) (content.Settings, error) {
	return c.settings(ctx, "home_settings", "/api/home/settings/")
}

// SupportSettings fetches the "for businesses" page settings.
func (c *Client) SupportSettings(ctx context.Context) (content.Settings, error) {
	return c.settings(ctx, "support_settings", "/api/support/settings/")
}

// AboutSettings fetches the about / why-choose-us settings.
func (c *Client) AboutSettings(ctx context.Context) (content.Settings, error) {
	return c.settings(ctx, "about_settings", "/api/about/settings/")
}

// InnovationSettings fetches the innovations page settings.
func (c *Client) InnovationSettings(ctx context.Context) (content.Settings, error) {
	return c.settings(ctx, "innovation_settings", "/api/innovation/settings/")
}

// ---- Contact ----

// ContactSettings fetches the contact page settings.
func (c *Client) ContactSettings(ctx context.Context) (content.Settings, error) {
	return c.settings(ctx, "contact_settings", "/api/contact/settings/")
}

// ContactFormConfig fetches the contact form configuration.
func (c *Client) ContactFormConfig(ctx context.Context) (content.Settings, error) {
	return c.settings(ctx, "contact_form_config", "/api/contact/form-config/")
}

// InquiryTypes fetches the selectable contact topics.
func (c *Client) InquiryTypes(ctx context.Context) ([]content.InquiryType, error) {
	var out []content.InquiryType
	err := c.getList(ctx, "inquiry_types", "/api/contact/inquiry-types/", nil, &out)
	return out, err
}

// ContactSubmission is the body of a contact form submission.
type ContactSubmission struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Company         string `json:"company,omitempty"`
	Subject         string `json:"subject,omitempty"`
	Message         string `json:"message"`
	InquiryTypeSlug string `json:"inquiry_type_slug,omitempty"`
}

// SubmitContact posts a contact form submission.
func (c *Client) SubmitContact(ctx context.Context, s ContactSubmission) (Ack, error) {
	var ack Ack
	err := c.post(ctx, "contact_submit", "/api/contact/submit/", s, &ack)
	return ack, err
}

// ---- Content lists ----

// Capabilities fetches the research capabilities.
func (c *Client) Capabilities(ctx context.Context) ([]content.Capability, error) {
	var out []content.Capability
	err := c.getList(ctx, "capabilities", "/api/capabilities/", nil, &out)
	return out, err
}

// Facilities fetches the facility list.
func (c *Client) Facilities(ctx context.Context) ([]content.Facility, error) {
	var out []content.Facility
	err := c.getList(ctx, "facilities", "/api/facilities/", nil, &out)
	return out, err
}

// Partners fetches partners, optionally restricted to one category.
func (c *Client) Partners(ctx context.Context, category string) ([]content.Partner, error) {
	var out []content.Partner
	err := c.getList(ctx, "partners", "/api/partners/", map[string]string{"category": category}, &out)
	return out, err
}

// Certifications fetches the certification badges.
func (c *Client) Certifications(ctx context.Context) ([]content.Certification, error) {
	var out []content.Certification
	err := c.getList(ctx, "certifications", "/api/certifications/", nil, &out)
	return out, err
}

// FacilitiesPage fetches the aggregate facilities page payload.
func (c *Client) FacilitiesPage(ctx context.Context) (content.FacilitiesPage, error) {
	var out content.FacilitiesPage
	err := c.getList(ctx, "facilities_page", "/api/facilities-page/", nil, &out)
	return out, err
}

// ---- News & events ----

// NewsQuery narrows the news list server-side.
type NewsQuery struct {
	Type   string
	Search string
}

// News fetches news items.
func (c *Client) News(ctx context.Context, q NewsQuery) ([]content.NewsItem, error) {
	var out []content.NewsItem
	err := c.getList(ctx, "news", "/api/news/", map[string]string{"type": q.Type, "search": q.Search}, &out)
	return out, err
}

// NewsDetail fetches one news item.
func (c *Client) NewsDetail(ctx context.Context, id string) (content.NewsItem, error) {
	var out content.NewsItem
	err := c.getList(ctx, "news_detail", "/api/news/"+url.PathEscape(id)+"/", nil, &out)
	return out, err
}

// ---- Careers ----

// CareerCategories fetches the career categories.
func (c *Client) CareerCategories(ctx context.Context) ([]content.CareerCategory, error) {
	var out []content.CareerCategory
	err := c.getList(ctx, "career_categories", "/api/careers/categories/", nil, &out)
	return out, err
}

// JobQuery narrows the job list server-side.
type JobQuery struct {
	Department string
	Type       string
	Search     string
}

// JobOpenings fetches job openings.
func (c *Client) JobOpenings(ctx context.Context, q JobQuery) ([]content.JobOpening, error) {
	var out []content.JobOpening
	err := c.getList(ctx, "jobs", "/api/careers/jobs/", map[string]string{
		"department": q.Department,
		"type":       q.Type,
		"search":     q.Search,
	}, &out)
	return out, err
}

// JobDetail fetches one job opening.
func (c *Client) JobDetail(ctx context.Context, id string) (content.JobOpening, error) {
	var out content.JobOpening
	err := c.getList(ctx, "job_detail", "/api/careers/jobs/"+url.PathEscape(id)+"/", nil, &out)
	return out, err
}

// JobApplication is a job application with an optional resume upload.
type JobApplication struct {
	JobID       string
	Name        string
	Email       string
	Phone       string
	CoverLetter string
	Resume      *File
}

// SubmitJobApplication posts a job application as multipart/form-data.
func (c *Client) SubmitJobApplication(ctx context.Context, a JobApplication) (Ack, error) {
	body := &Multipart{Fields: map[string]string{
		"job":          a.JobID,
		"name":         a.Name,
		"email":        a.Email,
		"phone":        a.Phone,
		"cover_letter": a.CoverLetter,
	}}
	if a.Resume != nil {
		resume := *a.Resume
		if resume.Field == "" {
			resume.Field = "resume"
		}
		body.Files = append(body.Files, resume)
	}

	var ack Ack
	err := c.post(ctx, "job_apply", "/api/careers/apply/", body, &ack)
	return ack, err
}

// ---- Studies ----

// StudyQuery narrows the study list server-side.
type StudyQuery struct {
	Condition string
	Status    string
}

// Studies fetches clinical studies.
func (c *Client) Studies(ctx context.Context, q StudyQuery) ([]content.Study, error) {
	var out []content.Study
	err := c.getList(ctx, "studies", "/api/studies/", map[string]string{
		"condition": q.Condition,
		"status":    q.Status,
	}, &out)
	return out, err
}

// ---- Team ----

// TeamMembers fetches the leadership team.
func (c *Client) TeamMembers(ctx context.Context) ([]content.TeamMember, error) {
	var out []content.TeamMember
	err := c.getList(ctx, "team_members", "/api/team/members/", nil, &out)
	return out, err
}

// Advisors fetches the advisory board.
func (c *Client) Advisors(ctx context.Context) ([]content.Advisor, error) {
	var out []content.Advisor
	err := c.getList(ctx, "team_advisors", "/api/team/advisors/", nil, &out)
	return out, err
}

// Collaborators fetches the clinical collaborators.
func (c *Client) Collaborators(ctx context.Context) ([]content.Collaborator, error) {
	var out []content.Collaborator
	err := c.getList(ctx, "team_collaborators", "/api/team/collaborators/", nil, &out)
	return out, err
}

// StaffMembers fetches operational staff.
func (c *Client) StaffMembers(ctx context.Context) ([]content.StaffMember, error) {
	var out []content.StaffMember
	err := c.getList(ctx, "team_staff", "/api/team/staff/", nil, &out)
	return out, err
}

// ---- Innovation ----

// Technologies fetches the innovation platforms.
func (c *Client) Technologies(ctx context.Context) ([]content.Technology, error) {
	var out []content.Technology
	err := c.getList(ctx, "technologies", "/api/innovation/technologies/", nil, &out)
	return out, err
}

// TechnologyDetail fetches one innovation platform.
func (c *Client) TechnologyDetail(ctx context.Context, id string) (content.Technology, error) {
	var out content.Technology
	err := c.getList(ctx, "technology_detail", "/api/innovation/technologies/"+url.PathEscape(id)+"/", nil, &out)
	return out, err
}

// SponsorInquiry is the body of a sponsor inquiry.
type SponsorInquiry struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Company     string  `json:"company"`
	InquiryType string  `json:"inquiry_type"`
	Message     string  `json:"message"`
	Technology  *string `json:"technology"`
}

// SubmitSponsorInquiry posts a sponsor inquiry.
func (c *Client) SubmitSponsorInquiry(ctx context.Context, in SponsorInquiry) (Ack, error) {
	var ack Ack
	err := c.post(ctx, "sponsor_inquiry", "/api/innovation/inquiry/", in, &ack)
	return ack, err
}

// ---- Newsletter ----

// SubscribeNewsletter subscribes an email address to the newsletter.
func (c *Client) SubscribeNewsletter(ctx context.Context, email string) (Ack, error) {
	var ack Ack
	err := c.post(ctx, "newsletter_subscribe", "/api/newsletter/subscribe/", map[string]string{"email": email}, &ack)
	return ack, err
}
