// Package content defines the records the site fetches from the backend API.
//
// JSON keys follow the backend's snake_case serializers. Records are
// immutable from the site's point of view: the backend is the source of truth.
package content

// Study is a clinical study listed on the trials pages.
type Study struct {
	ID          ID       `json:"id"`
	Title       string   `json:"title"`
	Condition   string   `json:"condition"`
	Status      string   `json:"status"`
	Type        string   `json:"type"` // Virtual, On-site, Hybrid
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Benefit     string   `json:"benefit"`
	Location    string   `json:"location"`
	Tags        []string `json:"tags"`
}

// StatusRecruiting marks a study that accepts participants.
const StatusRecruiting = "Recruiting"

// Recruiting reports whether the study accepts participants.
func (s Study) Recruiting() bool { return s.Status == StatusRecruiting }

// JobOpening is a vacancy on the careers page.
type JobOpening struct {
	ID              ID       `json:"id"`
	Title           string   `json:"title"`
	Department      string   `json:"department"`
	Location        string   `json:"location"`
	Type            string   `json:"type"`             // Full-time, Part-time, Contract, Internship
	ExperienceLevel string   `json:"experience_level"` // Entry-level ... Executive
	Summary         string   `json:"summary"`
	Description     string   `json:"description"`
	Requirements    []string `json:"requirements"`
	ApplyURL        string   `json:"apply_url"`
	Deadline        string   `json:"deadline"`
	IsFeatured      bool     `json:"is_featured"`
	Status          string   `json:"status"` // Draft, Live, Closed
}

// CareerCategory groups job openings by discipline.
type CareerCategory struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// NewsType classifies a news item.
type NewsType string

// News types in the order the news page renders its sections.
const (
	NewsArticle     NewsType = "News"
	NewsEvent       NewsType = "Event"
	NewsPartnership NewsType = "Partnership"
	NewsPublication NewsType = "Publication"
	NewsEducational NewsType = "Educational Material"
)

// NewsTypes lists every news type in section order.
var NewsTypes = []NewsType{NewsArticle, NewsEvent, NewsPartnership, NewsPublication, NewsEducational}

// NewsItem is a news article, event, publication or similar post.
type NewsItem struct {
	ID               ID       `json:"id"`
	Title            string   `json:"title"`
	Type             NewsType `json:"type"`
	IsFeatured       bool     `json:"is_featured"`
	PublishStatus    string   `json:"publish_status"`
	Excerpt          string   `json:"excerpt"`
	Content          string   `json:"content"` // HTML from the CMS
	ImageURL         string   `json:"image_url"`
	Date             string   `json:"date"`
	StartTime        string   `json:"start_time"`
	EndTime          string   `json:"end_time"`
	LocationType     string   `json:"location_type"` // On-site, Virtual, Hybrid
	Location         string   `json:"location"`
	RegistrationLink string   `json:"registration_link"`
	Tags             []string `json:"tags"`
}

// IsEvent reports whether the item is a scheduled event.
func (n NewsItem) IsEvent() bool { return n.Type == NewsEvent }

// Capability is a research capability card.
type Capability struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Facility is a physical site or lab.
type Facility struct {
	ID          ID       `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// Partner is an academic, industry or community partner.
type Partner struct {
	ID         ID     `json:"id"`
	Name       string `json:"name"`
	Logo       string `json:"logo"`
	LogoURL    string `json:"logo_url"`
	Category   string `json:"category"` // Academic, Industry, CRO, Community
	WebsiteURL string `json:"website_url"`
}

// LogoSrc returns the first non-empty logo reference.
func (p Partner) LogoSrc() string {
	if p.Logo != "" {
		return p.Logo
	}
	return p.LogoURL
}

// Certification is an accreditation badge.
type Certification struct {
	ID       ID     `json:"id"`
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	ImageURL string `json:"image_url"`
	Image    string `json:"image"`
}

// ImageSrc returns the first non-empty image reference.
func (c Certification) ImageSrc() string {
	if c.ImageURL != "" {
		return c.ImageURL
	}
	return c.Image
}

// TeamMember is a leadership team member.
type TeamMember struct {
	ID               ID       `json:"id"`
	Name             string   `json:"name"`
	Role             string   `json:"role"`
	Bio              string   `json:"bio"`
	ImageURL         string   `json:"image_url"`
	ExpertiseTags    []string `json:"expertise_tags"`
	LinkedinURL      string   `json:"linkedin_url"`
	ExpandedBio      string   `json:"expanded_bio"`
	AreasOfExpertise []string `json:"areas_of_expertise"`
	Affiliations     []string `json:"affiliations"`
	Publications     []string `json:"publications"`
}

// Advisor is a scientific or clinical advisor.
type Advisor struct {
	ID            ID     `json:"id"`
	Name          string `json:"name"`
	AdvisoryRole  string `json:"advisory_role"`
	ExpertiseArea string `json:"expertise_area"`
	Organization  string `json:"organization"`
	Bio           string `json:"bio"`
	ImageURL      string `json:"image_url"`
	LinkedinURL   string `json:"linkedin_url"`
}

// Collaborator is a clinical collaborator organization.
type Collaborator struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	LogoURL   string `json:"logo_url"`
	Specialty string `json:"specialty"`
	Location  string `json:"location"`
}

// StaffMember is an operational staff member.
type StaffMember struct {
	ID              ID     `json:"id"`
	Name            string `json:"name"`
	Role            string `json:"role"`
	Department      string `json:"department"`
	RoleDescription string `json:"role_description"`
	ImageURL        string `json:"image_url"`
}

// Technology is an innovation platform offered to sponsors.
type Technology struct {
	ID          ID       `json:"id"`
	Name        string   `json:"name"`
	Tagline     string   `json:"tagline"`
	Description string   `json:"description"`
	FocusAreas  []string `json:"focus_areas"`
	Features    []string `json:"features"`
	Icon        string   `json:"icon"`
	Gradient    string   `json:"gradient"`
}

// InquiryType is a selectable topic on the contact form.
type InquiryType struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

// Pillar is a service pillar on the facilities page.
type Pillar struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// FacilityModule is a capability block rendered under a pillar.
type FacilityModule struct {
	ID             ID       `json:"id"`
	Pillar         string   `json:"pillar"` // Research, Lab, Biorepository
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	OneLineSummary string   `json:"one_line_summary"`
	MicroBullets   []string `json:"micro_bullets"`
	BadgeLabel     string   `json:"badge_label"`
	Image          string   `json:"image"`
	Layout         string   `json:"layout"`
}

// Badge is a trust badge or success signal.
type Badge struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Facility pillars in page order.
const (
	PillarResearch      = "Research"
	PillarLab           = "Lab"
	PillarBiorepository = "Biorepository"
)
