package render

// SiteName is appended to every page title.
const SiteName = "MusB Research"

// Page is the data every full page render receives.
type Page struct {
	Title       string
	Description string
	Path        string // request path, for nav highlighting
	Dev         bool   // enables the hot reload stream
	Subscribed  bool   // visitor already joined the newsletter this session
	Data        any
}

// FullTitle returns the document title.
func (p Page) FullTitle() string {
	if p.Title == "" {
		return SiteName
	}
	return p.Title + " | " + SiteName
}

// NavItem is one entry of the site navigation.
type NavItem struct {
	Label    string
	Href     string
	Children []NavItem
}

// Nav is the primary navigation.
var Nav = []NavItem{
	{Label: "For Businesses", Href: "/support"},
	{Label: "For Patients", Href: "/trials"},
	{Label: "About Us", Href: "/about", Children: []NavItem{
		{Label: "Why Choose Us", Href: "/why-choose-us"},
		{Label: "Facilities", Href: "/facilities"},
		{Label: "Our Team", Href: "/team"},
		{Label: "Clinical Trials", Href: "/trials"},
	}},
	{Label: "Capabilities", Href: "/capabilities"},
	{Label: "Innovation", Href: "/innovations"},
	{Label: "News", Href: "/news"},
	{Label: "Careers", Href: "/careers"},
	{Label: "Contact", Href: "/contact"},
}
