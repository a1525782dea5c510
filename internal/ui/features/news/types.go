// Package news provides the news and events feed and the article pages.
package news

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/icon"
	"github.com/leapstack-labs/musbsite/internal/listing"
)

// Feed modes.
const (
	ModeGrid     = "grid"
	ModeCalendar = "calendar"
)

// Categories are the type filter chips.
var Categories = []string{
	listing.All,
	string(content.NewsArticle),
	string(content.NewsEvent),
	string(content.NewsPartnership),
	string(content.NewsPublication),
	string(content.NewsEducational),
}

// Section is one row of the grid feed.
type Section struct {
	Type   content.NewsType
	Label  string
	Accent string
	Icon   icon.Kind
}

// Sections lists the feed rows in display order.
var Sections = []Section{
	{content.NewsArticle, "Latest News", "cyan", icon.Newspaper},
	{content.NewsEvent, "Events", "indigo", icon.Activity},
	{content.NewsPartnership, "Partnerships", "purple", icon.Layers},
	{content.NewsPublication, "Publications", "emerald", icon.BookOpen},
	{content.NewsEducational, "Educational Materials", "amber", icon.GraduationCap},
}

// SectionFor returns the row definition of a type.
func SectionFor(t content.NewsType) (Section, bool) {
	return listing.Find(Sections, func(s Section) bool { return s.Type == t })
}

// TypeIcon returns the icon of a news type.
func TypeIcon(t content.NewsType) icon.Kind {
	if s, ok := SectionFor(t); ok {
		return s.Icon
	}
	return icon.Newspaper
}

// FeedSignals are the feed's filter signals.
type FeedSignals struct {
	ViewID string `json:"viewId"`
	Type   string `json:"type"`
	Search string `json:"search"`
	Mode   string `json:"mode"`
}

// Unfiltered reports whether no type or search narrows the feed.
func (s FeedSignals) Unfiltered() bool {
	return (s.Type == "" || s.Type == listing.All) && strings.TrimSpace(s.Search) == ""
}

// Calendar reports whether the events list is shown.
func (s FeedSignals) Calendar() bool { return s.Mode == ModeCalendar }

// Row is a section with its items.
type Row struct {
	Section
	Items []content.NewsItem
}

// Count labels the row size.
func (r Row) Count() string {
	if len(r.Items) == 1 {
		return "1 item"
	}
	return strconv.Itoa(len(r.Items)) + " items"
}

// Event is a news item of type Event laid out for the calendar.
type Event struct {
	content.NewsItem
}

// Month is the first word of the date, "Oct" for "Oct 12, 2025".
func (e Event) Month() string {
	parts := strings.Fields(e.Date)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

// Day is the second word of the date without its comma.
func (e Event) Day() string {
	parts := strings.Fields(e.Date)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSuffix(parts[1], ",")
}

// Register is the registration link, or "#" when there is none.
func (e Event) Register() string {
	if e.RegistrationLink == "" {
		return "#"
	}
	return e.RegistrationLink
}

// FeedView is the data of the news-feed fragment.
type FeedView struct {
	Signals    FeedSignals
	Categories []string
	Featured   *content.NewsItem
	Rows       []Row
	Events     []Event
}

// Scoped returns the data-signals value of the feed.
func (v FeedView) Scoped() map[string]FeedSignals {
	return map[string]FeedSignals{viewName: v.Signals}
}

// NoResults reports whether a filter left nothing to show.
func (v FeedView) NoResults() bool {
	return len(v.Rows) == 0 && !v.Signals.Unfiltered()
}

// Empty reports whether the unfiltered feed has nothing to show.
func (v FeedView) Empty() bool {
	return v.Featured == nil && len(v.Rows) == 0 && v.Signals.Unfiltered()
}

// Filter applies the type and search filters.
func Filter(items []content.NewsItem, s FeedSignals) []content.NewsItem {
	return listing.Filter(items,
		listing.Equals(s.Type, func(n content.NewsItem) string { return string(n.Type) }),
		listing.Search(s.Search,
			func(n content.NewsItem) string { return n.Title },
			func(n content.NewsItem) string { return n.Excerpt },
		),
	)
}

// BuildFeed lays out the feed for the current filters. The featured item
// leads the unfiltered feed and is left out of its rows. Rows follow the
// section order and types without a section are not shown.
func BuildFeed(items []content.NewsItem, s FeedSignals) FeedView {
	view := FeedView{Signals: s, Categories: Categories}
	matched := Filter(items, s)

	featured, ok := listing.Find(items, func(n content.NewsItem) bool { return n.IsFeatured })
	grouped := matched
	if ok && s.Unfiltered() {
		view.Featured = &featured
		grouped = listing.Filter(matched, func(n content.NewsItem) bool { return n.ID != featured.ID })
	}

	for _, b := range listing.Group(grouped, func(n content.NewsItem) content.NewsType { return n.Type }, content.NewsTypes...) {
		sec, ok := SectionFor(b.Key)
		if !ok {
			continue
		}
		view.Rows = append(view.Rows, Row{Section: sec, Items: b.Items})
	}

	for _, n := range matched {
		if n.IsEvent() {
			view.Events = append(view.Events, Event{n})
		}
	}
	return view
}

// DetailData is the data of an article page.
type DetailData struct {
	Item  content.NewsItem
	Event Event
	Icon  icon.Kind
}
