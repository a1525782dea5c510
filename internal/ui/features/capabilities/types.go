// Package capabilities provides the searchable capabilities page.
package capabilities

import (
	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/icon"
	"github.com/leapstack-labs/musbsite/internal/listing"
)

// Capability is a capability with its resolved icon.
type Capability struct {
	content.Capability
	Kind icon.Kind
}

// Wrap resolves each capability's icon. Unknown icons fall back to
// Activity.
func Wrap(items []content.Capability) []Capability {
	out := make([]Capability, 0, len(items))
	for _, c := range items {
		out = append(out, Capability{Capability: c, Kind: icon.Parse(c.Icon, icon.Activity)})
	}
	return out
}

// Signals are the page's search signals.
type Signals struct {
	ViewID string `json:"viewId"`
	Search string `json:"search"`
}

// Search matches the query over title and description.
func Search(items []Capability, s Signals) listing.View[Capability] {
	return listing.Slice(items, 0, listing.Search(s.Search,
		func(c Capability) string { return c.Title },
		func(c Capability) string { return c.Description },
	))
}

// ResultsView is the data of the capabilities-grid fragment.
type ResultsView struct {
	Signals Signals
	View    listing.View[Capability]
}

// Scoped returns the data-signals value of the page.
func (v ResultsView) Scoped() map[string]Signals {
	return map[string]Signals{viewName: v.Signals}
}
