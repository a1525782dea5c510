// Package team provides the team page: leadership, advisors, clinical
// collaborators, sponsors and a staff directory filtered by department.
package team

import (
	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/listing"
)

// StaffSignals are the staff directory's filter signals.
type StaffSignals struct {
	ViewID     string `json:"viewId"`
	Department string `json:"department"`
}

// StaffView is the data of the team-staff fragment.
type StaffView struct {
	Signals     StaffSignals
	Departments []string
	View        listing.View[content.StaffMember]
}

// Scoped returns the data-signals value of the directory.
func (v StaffView) Scoped() map[string]StaffSignals {
	return map[string]StaffSignals{viewName: v.Signals}
}

// PageData is the data of the team page.
type PageData struct {
	Members       []content.TeamMember
	Advisors      []content.Advisor
	Collaborators []content.Collaborator
	Sponsors      []content.Partner
	Staff         StaffView
}

func department(s content.StaffMember) string { return s.Department }

// Departments returns the department choices present in staff.
func Departments(staff []content.StaffMember) []string {
	return listing.Distinct(staff, department, listing.All)
}

// FilterStaff applies the department filter.
func FilterStaff(staff []content.StaffMember, s StaffSignals) StaffView {
	return StaffView{
		Signals:     s,
		Departments: Departments(staff),
		View:        listing.Slice(staff, 0, listing.Equals(s.Department, department)),
	}
}
