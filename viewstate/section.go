// Package viewstate holds the view-state machines behind the portfolio page:
// the tagline rotator, the active-section tracker, the menu and tooltip
// toggles, and the contact form. Nothing here touches the DOM directly;
// the rendering host is reached through the Surface and Host interfaces.
package viewstate

import "strings"

// SectionID names one of the four page sections.
type SectionID string

const (
	Profile      SectionID = "profile"
	Technologies SectionID = "technologies"
	Experience   SectionID = "experience"
	Contact      SectionID = "contact"
)

// Sections lists the page sections in document order.
var Sections = []SectionID{Profile, Technologies, Experience, Contact}

// Label is the text shown in the navigation bar.
func (s SectionID) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// ParseSection accepts a section id in any letter case.
func ParseSection(raw string) (SectionID, bool) {
	id := SectionID(strings.ToLower(strings.TrimSpace(raw)))
	for _, s := range Sections {
		if s == id {
			return s, true
		}
	}
	return "", false
}
