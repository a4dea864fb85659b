// Package render projects a resume onto one of the fixed template layouts.
//
// Render produces a Document: a single rooted tree describing the header and
// the ordered section blocks of the page. RenderHTML turns that tree into the
// standalone HTML page that is shown as a preview and captured as a PDF.
package render

import "resume-builder/internal/model"

// RootID is the id of the element wrapping the whole resume page. PDF capture
// targets this node.
const RootID = "resume-content"

// Align is the horizontal alignment of the header.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

// ContactStyle is how the contact row of the header is laid out.
type ContactStyle string

const (
	ContactsIcons   ContactStyle = "icons"
	ContactsStacked ContactStyle = "stacked"
	ContactsPills   ContactStyle = "pills"
	ContactsGrid    ContactStyle = "grid"
	ContactsInline  ContactStyle = "inline"
)

// ContactKind names the personal field a contact shows.
type ContactKind string

const (
	ContactEmail     ContactKind = "email"
	ContactPhone     ContactKind = "phone"
	ContactLocation  ContactKind = "location"
	ContactLinkedIn  ContactKind = "linkedin"
	ContactPortfolio ContactKind = "portfolio"
)

// SectionKind identifies what a section holds.
type SectionKind string

const (
	SectionSummary        SectionKind = "summary"
	SectionExperience     SectionKind = "experience"
	SectionEducation      SectionKind = "education"
	SectionSkills         SectionKind = "skills"
	SectionCertifications SectionKind = "certifications"
	SectionLanguages      SectionKind = "languages"
	SectionProjects       SectionKind = "projects"
	// SectionGroup lays its Children out side by side in Columns columns.
	SectionGroup SectionKind = "group"
)

// BulletStyle is the marker drawn before each achievement.
type BulletStyle string

const (
	BulletDot       BulletStyle = "dot"
	BulletDisc      BulletStyle = "disc"
	BulletArrow     BulletStyle = "arrow"
	BulletSquare    BulletStyle = "square"
	BulletParagraph BulletStyle = "paragraph"
)

// ItemStyle is how a skills list is laid out.
type ItemStyle string

const (
	ItemsList   ItemStyle = "list"
	ItemsInline ItemStyle = "inline"
	ItemsPills  ItemStyle = "pills"
)

// Document is the rendered page: a header followed by sections in display
// order.
type Document struct {
	// Template is the layout actually used, after the default arm is applied.
	Template model.Template `json:"template"`
	RootID   string         `json:"rootId"`
	Header   Header         `json:"header"`
	Sections []Section      `json:"sections"`
}

// Header carries the name, the job title and the contact row.
type Header struct {
	Name         string       `json:"name"`
	Title        string       `json:"title"`
	Align        Align        `json:"align"`
	ContactStyle ContactStyle `json:"contactStyle"`
	Contacts     []Contact    `json:"contacts"`
}

// Contact is one entry of the header's contact row.
type Contact struct {
	Kind  ContactKind `json:"kind"`
	Value string      `json:"value"`
	Icon  string      `json:"icon,omitempty"`
}

// Section is one block of the page. Which content fields are set depends on
// Kind: Text for summaries and joined skills, Items for skill lists, Entries
// for dated records, Children for groups.
type Section struct {
	Kind        SectionKind `json:"kind"`
	Title       string      `json:"title,omitempty"`
	Marker      string      `json:"marker,omitempty"`
	Columns     int         `json:"columns,omitempty"`
	Italic      bool        `json:"italic,omitempty"`
	Justified   bool        `json:"justified,omitempty"`
	BulletStyle BulletStyle `json:"bulletStyle,omitempty"`
	ItemStyle   ItemStyle   `json:"itemStyle,omitempty"`
	Text        string      `json:"text,omitempty"`
	Items       []string    `json:"items,omitempty"`
	Entries     []Entry     `json:"entries,omitempty"`
	Children    []Section   `json:"children,omitempty"`
}

// Entry is a single record inside a section: a role, a degree, a
// certification, a language or a project.
type Entry struct {
	Heading    string   `json:"heading"`
	Subheading string   `json:"subheading,omitempty"`
	Lines      []string `json:"lines,omitempty"`
	// Aside is the right-hand annotation: a date range, a year or a
	// proficiency.
	Aside   string   `json:"aside,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
}

// Section returns the first top-level or grouped section of the given kind.
func (d *Document) Section(kind SectionKind) (Section, bool) {
	for _, s := range d.Sections {
		if s.Kind == kind {
			return s, true
		}
		for _, c := range s.Children {
			if c.Kind == kind {
				return c, true
			}
		}
	}
	return Section{}, false
}
