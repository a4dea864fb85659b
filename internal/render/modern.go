package render

import (
	"strings"

	"resume-builder/internal/model"
)

// modernProjectLimit caps the projects shown by the modern layout. Extra
// projects are dropped, not paginated.
const modernProjectLimit = 3

func renderModern(r model.ResumeData) *Document {
	info := r.PersonalInfo
	doc := newDocument(model.TemplateModern)
	doc.Header = Header{
		Name:         info.FullName,
		Title:        info.JobTitle,
		Align:        AlignLeft,
		ContactStyle: ContactsIcons,
		Contacts: contacts(info, true,
			ContactEmail, ContactPhone, ContactLocation, ContactLinkedIn, ContactPortfolio),
	}

	if r.Summary != "" {
		doc.Sections = append(doc.Sections, Section{
			Kind:  SectionSummary,
			Title: "Professional Summary",
			Text:  r.Summary,
		})
	}

	if len(r.Experience) > 0 {
		s := Section{Kind: SectionExperience, Title: "Professional Experience", BulletStyle: BulletDot}
		for _, exp := range r.Experience {
			s.Entries = append(s.Entries, Entry{
				Heading:    exp.JobTitle,
				Subheading: exp.CompanyName + " • " + exp.Location,
				Aside:      FormatDateRange(exp.StartDate, exp.EndDate, exp.Current),
				Bullets:    visibleAchievements(exp.Achievements),
			})
		}
		doc.Sections = append(doc.Sections, s)
	}

	if len(r.Education) > 0 {
		s := Section{Kind: SectionEducation, Title: "Education"}
		for _, edu := range r.Education {
			e := Entry{
				Heading:    edu.Degree,
				Subheading: edu.School + " • " + edu.Location,
				Aside:      edu.GraduationYear,
			}
			if edu.GPA != "" {
				e.Lines = []string{"GPA: " + edu.GPA}
			}
			s.Entries = append(s.Entries, e)
		}
		doc.Sections = append(doc.Sections, s)
	}

	if len(r.Skills) > 0 {
		doc.Sections = append(doc.Sections, Section{
			Kind:      SectionSkills,
			Title:     "Core Skills",
			Columns:   3,
			ItemStyle: ItemsList,
			Items:     skillNames(r.Skills),
		})
	}

	var extras []Section
	if len(r.Certifications) > 0 {
		s := Section{Kind: SectionCertifications, Title: "Certifications"}
		for _, c := range r.Certifications {
			s.Entries = append(s.Entries, Entry{
				Heading: c.Name,
				Lines:   []string{c.Issuer},
				Aside:   FormatDate(c.Date),
			})
		}
		extras = append(extras, s)
	}
	if len(r.Languages) > 0 {
		s := Section{Kind: SectionLanguages, Title: "Languages"}
		for _, l := range r.Languages {
			s.Entries = append(s.Entries, Entry{Heading: l.Name, Aside: l.Proficiency})
		}
		extras = append(extras, s)
	}
	if len(r.Projects) > 0 {
		s := Section{Kind: SectionProjects, Title: "Projects"}
		projects := r.Projects
		if len(projects) > modernProjectLimit {
			projects = projects[:modernProjectLimit]
		}
		for _, p := range projects {
			lines := []string{p.Description}
			if len(p.Technologies) > 0 {
				lines = append(lines, strings.Join(p.Technologies, ", "))
			}
			s.Entries = append(s.Entries, Entry{Heading: p.Name, Lines: lines})
		}
		extras = append(extras, s)
	}
	if len(extras) > 0 {
		doc.Sections = append(doc.Sections, Section{Kind: SectionGroup, Columns: 3, Children: extras})
	}

	return doc
}
