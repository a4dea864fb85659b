package render

import (
	"strings"

	"resume-builder/internal/model"
)

// renderMinimal is also the layout for unrecognised template tags.
func renderMinimal(r model.ResumeData) *Document {
	info := r.PersonalInfo
	doc := newDocument(model.TemplateMinimal)
	doc.Header = Header{
		Name:         info.FullName,
		Title:        info.JobTitle,
		Align:        AlignLeft,
		ContactStyle: ContactsInline,
		Contacts:     contacts(info, false, ContactEmail, ContactPhone, ContactLocation),
	}

	if r.Summary != "" {
		doc.Sections = append(doc.Sections, Section{Kind: SectionSummary, Text: r.Summary})
	}

	if len(r.Experience) > 0 {
		s := Section{Kind: SectionExperience, Title: "Experience", BulletStyle: BulletParagraph}
		for _, exp := range r.Experience {
			s.Entries = append(s.Entries, Entry{
				Heading: exp.JobTitle + ", " + exp.CompanyName,
				Aside:   FormatDateRange(exp.StartDate, exp.EndDate, exp.Current),
				Bullets: visibleAchievements(exp.Achievements),
			})
		}
		doc.Sections = append(doc.Sections, s)
	}

	if len(r.Education) > 0 {
		s := Section{Kind: SectionEducation, Title: "Education"}
		for _, edu := range r.Education {
			s.Entries = append(s.Entries, Entry{
				Heading: edu.Degree,
				Aside:   edu.GraduationYear,
				Lines:   []string{edu.School},
			})
		}
		doc.Sections = append(doc.Sections, s)
	}

	if len(r.Skills) > 0 {
		doc.Sections = append(doc.Sections, Section{
			Kind:  SectionSkills,
			Title: "Skills",
			Text:  strings.Join(skillNames(r.Skills), ", "),
		})
	}

	return doc
}
