package render

import "resume-builder/internal/model"

// renderClassic omits certifications, languages and projects even when they
// are populated.
func renderClassic(r model.ResumeData) *Document {
	info := r.PersonalInfo
	doc := newDocument(model.TemplateClassic)
	doc.Header = Header{
		Name:         info.FullName,
		Title:        info.JobTitle,
		Align:        AlignCenter,
		ContactStyle: ContactsStacked,
		Contacts:     contacts(info, false, ContactEmail, ContactPhone, ContactLocation, ContactLinkedIn),
	}

	if r.Summary != "" {
		doc.Sections = append(doc.Sections, Section{
			Kind:  SectionSummary,
			Title: "PROFESSIONAL SUMMARY",
			Text:  r.Summary,
		})
	}

	if len(r.Experience) > 0 {
		s := Section{Kind: SectionExperience, Title: "WORK EXPERIENCE", BulletStyle: BulletDisc}
		for _, exp := range r.Experience {
			s.Entries = append(s.Entries, Entry{
				Heading:    exp.JobTitle,
				Subheading: exp.CompanyName + ", " + exp.Location,
				Aside:      FormatDateRange(exp.StartDate, exp.EndDate, exp.Current),
				Bullets:    visibleAchievements(exp.Achievements),
			})
		}
		doc.Sections = append(doc.Sections, s)
	}

	if len(r.Education) > 0 {
		s := Section{Kind: SectionEducation, Title: "EDUCATION"}
		for _, edu := range r.Education {
			s.Entries = append(s.Entries, Entry{
				Heading:    edu.Degree,
				Subheading: edu.School + ", " + edu.Location,
				Aside:      edu.GraduationYear,
			})
		}
		doc.Sections = append(doc.Sections, s)
	}

	if len(r.Skills) > 0 {
		// Every name but the last carries its own separator.
		items := skillNames(r.Skills)
		for i := range items[:len(items)-1] {
			items[i] += ","
		}
		doc.Sections = append(doc.Sections, Section{
			Kind:      SectionSkills,
			Title:     "SKILLS",
			ItemStyle: ItemsInline,
			Items:     items,
		})
	}

	return doc
}
