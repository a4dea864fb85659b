package render

import "resume-builder/internal/model"

func renderExecutive(r model.ResumeData) *Document {
	info := r.PersonalInfo
	doc := newDocument(model.TemplateExecutive)
	doc.Header = Header{
		Name:         info.FullName,
		Title:        info.JobTitle,
		Align:        AlignCenter,
		ContactStyle: ContactsGrid,
		Contacts:     contacts(info, true, ContactEmail, ContactPhone, ContactLocation, ContactLinkedIn),
	}

	if r.Summary != "" {
		doc.Sections = append(doc.Sections, Section{
			Kind:      SectionSummary,
			Title:     "EXECUTIVE SUMMARY",
			Italic:    true,
			Justified: true,
			Text:      r.Summary,
		})
	}

	if len(r.Experience) > 0 {
		s := Section{Kind: SectionExperience, Title: "PROFESSIONAL EXPERIENCE", BulletStyle: BulletSquare}
		for _, exp := range r.Experience {
			s.Entries = append(s.Entries, Entry{
				Heading:    exp.JobTitle,
				Subheading: exp.CompanyName,
				Lines:      []string{exp.Location},
				Aside:      FormatDateRange(exp.StartDate, exp.EndDate, exp.Current),
				Bullets:    visibleAchievements(exp.Achievements),
			})
		}
		doc.Sections = append(doc.Sections, s)
	}

	// Education and skills sit side by side.
	var pair []Section
	if len(r.Education) > 0 {
		s := Section{Kind: SectionEducation, Title: "EDUCATION"}
		for _, edu := range r.Education {
			s.Entries = append(s.Entries, Entry{
				Heading:    edu.Degree,
				Subheading: edu.School,
				Lines:      []string{edu.Location, edu.GraduationYear},
			})
		}
		pair = append(pair, s)
	}
	if len(r.Skills) > 0 {
		pair = append(pair, Section{
			Kind:      SectionSkills,
			Title:     "CORE COMPETENCIES",
			Columns:   1,
			ItemStyle: ItemsList,
			Items:     skillNames(r.Skills),
		})
	}
	if len(pair) > 0 {
		doc.Sections = append(doc.Sections, Section{Kind: SectionGroup, Columns: 2, Children: pair})
	}

	return doc
}
