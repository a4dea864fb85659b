package render

import "resume-builder/internal/model"

func renderCreative(r model.ResumeData) *Document {
	info := r.PersonalInfo
	doc := newDocument(model.TemplateCreative)
	doc.Header = Header{
		Name:         info.FullName,
		Title:        info.JobTitle,
		Align:        AlignLeft,
		ContactStyle: ContactsPills,
		Contacts:     contacts(info, true, ContactEmail, ContactPhone, ContactLocation),
	}

	if r.Summary != "" {
		doc.Sections = append(doc.Sections, Section{
			Kind:   SectionSummary,
			Title:  "About Me",
			Marker: "✨",
			Text:   r.Summary,
		})
	}

	if len(r.Experience) > 0 {
		s := Section{Kind: SectionExperience, Title: "Experience", Marker: "🚀", BulletStyle: BulletArrow}
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

	// Skills come before education in this layout.
	if len(r.Skills) > 0 {
		doc.Sections = append(doc.Sections, Section{
			Kind:      SectionSkills,
			Title:     "Skills & Expertise",
			Marker:    "⚡",
			ItemStyle: ItemsPills,
			Items:     skillNames(r.Skills),
		})
	}

	if len(r.Education) > 0 {
		s := Section{Kind: SectionEducation, Title: "Education", Marker: "🎓"}
		for _, edu := range r.Education {
			s.Entries = append(s.Entries, Entry{
				Heading:    edu.Degree,
				Subheading: edu.School + " • " + edu.Location,
				Aside:      edu.GraduationYear,
			})
		}
		doc.Sections = append(doc.Sections, s)
	}

	return doc
}
