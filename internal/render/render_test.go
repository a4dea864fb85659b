package render

import (
	"context"
	"strings"
	"testing"

	"resume-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullResume() model.ResumeData {
	r := model.DefaultResume()
	r.PersonalInfo = model.PersonalInfo{
		FullName:  "Jane Doe",
		JobTitle:  "Data Engineer",
		Email:     "jane@x.io",
		Phone:     "+1 555 0100",
		LinkedIn:  "linkedin.com/in/jane",
		Portfolio: "jane.dev",
		Location:  "Berlin",
	}
	r.Summary = "Builds pipelines."
	r.Experience = []model.Experience{{
		ID: "e1", JobTitle: "Engineer", CompanyName: "Acme", Location: "Remote",
		StartDate: "2021-03", EndDate: "2023-07",
		Achievements: []string{"Cut costs 30%", "   ", " Led migration"},
	}}
	r.Education = []model.Education{{
		ID: "ed1", Degree: "BSc Computer Science", School: "TU Berlin", Location: "Berlin",
		GraduationYear: "2019", GPA: "3.8",
	}}
	r.Skills = []model.Skill{{ID: "s1", Name: "Python"}, {ID: "s2", Name: "SQL"}}
	r.Certifications = []model.Certification{{ID: "c1", Name: "CKA", Issuer: "CNCF", Date: "2022-05"}}
	r.Languages = []model.Language{{ID: "l1", Name: "German", Proficiency: "Fluent"}}
	r.Projects = []model.Project{{ID: "p1", Name: "Etl", Description: "Batch jobs", Technologies: []string{"Go", "Kafka"}}}
	return r
}

// texts flattens every visible string of the document.
func texts(d *Document) []string {
	out := []string{d.Header.Name, d.Header.Title}
	for _, c := range d.Header.Contacts {
		out = append(out, c.Value)
	}
	var walk func(s Section)
	walk = func(s Section) {
		out = append(out, s.Title, s.Text)
		out = append(out, s.Items...)
		for _, e := range s.Entries {
			out = append(out, e.Heading, e.Subheading, e.Aside)
			out = append(out, e.Lines...)
			out = append(out, e.Bullets...)
		}
		for _, c := range s.Children {
			walk(c)
		}
	}
	for _, s := range d.Sections {
		walk(s)
	}
	return out
}

func containsText(d *Document, sub string) bool {
	for _, s := range texts(d) {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func withTemplate(r model.ResumeData, t model.Template) model.ResumeData {
	r.Template = t
	return r
}

func TestResolve(t *testing.T) {
	for _, tpl := range []model.Template{model.TemplateModern, model.TemplateClassic, model.TemplateCreative, model.TemplateExecutive, model.TemplateMinimal} {
		assert.Equal(t, tpl, Resolve(tpl))
	}
	assert.Equal(t, model.TemplateMinimal, Resolve("futuristic"))
	assert.Equal(t, model.TemplateMinimal, Resolve(""))
}

func TestRender_UnknownTemplateMatchesMinimal(t *testing.T) {
	r := fullResume()
	assert.Equal(t, Render(withTemplate(r, model.TemplateMinimal)), Render(withTemplate(r, "futuristic")))
}

func TestRender_CurrentRoleShowsPresent(t *testing.T) {
	r := fullResume()
	r.Experience[0].StartDate = "2021-03"
	r.Experience[0].EndDate = "2023-07"
	r.Experience[0].Current = true

	for _, tpl := range model.Templates() {
		doc := Render(withTemplate(r, tpl))
		exp, ok := doc.Section(SectionExperience)
		require.True(t, ok, tpl)
		require.Len(t, exp.Entries, 1, tpl)
		assert.Equal(t, "Mar 2021 - Present", exp.Entries[0].Aside, tpl)
		assert.False(t, containsText(doc, "Jul 2023"), tpl)
	}
}

func TestRender_ClassicDropsExtras(t *testing.T) {
	doc := Render(withTemplate(fullResume(), model.TemplateClassic))
	for _, kind := range []SectionKind{SectionCertifications, SectionLanguages, SectionProjects} {
		_, ok := doc.Section(kind)
		assert.False(t, ok, kind)
	}
	assert.False(t, containsText(doc, "CKA"))
	assert.False(t, containsText(doc, "German"))

	skills, ok := doc.Section(SectionSkills)
	require.True(t, ok)
	assert.Equal(t, []string{"Python,", "SQL"}, skills.Items)
	assert.Equal(t, ItemsInline, skills.ItemStyle)
}

func TestRender_CreativeExecutiveMinimalDropExtras(t *testing.T) {
	for _, tpl := range []model.Template{model.TemplateCreative, model.TemplateExecutive, model.TemplateMinimal} {
		doc := Render(withTemplate(fullResume(), tpl))
		for _, kind := range []SectionKind{SectionCertifications, SectionLanguages, SectionProjects} {
			_, ok := doc.Section(kind)
			assert.False(t, ok, "%s %s", tpl, kind)
		}
	}
}

func TestRender_ModernKeepsFirstThreeProjects(t *testing.T) {
	r := fullResume()
	r.Projects = nil
	for _, name := range []string{"P1", "P2", "P3", "P4", "P5"} {
		r.Projects = append(r.Projects, model.Project{ID: name, Name: name, Description: "d"})
	}
	doc := Render(withTemplate(r, model.TemplateModern))

	projects, ok := doc.Section(SectionProjects)
	require.True(t, ok)
	var names []string
	for _, e := range projects.Entries {
		names = append(names, e.Heading)
		assert.Equal(t, []string{"d"}, e.Lines, "no technologies line when the list is empty")
	}
	assert.Equal(t, []string{"P1", "P2", "P3"}, names)
}

func TestRender_ModernGroupsExtras(t *testing.T) {
	doc := Render(withTemplate(fullResume(), model.TemplateModern))

	last := doc.Sections[len(doc.Sections)-1]
	require.Equal(t, SectionGroup, last.Kind)
	assert.Equal(t, 3, last.Columns)
	require.Len(t, last.Children, 3)

	cert := last.Children[0].Entries[0]
	assert.Equal(t, "CKA", cert.Heading)
	assert.Equal(t, []string{"CNCF"}, cert.Lines)
	assert.Equal(t, "May 2022", cert.Aside)

	lang := last.Children[1].Entries[0]
	assert.Equal(t, "Fluent", lang.Aside)

	proj := last.Children[2].Entries[0]
	assert.Equal(t, []string{"Batch jobs", "Go, Kafka"}, proj.Lines)

	edu, ok := doc.Section(SectionEducation)
	require.True(t, ok)
	assert.Equal(t, "TU Berlin • Berlin", edu.Entries[0].Subheading)
	assert.Equal(t, []string{"GPA: 3.8"}, edu.Entries[0].Lines)
}

func TestRender_ModernOmitsEmptyGroup(t *testing.T) {
	r := fullResume()
	r.Certifications, r.Languages, r.Projects = nil, nil, nil
	doc := Render(withTemplate(r, model.TemplateModern))
	_, ok := doc.Section(SectionGroup)
	assert.False(t, ok)
}

func TestRender_MinimalSkillsJoined(t *testing.T) {
	doc := Render(withTemplate(fullResume(), model.TemplateMinimal))
	skills, ok := doc.Section(SectionSkills)
	require.True(t, ok)
	assert.Equal(t, "Python, SQL", skills.Text)
	assert.Empty(t, skills.Items)

	exp, _ := doc.Section(SectionExperience)
	assert.Equal(t, "Engineer, Acme", exp.Entries[0].Heading)
	assert.Equal(t, BulletParagraph, exp.BulletStyle)

	summary, ok := doc.Section(SectionSummary)
	require.True(t, ok)
	assert.Empty(t, summary.Title)
}

func TestRender_BlankAchievementsSkipped(t *testing.T) {
	for _, tpl := range model.Templates() {
		doc := Render(withTemplate(fullResume(), tpl))
		exp, ok := doc.Section(SectionExperience)
		require.True(t, ok)
		assert.Equal(t, []string{"Cut costs 30%", " Led migration"}, exp.Entries[0].Bullets, tpl)
	}
}

func TestRender_EmptySectionsOmitted(t *testing.T) {
	r := model.DefaultResume()
	r.PersonalInfo.FullName = "Jane"
	for _, tpl := range model.Templates() {
		doc := Render(withTemplate(r, tpl))
		assert.Empty(t, doc.Sections, tpl)
		assert.Empty(t, doc.Header.Contacts, tpl)
		assert.Equal(t, "Jane", doc.Header.Name)
	}
}

func TestRender_WhitespaceSummaryIsKept(t *testing.T) {
	r := model.DefaultResume()
	r.Summary = "  "
	_, ok := Render(r).Section(SectionSummary)
	assert.True(t, ok)
}

func TestRender_ContactsPerTemplate(t *testing.T) {
	kinds := func(d *Document) []ContactKind {
		var out []ContactKind
		for _, c := range d.Header.Contacts {
			out = append(out, c.Kind)
		}
		return out
	}
	tests := []struct {
		tpl   model.Template
		style ContactStyle
		align Align
		kinds []ContactKind
		icons bool
	}{
		{model.TemplateModern, ContactsIcons, AlignLeft, []ContactKind{ContactEmail, ContactPhone, ContactLocation, ContactLinkedIn, ContactPortfolio}, true},
		{model.TemplateClassic, ContactsStacked, AlignCenter, []ContactKind{ContactEmail, ContactPhone, ContactLocation, ContactLinkedIn}, false},
		{model.TemplateCreative, ContactsPills, AlignLeft, []ContactKind{ContactEmail, ContactPhone, ContactLocation}, true},
		{model.TemplateExecutive, ContactsGrid, AlignCenter, []ContactKind{ContactEmail, ContactPhone, ContactLocation, ContactLinkedIn}, true},
		{model.TemplateMinimal, ContactsInline, AlignLeft, []ContactKind{ContactEmail, ContactPhone, ContactLocation}, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.tpl), func(t *testing.T) {
			doc := Render(withTemplate(fullResume(), tt.tpl))
			assert.Equal(t, tt.style, doc.Header.ContactStyle)
			assert.Equal(t, tt.align, doc.Header.Align)
			assert.Equal(t, tt.kinds, kinds(doc))
			for _, c := range doc.Header.Contacts {
				assert.Equal(t, tt.icons, c.Icon != "", c.Kind)
			}
		})
	}
}

func TestRender_SectionOrder(t *testing.T) {
	order := func(d *Document) []SectionKind {
		var out []SectionKind
		for _, s := range d.Sections {
			out = append(out, s.Kind)
		}
		return out
	}
	r := fullResume()
	assert.Equal(t,
		[]SectionKind{SectionSummary, SectionExperience, SectionSkills, SectionEducation},
		order(Render(withTemplate(r, model.TemplateCreative))))
	assert.Equal(t,
		[]SectionKind{SectionSummary, SectionExperience, SectionGroup},
		order(Render(withTemplate(r, model.TemplateExecutive))))
	assert.Equal(t,
		[]SectionKind{SectionSummary, SectionExperience, SectionEducation, SectionSkills, SectionGroup},
		order(Render(withTemplate(r, model.TemplateModern))))
}

func TestRender_DoesNotMutateInput(t *testing.T) {
	r := fullResume()
	before := r.Clone()
	for _, tpl := range model.Templates() {
		Render(withTemplate(r, tpl))
	}
	assert.Equal(t, before, r)
}

func TestRenderAll(t *testing.T) {
	r := fullResume()
	docs, err := RenderAll(context.Background(), r)
	require.NoError(t, err)
	require.Len(t, docs, 5)
	for tpl, doc := range docs {
		assert.Equal(t, tpl, doc.Template)
		assert.Equal(t, Render(withTemplate(r, tpl)), doc)
	}
}

func TestRenderAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RenderAll(ctx, fullResume())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderHTML(t *testing.T) {
	for _, tpl := range []model.Template{model.TemplateModern, model.TemplateClassic, model.TemplateCreative, model.TemplateExecutive, model.TemplateMinimal, "futuristic"} {
		r := fullResume()
		r.Summary = "Builds <pipelines> & more."
		html, err := RenderHTML(Render(withTemplate(r, tpl)))
		require.NoError(t, err, tpl)

		assert.Equal(t, 1, strings.Count(html, `id="resume-content"`), tpl)
		assert.Contains(t, html, "<style>@page")
		assert.Contains(t, html, "Jane Doe")
		assert.Contains(t, html, "Builds &lt;pipelines&gt; &amp; more.")
		assert.Contains(t, html, "<title>Jane Doe - Resume</title>")
	}
}

func TestRenderHTML_Nil(t *testing.T) {
	_, err := RenderHTML(nil)
	var te *TemplateError
	assert.ErrorAs(t, err, &te)
}
