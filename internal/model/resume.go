package model

// Go models for the resume aggregate. JSON tags follow the client storage
// format so snapshots saved by the editor load without translation.

type Template string

const (
	TemplateModern    Template = "modern"
	TemplateClassic   Template = "classic"
	TemplateMinimal   Template = "minimal"
	TemplateCreative  Template = "creative"
	TemplateExecutive Template = "executive"
)

// Templates returns the selectable templates in display order.
func Templates() []Template {
	return []Template{TemplateModern, TemplateClassic, TemplateMinimal, TemplateCreative, TemplateExecutive}
}

// Valid reports whether t is one of the five known templates.
func (t Template) Valid() bool {
	switch t {
	case TemplateModern, TemplateClassic, TemplateMinimal, TemplateCreative, TemplateExecutive:
		return true
	}
	return false
}

// TemplateInfo describes a template for a picker.
type TemplateInfo struct {
	ID          Template `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
}

var templateInfo = map[Template]TemplateInfo{
	TemplateModern:    {TemplateModern, "Modern", "Clean and contemporary design"},
	TemplateClassic:   {TemplateClassic, "Classic", "Traditional professional layout"},
	TemplateMinimal:   {TemplateMinimal, "Minimal", "Simple and elegant design"},
	TemplateCreative:  {TemplateCreative, "Creative", "Bold layout with colour and section icons"},
	TemplateExecutive: {TemplateExecutive, "Executive", "Premium professional style"},
}

// Catalog describes every template, in display order.
func Catalog() []TemplateInfo {
	out := make([]TemplateInfo, 0, len(templateInfo))
	for _, t := range Templates() {
		out = append(out, templateInfo[t])
	}
	return out
}

// Proficiencies is the set the editor suggests for Language.Proficiency.
// The field itself is free text.
var Proficiencies = []string{"Native", "Fluent", "Advanced", "Intermediate", "Beginner"}

type PersonalInfo struct {
	FullName  string `json:"fullName"`
	JobTitle  string `json:"jobTitle"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
	Location  string `json:"location"`
}

type Experience struct {
	ID          string `json:"id"`
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	// Current marks an ongoing role; EndDate is then ignored for display.
	Current      bool     `json:"current"`
	Achievements []string `json:"achievements"`
}

type Education struct {
	ID             string `json:"id"`
	Degree         string `json:"degree"`
	School         string `json:"school"`
	Location       string `json:"location"`
	GraduationYear string `json:"graduationYear"`
	GPA            string `json:"gpa,omitempty"`
}

type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

type Language struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
}

// ResumeData is the aggregate root. Values are replaced, never edited in
// place: callers Clone, apply their change and store the new value.
type ResumeData struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Summary        string          `json:"summary"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`
	Projects       []Project       `json:"projects"`
	Template       Template        `json:"template"`
}

// DefaultResume returns the empty resume a new session starts from.
func DefaultResume() ResumeData {
	return ResumeData{
		Experience:     []Experience{},
		Education:      []Education{},
		Skills:         []Skill{},
		Certifications: []Certification{},
		Languages:      []Language{},
		Projects:       []Project{},
		Template:       TemplateModern,
	}
}

// Clone returns a deep copy of r. Nil sequences come back as empty slices.
func (r ResumeData) Clone() ResumeData {
	out := r

	out.Experience = make([]Experience, len(r.Experience))
	for i, e := range r.Experience {
		e.Achievements = append([]string{}, e.Achievements...)
		out.Experience[i] = e
	}
	out.Education = append([]Education{}, r.Education...)
	out.Skills = append([]Skill{}, r.Skills...)
	out.Certifications = append([]Certification{}, r.Certifications...)
	out.Languages = append([]Language{}, r.Languages...)

	out.Projects = make([]Project, len(r.Projects))
	for i, p := range r.Projects {
		p.Technologies = append([]string{}, p.Technologies...)
		out.Projects[i] = p
	}
	return out
}
