package model

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/resume.schema.json
var resumeSchema []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(resumeSchema))
	})
	return schema, schemaErr
}

// FieldError is a single schema violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SchemaError lists every violation found in a submitted document.
type SchemaError struct {
	Errors []FieldError
}

func (e *SchemaError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "schema validation failed: " + strings.Join(msgs, "; ")
}

// ValidateJSON checks raw JSON against the embedded resume schema. The
// template tag is only checked for type: unknown tags are rendered with the
// minimal layout.
func ValidateJSON(raw []byte) error {
	s, err := loadSchema()
	if err != nil {
		return fmt.Errorf("load resume schema: %w", err)
	}
	res, err := s.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("validate resume: %w", err)
	}
	if res.Valid() {
		return nil
	}
	se := &SchemaError{}
	for _, e := range res.Errors() {
		se.Errors = append(se.Errors, FieldError{Field: e.Field(), Message: e.Description()})
	}
	return se
}

// DuplicateIDError reports an id used twice within one sequence.
type DuplicateIDError struct {
	Section string
	ID      string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate id %q in %s", e.ID, e.Section)
}

// ValidateIDs enforces per-sequence id uniqueness.
func ValidateIDs(r ResumeData) error {
	check := func(section string, ids []string) error {
		seen := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				return &DuplicateIDError{Section: section, ID: id}
			}
			seen[id] = struct{}{}
		}
		return nil
	}

	sections := []struct {
		name string
		ids  []string
	}{
		{"experience", collectIDs(r.Experience, func(e Experience) string { return e.ID })},
		{"education", collectIDs(r.Education, func(e Education) string { return e.ID })},
		{"skills", collectIDs(r.Skills, func(s Skill) string { return s.ID })},
		{"certifications", collectIDs(r.Certifications, func(c Certification) string { return c.ID })},
		{"languages", collectIDs(r.Languages, func(l Language) string { return l.ID })},
		{"projects", collectIDs(r.Projects, func(p Project) string { return p.ID })},
	}
	for _, s := range sections {
		if err := check(s.name, s.ids); err != nil {
			return err
		}
	}
	return nil
}

func collectIDs[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = id(it)
	}
	return out
}

type exportContact struct {
	FullName string `validate:"required"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required"`
}

var exportMessages = map[string]string{
	"FullName.required": "Full name is required",
	"Email.required":    "Email address is required",
	"Email.email":       "Please enter a valid email address",
	"Phone.required":    "Phone number is required",
}

var validate = validator.New()

// CheckExportReady returns the problems that block a PDF export, or nil when
// the resume has a name, a well-formed email and a phone number.
func CheckExportReady(r ResumeData) []string {
	c := exportContact{
		FullName: strings.TrimSpace(r.PersonalInfo.FullName),
		Email:    strings.TrimSpace(r.PersonalInfo.Email),
		Phone:    strings.TrimSpace(r.PersonalInfo.Phone),
	}
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	var problems []string
	for _, fe := range verrs {
		msg, ok := exportMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		problems = append(problems, msg)
	}
	return problems
}
