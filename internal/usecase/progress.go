package usecase

import (
	"math"
	"strings"

	"resume-builder/internal/model"
)

// SectionProgress holds completion state for one scored section
type SectionProgress struct {
	Name     string   `json:"name"`
	Complete bool     `json:"complete"`
	Missing  []string `json:"missing"`
}

// Section names, in the order Breakdown reports them.
const (
	SectionPersonal = "personal"
	SectionSummary  = "summary"
	SectionWork     = "experience"
	SectionSchool   = "education"
	SectionSkills   = "skills"
	SectionExtras   = "additional"
	SectionJobTitle = "jobTitle"
)

type sectionCheck struct {
	name  string
	check func(r model.ResumeData) []string
}

var sectionChecks = []sectionCheck{
	// jobTitle is scored on its own below, not as part of personal info.
	{SectionPersonal, func(r model.ResumeData) []string {
		var missing []string
		if r.PersonalInfo.FullName == "" {
			missing = append(missing, "personalInfo.fullName")
		}
		if r.PersonalInfo.Email == "" {
			missing = append(missing, "personalInfo.email")
		}
		if r.PersonalInfo.Phone == "" {
			missing = append(missing, "personalInfo.phone")
		}
		return missing
	}},
	{SectionSummary, func(r model.ResumeData) []string {
		if strings.TrimSpace(r.Summary) == "" {
			return []string{"summary"}
		}
		return nil
	}},
	{SectionWork, func(r model.ResumeData) []string {
		if len(r.Experience) == 0 {
			return []string{"experience"}
		}
		return nil
	}},
	{SectionSchool, func(r model.ResumeData) []string {
		if len(r.Education) == 0 {
			return []string{"education"}
		}
		return nil
	}},
	{SectionSkills, func(r model.ResumeData) []string {
		if len(r.Skills) == 0 {
			return []string{"skills"}
		}
		return nil
	}},
	// Any one of the three optional lists completes the bucket.
	{SectionExtras, func(r model.ResumeData) []string {
		if len(r.Certifications) > 0 || len(r.Languages) > 0 || len(r.Projects) > 0 {
			return nil
		}
		return []string{"certifications", "languages", "projects"}
	}},
	{SectionJobTitle, func(r model.ResumeData) []string {
		if r.PersonalInfo.JobTitle == "" {
			return []string{"personalInfo.jobTitle"}
		}
		return nil
	}},
}

// Breakdown reports the seven scored sections in fixed order. Missing lists
// the field paths still needed; it is empty for complete sections.
func Breakdown(r model.ResumeData) []SectionProgress {
	out := make([]SectionProgress, 0, len(sectionChecks))
	for _, sc := range sectionChecks {
		missing := sc.check(r)
		if missing == nil {
			missing = []string{}
		}
		out = append(out, SectionProgress{
			Name:     sc.name,
			Complete: len(missing) == 0,
			Missing:  missing,
		})
	}
	return out
}

// Score returns the completion percentage in [0, 100]. Each of the seven
// sections weighs the same.
func Score(r model.ResumeData) int {
	sections := Breakdown(r)
	completed := 0
	for _, s := range sections {
		if s.Complete {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(sections)) * 100))
}
