package render

import (
	"context"
	"strings"

	"resume-builder/internal/model"

	"golang.org/x/sync/errgroup"
)

// Resolve maps a template tag to the layout that renders it. Any tag other
// than modern, classic, creative or executive gets the minimal layout.
func Resolve(t model.Template) model.Template {
	switch t {
	case model.TemplateModern, model.TemplateClassic, model.TemplateCreative, model.TemplateExecutive:
		return t
	default:
		return model.TemplateMinimal
	}
}

// Render projects r onto the layout selected by r.Template. It never fails
// and never modifies r.
func Render(r model.ResumeData) *Document {
	switch Resolve(r.Template) {
	case model.TemplateModern:
		return renderModern(r)
	case model.TemplateClassic:
		return renderClassic(r)
	case model.TemplateCreative:
		return renderCreative(r)
	case model.TemplateExecutive:
		return renderExecutive(r)
	default:
		return renderMinimal(r)
	}
}

// RenderAll renders r under every template, e.g. for a template picker.
func RenderAll(ctx context.Context, r model.ResumeData) (map[model.Template]*Document, error) {
	templates := model.Templates()
	docs := make([]*Document, len(templates))

	g, ctx := errgroup.WithContext(ctx)
	for i, tpl := range templates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			variant := r
			variant.Template = tpl
			docs[i] = Render(variant)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[model.Template]*Document, len(templates))
	for i, tpl := range templates {
		out[tpl] = docs[i]
	}
	return out, nil
}

func newDocument(t model.Template) *Document {
	return &Document{Template: t, RootID: RootID, Sections: []Section{}}
}

var contactIcons = map[ContactKind]string{
	ContactEmail:     "mail",
	ContactPhone:     "phone",
	ContactLocation:  "map-pin",
	ContactLinkedIn:  "linkedin",
	ContactPortfolio: "globe",
}

// contacts lists the non-empty fields among kinds, in the order given.
func contacts(info model.PersonalInfo, icons bool, kinds ...ContactKind) []Contact {
	out := []Contact{}
	for _, k := range kinds {
		var v string
		switch k {
		case ContactEmail:
			v = info.Email
		case ContactPhone:
			v = info.Phone
		case ContactLocation:
			v = info.Location
		case ContactLinkedIn:
			v = info.LinkedIn
		case ContactPortfolio:
			v = info.Portfolio
		}
		if v == "" {
			continue
		}
		c := Contact{Kind: k, Value: v}
		if icons {
			c.Icon = contactIcons[k]
		}
		out = append(out, c)
	}
	return out
}

// visibleAchievements drops blank lines; kept lines are returned untrimmed.
func visibleAchievements(achievements []string) []string {
	out := make([]string, 0, len(achievements))
	for _, a := range achievements {
		if strings.TrimSpace(a) != "" {
			out = append(out, a)
		}
	}
	return out
}

func skillNames(skills []model.Skill) []string {
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = s.Name
	}
	return out
}
