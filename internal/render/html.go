package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"sync"
)

//go:embed templates/document.html templates/style.css
var templateFS embed.FS

// TemplateError reports a failure to load or execute the page template.
type TemplateError struct {
	Op  string
	Err error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("render html: %s: %v", e.Op, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

var iconGlyphs = map[string]string{
	"mail":     "✉",
	"phone":    "☎",
	"map-pin":  "⌖",
	"linkedin": "in",
	"globe":    "🌐",
}

var (
	pageOnce sync.Once
	pageTpl  *template.Template
	pageCSS  template.CSS
	pageErr  error
)

func loadPage() (*template.Template, template.CSS, error) {
	pageOnce.Do(func() {
		css, err := templateFS.ReadFile("templates/style.css")
		if err != nil {
			pageErr = &TemplateError{Op: "read stylesheet", Err: err}
			return
		}
		pageCSS = template.CSS(css)

		pageTpl, err = template.New("document.html").Funcs(template.FuncMap{
			"glyph": func(icon string) string { return iconGlyphs[icon] },
		}).ParseFS(templateFS, "templates/document.html")
		if err != nil {
			pageErr = &TemplateError{Op: "parse", Err: err}
		}
	})
	return pageTpl, pageCSS, pageErr
}

// RenderHTML renders doc as a standalone HTML page with the stylesheet
// inlined. The page body holds exactly one element with id RootID.
func RenderHTML(doc *Document) (string, error) {
	if doc == nil {
		return "", &TemplateError{Op: "execute", Err: fmt.Errorf("nil document")}
	}
	tpl, css, err := loadPage()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	data := struct {
		*Document
		CSS template.CSS
	}{doc, css}
	if err := tpl.Execute(&buf, data); err != nil {
		return "", &TemplateError{Op: "execute", Err: err}
	}
	return buf.String(), nil
}

// Title is the document title used for the preview tab and the PDF metadata.
func (d *Document) Title() string {
	name := strings.TrimSpace(d.Header.Name)
	if name == "" {
		return "Resume"
	}
	return name + " - Resume"
}
