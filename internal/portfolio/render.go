package portfolio

import (
	"bytes"
	"embed"
	"html/template"
)

//go:embed templates/portfolio.html.tmpl
var templateFS embed.FS

//go:embed static/portfolio.css
var stylesheet []byte

// StylesheetPath is where rendered pages expect the stylesheet to be served.
const StylesheetPath = "/portfolio.css"

// Stylesheet returns the stylesheet referenced by rendered pages.
func Stylesheet() []byte {
	return stylesheet
}

// Renderer turns a Profile into a portfolio HTML document. Every value is
// contextually escaped by html/template. A Renderer is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
	year int
}

type pageData struct {
	Profile
	Year int
}

// NewRenderer parses the embedded page template. year is printed in the footer.
func NewRenderer(year int) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/portfolio.html.tmpl")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl, year: year}, nil
}

// Render executes the template into a buffer, so a failure never yields a
// partial document.
func (r *Renderer) Render(p Profile) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, pageData{Profile: p, Year: r.year}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
