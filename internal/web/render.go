// Package web renders the browser UI: the trip-request form and the
// generated-plan page. Templates are embedded so the binary is
// self-contained.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/yuin/goldmark"

	"github.com/dharmasatrya/travelplanner/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: templates}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// FormPage is the template data for the trip-request form.
type FormPage struct {
	Title         string
	Themes        []string
	Budgets       []string
	FlightClasses []string
	HotelRatings  []string
	Request       models.TripRequest
	Errors        []string
}

// PlanPage is the template data for the generated-plan page.
type PlanPage struct {
	Title         string
	Plan          *models.TravelPlan
	Warning       string
	ResearchHTML  template.HTML
	HotelsHTML    template.HTML
	ItineraryHTML template.HTML
}

// Markdown converts agent output to HTML for the plan page. Conversion
// failures fall back to escaped preformatted text.
func Markdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(text), &buf); err != nil {
		return template.HTML("<pre>" + template.HTMLEscapeString(text) + "</pre>")
	}
	return template.HTML(buf.String())
}
