package handler

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-minutes/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = []string{"index.html", "meetings.html", "view_meeting.html"}

// PageData is passed to every HTML page
type PageData struct {
	Flashes  []string
	Meetings []*entities.MeetingListItem
	Meeting  *entities.Meeting
	// Result is shown inline on the upload page when a processed meeting could not be saved
	Result *entities.Meeting
}

// TemplateRenderer implements echo.Renderer with the embedded page templates
type TemplateRenderer struct {
	templates map[string]*template.Template
}

// NewTemplateRenderer parses every page together with the shared layout
func NewTemplateRenderer() (*TemplateRenderer, error) {
	funcs := template.FuncMap{
		"audioURL": presenter.AudioURL,
	}

	templates := make(map[string]*template.Template, len(pageTemplates))
	for _, page := range pageTemplates {
		t, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = t
	}
	return &TemplateRenderer{templates: templates}, nil
}

// Render implements echo.Renderer
func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
