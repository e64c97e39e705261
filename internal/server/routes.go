package server

import (
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

//go:embed templates/*.html
var templatesFS embed.FS

// TemplateRenderer is a custom html/template renderer for the Echo framework.
type TemplateRenderer struct {
	templates *template.Template
}

// Render renders a template document by name.
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}

// RegisterRoutes builds the Echo router with middleware and all routes.
func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"https://*", "http://*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Accept", "Content-Type"},
		MaxAge:       300,
	}))

	e.Renderer = &TemplateRenderer{
		templates: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}

	// JSON API
	e.POST("/generate-plan", s.handleGeneratePlan)
	e.GET("/health", s.handleHealth)

	// Server-rendered pages
	e.GET("/", s.handleIndex)
	e.POST("/plan", s.handleSubmitForm)
	e.GET("/result", s.handleResult)
	e.GET("/plan.json", s.handlePlanJSON)
	e.POST("/plan/clear", s.handleClearPlan)

	return e
}
