package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"ai-fitness-planner/internal/config"
	"ai-fitness-planner/internal/llm"
	"ai-fitness-planner/internal/planner"
	"ai-fitness-planner/internal/profile"

	"github.com/labstack/echo/v4"
)

// generatePlanRequest is the lenient wire form of the user profile. Every
// field is optional and defaults to its zero value.
type generatePlanRequest struct {
	Name    string      `json:"name" form:"name"`
	Age     json.Number `json:"age" form:"age"`
	Gender  string      `json:"gender" form:"gender"`
	Height  json.Number `json:"height" form:"height"`
	Weight  json.Number `json:"weight" form:"weight"`
	Goal    string      `json:"goal" form:"goal"`
	Level   string      `json:"level" form:"level"`
	Dietary string      `json:"dietary" form:"dietary"`
	Medical string      `json:"medical" form:"medical"`
	Stress  string      `json:"stress" form:"stress"`
}

// toProfile converts the wire request leniently: unparsable numbers become
// zero values and end up as empty strings in the prompt.
func (r generatePlanRequest) toProfile() profile.UserProfile {
	age, _ := strconv.Atoi(r.Age.String())
	height, _ := strconv.ParseFloat(r.Height.String(), 64)
	weight, _ := strconv.ParseFloat(r.Weight.String(), 64)

	return profile.UserProfile{
		Name:     r.Name,
		Age:      age,
		Gender:   profile.Gender(r.Gender),
		HeightCM: height,
		WeightKG: weight,
		Goal:     r.Goal,
		Level:    profile.Level(r.Level),
		Dietary:  profile.Dietary(r.Dietary),
		Medical:  r.Medical,
		Stress:   profile.Stress(r.Stress),
	}
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleGeneratePlan is the JSON API: one model call per submission, with
// parse failures degrading to a raw-text payload instead of an error status
// (unless the error surfacing mode is configured).
func (s *Server) handleGeneratePlan(c echo.Context) error {
	var req generatePlanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if !s.store.BeginGeneration() {
		return c.JSON(http.StatusConflict, map[string]string{"error": "a plan generation is already in progress"})
	}
	defer s.store.EndGeneration()

	out, err := s.planner.GeneratePlan(c.Request().Context(), req.toProfile())
	if err != nil {
		return s.writeGenerationError(c, err)
	}

	s.store.Set(out)

	if out.Structured() {
		return c.JSON(http.StatusOK, echo.Map{"plan": out.Object})
	}
	if s.cfg.ParseFailureMode == config.ParseFailureError {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error":   "model output was not valid JSON",
			"planRaw": out.Raw,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"planRaw": out.Raw, "parseError": out.ParseError})
}

// writeGenerationError maps gateway errors onto the wire contract: missing
// credential is an authorization failure, an unreadable response is a bad
// gateway, anything else a generic server error.
func (s *Server) writeGenerationError(c echo.Context, err error) error {
	if errors.Is(err, llm.ErrMissingAPIKey) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": llm.ErrMissingAPIKey.Error()})
	}

	var extErr *llm.ExtractionError
	if errors.As(err, &extErr) {
		return c.JSON(http.StatusBadGateway, echo.Map{
			"error":  "Failed to read model response",
			"detail": extErr.Err.Error(),
		})
	}

	s.log.Error().Err(err).Msg("[Server] plan generation failed")
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func (s *Server) handleIndex(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", indexView{Loading: s.store.Loading()})
}

// handleSubmitForm is the HTML form boundary. Unlike the JSON API it
// validates the profile before spending a model call on it.
func (s *Server) handleSubmitForm(c echo.Context) error {
	var req generatePlanRequest
	if err := c.Bind(&req); err != nil {
		return c.Render(http.StatusBadRequest, "index.html", indexView{Error: "invalid form submission"})
	}

	prof := req.toProfile()
	if err := prof.Validate(); err != nil {
		return c.Render(http.StatusBadRequest, "index.html", indexView{Error: err.Error()})
	}

	if !s.store.BeginGeneration() {
		return c.Render(http.StatusConflict, "index.html", indexView{
			Error:   "a plan generation is already in progress",
			Loading: true,
		})
	}
	defer s.store.EndGeneration()

	out, err := s.planner.GeneratePlan(c.Request().Context(), prof)
	if err != nil {
		return s.renderGenerationError(c, err)
	}

	s.store.Set(out)
	return c.Redirect(http.StatusSeeOther, "/result")
}

func (s *Server) renderGenerationError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	if errors.Is(err, llm.ErrMissingAPIKey) {
		status = http.StatusUnauthorized
	}
	var extErr *llm.ExtractionError
	if errors.As(err, &extErr) {
		status = http.StatusBadGateway
	}
	s.log.Error().Err(err).Msg("[Server] plan generation failed")
	return c.Render(status, "error.html", errorView{Message: err.Error()})
}

func (s *Server) handleResult(c echo.Context) error {
	out := s.store.Current()
	if out.Empty() {
		// No plan exists, go back to the form.
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return c.Render(http.StatusOK, "result.html", buildResultView(out))
}

// handlePlanJSON serves the stored structured plan as formatted JSON, the
// payload behind the "copy plan" action.
func (s *Server) handlePlanJSON(c echo.Context) error {
	out := s.store.Current()
	if !out.Structured() {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no structured plan available"})
	}

	data, err := json.MarshalIndent(out.Object, "", "  ")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.Blob(http.StatusOK, "application/json; charset=utf-8", data)
}

func (s *Server) handleClearPlan(c echo.Context) error {
	s.store.Clear()
	return c.Redirect(http.StatusSeeOther, "/")
}

// indexView feeds the form template.
type indexView struct {
	Error   string
	Loading bool
}

// errorView feeds the error page.
type errorView struct {
	Message string
}

// sectionView is a segmented section prepared for display.
type sectionView struct {
	Title string
	Lines []planner.Line
}

// resultView feeds the result template: either a structured plan or the
// segmented fallback sections.
type resultView struct {
	Plan       *planner.PlanObject
	Sections   []sectionView
	ParseError string
}

// buildResultView prepares the stored outcome for rendering. A structured
// plan renders as cards; raw text goes through the heading segmenter and
// line formatter.
func buildResultView(out planner.Outcome) resultView {
	if out.Structured() {
		return resultView{Plan: out.Object}
	}

	var sections []sectionView
	for _, sec := range planner.Segment(out.Raw) {
		sections = append(sections, sectionView{
			Title: sec.Title,
			Lines: planner.FormatLines(sec.Content),
		})
	}
	return resultView{Sections: sections, ParseError: out.ParseError}
}
