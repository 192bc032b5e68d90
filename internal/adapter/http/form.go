package http

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/couchcryptid/saferoute/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type control struct {
	domain.FieldView
	Selected string
}

type resultView struct {
	Tier       string
	Label      string
	Message    string
	Confidence string
}

type page struct {
	Controls []control
	Result   *resultView
	Error    string
}

func (s *Server) handleForm(w http.ResponseWriter, _ *http.Request) {
	views, err := s.evaluator.Fields()
	if err != nil {
		status, body := classifyError(err)
		s.render(w, status, page{Error: body.Error})
		return
	}
	s.render(w, http.StatusOK, page{Controls: controls(views, nil)})
}

// handleFormSubmit evaluates a posted form. Only keys naming an exposed
// field are read; anything else the browser sends is ignored.
func (s *Server) handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	views, err := s.evaluator.Fields()
	if err != nil {
		status, body := classifyError(err)
		s.render(w, status, page{Error: body.Error})
		return
	}
	if err := r.ParseForm(); err != nil {
		s.render(w, http.StatusBadRequest, page{Controls: controls(views, nil), Error: "could not read form"})
		return
	}

	sel := make(domain.Selections, len(views))
	for _, v := range views {
		if vals, ok := r.PostForm[v.Name]; ok && len(vals) > 0 {
			sel[v.Name] = vals[0]
		}
	}

	pg := page{Controls: controls(views, sel)}
	eval, err := s.evaluator.Evaluate(r.Context(), sel)
	if err != nil {
		status, body := classifyError(err)
		pg.Error = body.Error
		s.render(w, status, pg)
		return
	}

	a := eval.Assessment
	pg.Result = &resultView{
		Tier:       a.Tier.String(),
		Label:      a.Label,
		Message:    a.Message,
		Confidence: formatConfidence(a.Confidence),
	}
	s.render(w, http.StatusOK, pg)
}

func (s *Server) render(w http.ResponseWriter, status int, pg page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.page.Execute(w, pg); err != nil {
		s.logger.Error("render page", "error", err)
	}
}

// controls pairs each field with the value to preselect: the submitted one
// if present, otherwise the field default.
func controls(views []domain.FieldView, sel domain.Selections) []control {
	out := make([]control, len(views))
	for i, v := range views {
		selected := v.Default
		if s, ok := sel[v.Name]; ok {
			selected = s
		}
		out[i] = control{FieldView: v, Selected: selected}
	}
	return out
}

// formatConfidence renders p as a percentage with one decimal place.
func formatConfidence(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}
