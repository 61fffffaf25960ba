package ui

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"loansight/app"
	"loansight/domain/profile"
	"loansight/internal/errors"
	"loansight/internal/similarity"
)

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"tier":   a.advisor.Model().Tier().String(),
	})
}

func (a *App) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req app.PredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.InvalidInput("malformed prediction request"))
		return
	}
	assessment, err := a.advisor.Predict(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assessment)
}

func (a *App) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req app.PredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.InvalidInput("malformed analysis request"))
		return
	}
	result, err := a.advisor.Analyze(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleReport renders the advisor report as HTML from its markdown form.
func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	var req app.PredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.InvalidInput("malformed report request"))
		return
	}
	result, err := a.advisor.Analyze(req)
	if err != nil {
		writeError(w, err)
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	rendered := markdown.ToHTML([]byte(result.Markdown), p, renderer)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(rendered); err != nil {
		log.Printf("[UI] writing report response: %v", err)
	}
}

type similarRequest struct {
	CreditScore  float64     `json:"credit_score"`
	AnnualIncome float64     `json:"annual_income"`
	LoanAmount   float64     `json:"loan_amount"`
	Weights      *[3]float64 `json:"weights,omitempty"`
	TopK         *int        `json:"top_k,omitempty"`
	MinThreshold *float64    `json:"min_threshold,omitempty"`
}

func (a *App) handleSimilar(w http.ResponseWriter, r *http.Request) {
	var req similarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.InvalidInput("malformed similarity request"))
		return
	}

	opts := similarity.DefaultOptions()
	if req.Weights != nil {
		opts.Weights = *req.Weights
	}
	if req.TopK != nil {
		opts.TopK = *req.TopK
	}
	if req.MinThreshold != nil {
		opts.MinThreshold = *req.MinThreshold
	}

	matches, err := a.advisor.FindSimilar(req.CreditScore, req.AnnualIncome, req.LoanAmount, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"matches": matches})
}

type generateRequest struct {
	Count int `json:"count"`
}

func (a *App) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.InvalidInput("malformed generation request"))
		return
	}
	profiles, err := a.advisor.GenerateCorpus(req.Count)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(profiles),
		"profiles": profiles,
	})
}

func (a *App) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.advisor.Stats())
}

func (a *App) handleShape(w http.ResponseWriter, r *http.Request) {
	field := profile.Field(chi.URLParam(r, "field"))
	shape, err := a.advisor.Shape(field)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shape)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[UI] encoding response: %v", err)
	}
}

// writeError maps the error taxonomy onto HTTP statuses: validation and
// bad input are the caller's fault, everything else is ours.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeValidationError, errors.CodeInvalidInput, errors.CodeEmptyCorpus:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}
