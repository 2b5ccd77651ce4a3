package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/mbellini/landing-optimizer/internal/db"
	"github.com/mbellini/landing-optimizer/internal/pipeline"
	"github.com/mbellini/landing-optimizer/internal/types"
)

// AnalyzeRequest is the request body for POST /analyze.
type AnalyzeRequest struct {
	URL        string   `json:"url" validate:"required,url"`
	FocusArea  string   `json:"focus_area" validate:"required"`
	Industry   string   `json:"industry"`
	Goals      []string `json:"goals" validate:"max=5,dive,max=100"`
	UseBrowser bool     `json:"use_browser"`
}

// AnalyzeResponse is the response for POST /analyze.
type AnalyzeResponse struct {
	ReportID  string        `json:"report_id,omitempty"`
	URL       string        `json:"url"`
	FocusArea string        `json:"focus_area"`
	Industry  string        `json:"industry"`
	Benchmark int           `json:"benchmark"`
	Repaired  bool          `json:"repaired,omitempty"`
	Report    *types.Report `json:"report"`
}

// handleAnalyze runs one full analysis synchronously and returns the report.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := s.runner.Run(r.Context(), pipeline.Options{
		URL:        req.URL,
		FocusArea:  req.FocusArea,
		Industry:   req.Industry,
		Goals:      req.Goals,
		UseBrowser: req.UseBrowser,
	})
	if err != nil {
		log.Printf("[SERVER] analysis failed for %s: %v", req.URL, err)
		s.errorResponse(w, http.StatusBadGateway, "analysis failed: "+err.Error())
		return
	}

	resp := AnalyzeResponse{
		URL:       req.URL,
		FocusArea: result.FocusArea,
		Industry:  result.Industry,
		Benchmark: result.Benchmark,
		Repaired:  result.Repaired,
		Report:    result.Report,
	}

	if s.db != nil {
		id, err := s.db.SaveReport(r.Context(), &db.StoredReport{
			URL:       req.URL,
			FocusArea: result.FocusArea,
			Industry:  result.Industry,
			Goals:     req.Goals,
			Benchmark: result.Benchmark,
			Repaired:  result.Repaired,
			Payload:   result.Report,
		})
		if err != nil {
			// Archiving is best effort; the generated report is still valid.
			log.Printf("[SERVER] failed to archive report for %s: %v", req.URL, err)
		} else {
			resp.ReportID = id.String()
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGetReport returns an archived report by ID.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusNotFound, "report archive is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid report ID")
		return
	}

	stored, err := s.db.GetReport(r.Context(), id)
	if err != nil {
		log.Printf("[SERVER] failed to get report %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to load report")
		return
	}
	if stored == nil {
		s.errorResponse(w, http.StatusNotFound, "report not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		ReportID:  stored.ID.String(),
		URL:       stored.URL,
		FocusArea: stored.FocusArea,
		Industry:  stored.Industry,
		Benchmark: stored.Benchmark,
		Repaired:  stored.Repaired,
		Report:    stored.Payload,
	})
}

// ReportListItem is one entry of GET /reports.
type ReportListItem struct {
	ReportID  string `json:"report_id"`
	URL       string `json:"url"`
	FocusArea string `json:"focus_area"`
	Industry  string `json:"industry"`
	Benchmark int    `json:"benchmark"`
	CreatedAt string `json:"created_at"`
}

// handleListReports returns recent archived reports.
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.jsonResponse(w, http.StatusOK, []ReportListItem{})
		return
	}

	summaries, err := s.db.ListReports(r.Context(), 50)
	if err != nil {
		log.Printf("[SERVER] failed to list reports: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list reports")
		return
	}

	items := make([]ReportListItem, 0, len(summaries))
	for _, sum := range summaries {
		items = append(items, ReportListItem{
			ReportID:  sum.ID.String(),
			URL:       sum.URL,
			FocusArea: sum.FocusArea,
			Industry:  sum.Industry,
			Benchmark: sum.Benchmark,
			CreatedAt: sum.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	s.jsonResponse(w, http.StatusOK, items)
}

// handleDeleteReport removes an archived report.
func (s *Server) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusNotFound, "report archive is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid report ID")
		return
	}

	deleted, err := s.db.DeleteReport(r.Context(), id)
	if err != nil {
		log.Printf("[SERVER] failed to delete report %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete report")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "report not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
