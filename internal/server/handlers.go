package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var validate = validator.New()

// Multipart resume uploads are capped at 10 MiB
const maxUploadBytes = 10 << 20

// AnalyzeRequest is the POST /analyze payload, decoded from a JSON body or a
// multipart form. Exactly one of job_text and job_url must be provided.
type AnalyzeRequest struct {
	CandidateName  string `json:"candidate_name"`
	CandidateEmail string `json:"candidate_email" validate:"omitempty,email"`
	JobTitle       string `json:"job_title"`
	JobText        string `json:"job_text" validate:"required_without=JobURL,excluded_with=JobURL"`
	JobURL         string `json:"job_url" validate:"omitempty,url"`
	ResumeText     string `json:"resume_text" validate:"required"`
	Language       string `json:"language" validate:"omitempty,oneof=en fr"`
}

// AnalyzeResponse wraps the result with its storage ID when persistence is
// configured.
type AnalyzeResponse struct {
	AnalysisID *uuid.UUID            `json:"analysis_id,omitempty"`
	Result     *types.AnalysisResult `json:"result"`
}

// handleAnalyze runs one analysis. Persistence failures are logged, never
// propagated: the caller always gets the result.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAnalyzeRequest(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	jobText := req.JobText
	if req.JobURL != "" {
		fetched, err := ingestion.FetchJobPosting(r.Context(), req.JobURL)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "failed to fetch job posting: "+err.Error())
			return
		}
		jobText = fetched
	}

	result, err := s.analyzer.Analyze(r.Context(), analyzer.Request{
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		JobTitle:       req.JobTitle,
		JobText:        ingestion.CleanText(jobText),
		ResumeText:     ingestion.CleanText(req.ResumeText),
		Language:       req.Language,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "analysis failed")
		logger.Error().Err(err).Msg("analysis failed")
		return
	}

	if err := schemas.ValidateAnalysisResult(result); err != nil {
		logger.Error().Err(err).Msg("result failed schema validation")
	}

	resp := AnalyzeResponse{Result: result}
	if id, ok := s.persist(r, req, result); ok {
		resp.AnalysisID = &id
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// decodeAnalyzeRequest accepts a JSON body or a multipart form carrying a
// "resume" file upload alongside the job fields.
func decodeAnalyzeRequest(r *http.Request) (*AnalyzeRequest, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return decodeMultipartRequest(r)
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.New("invalid JSON body")
	}
	return &req, nil
}

func decodeMultipartRequest(r *http.Request) (*AnalyzeRequest, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, errors.New("invalid multipart form")
	}

	req := &AnalyzeRequest{
		CandidateName:  r.FormValue("candidate_name"),
		CandidateEmail: r.FormValue("candidate_email"),
		JobTitle:       r.FormValue("job_title"),
		JobText:        r.FormValue("job_text"),
		JobURL:         r.FormValue("job_url"),
		ResumeText:     r.FormValue("resume_text"),
		Language:       r.FormValue("language"),
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		return req, nil
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.New("failed to read resume upload")
	}
	text, err := ingestion.ExtractText(data, header.Filename)
	if err != nil {
		return nil, err
	}
	req.ResumeText = text
	return req, nil
}

// persist saves the run best-effort and reports whether a row ID is available
func (s *Server) persist(r *http.Request, req *AnalyzeRequest, result *types.AnalysisResult) (uuid.UUID, bool) {
	if s.db == nil {
		return uuid.Nil, false
	}
	ctx := r.Context()

	profile := &types.CandidateProfile{
		ID:       result.ResumeID,
		Name:     result.ExtractedName,
		Email:    result.ExtractedEmail,
		Language: req.Language,
		RawText:  req.ResumeText,
	}
	job := &types.JobDescription{
		ID:              result.JobID,
		Title:           req.JobTitle,
		DescriptionText: req.JobText,
		Language:        req.Language,
	}

	if err := s.db.SaveResume(ctx, profile); err != nil {
		logger.Warn().Err(err).Msg("persisting resume failed")
		return uuid.Nil, false
	}
	if err := s.db.SaveJob(ctx, job); err != nil {
		logger.Warn().Err(err).Msg("persisting job failed")
		return uuid.Nil, false
	}
	id, err := s.db.SaveAnalysis(ctx, result)
	if err != nil {
		logger.Warn().Err(err).Msg("persisting analysis failed")
		return uuid.Nil, false
	}
	return id, true
}

// handleGetAnalysis retrieves a stored analysis by row ID
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid analysis ID")
		return
	}

	stored, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		logger.Error().Err(err).Msg("loading analysis failed")
		s.errorResponse(w, http.StatusInternalServerError, "failed to load analysis")
		return
	}
	if stored == nil {
		s.errorResponse(w, http.StatusNotFound, "analysis not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, stored)
}

// validationMessage flattens a validator error into one readable line
func validationMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		first := errs[0]
		return "invalid request: field " + first.Field() + " failed " + first.Tag() + " validation"
	}
	return "invalid request"
}
