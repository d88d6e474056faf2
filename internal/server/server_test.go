package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	s, err := New(context.Background(), Config{Port: 0})
	require.NoError(t, err)
	return s.httpServer.Handler
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleAnalyze(t *testing.T) {
	body := `{
		"resume_text": "Jane Smith\njane@x.com\nEXPERIENCE\nEngineer | Acme\nUsed react daily.",
		"job_text": "We need react experience.",
		"language": "en"
	}`
	rec := doJSON(t, newTestServer(t), http.MethodPost, "/analyze", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Nil(t, resp.AnalysisID)
	assert.Equal(t, "Jane Smith", resp.Result.ExtractedName)
	assert.Equal(t, []string{"react"}, resp.Result.MatchedSkills)
	assert.Equal(t, 100.0, resp.Result.SkillMatchPercentage)
}

func doMultipart(t *testing.T, h http.Handler, filename, resume, jobText string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(resume))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("job_text", jobText))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyze_MultipartUpload(t *testing.T) {
	rec := doMultipart(t, newTestServer(t), "resume.txt",
		"Jane Smith\njane@x.com\nI use docker every day.",
		"Looking for docker skills.")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Jane Smith", resp.Result.ExtractedName)
	assert.Equal(t, []string{"docker"}, resp.Result.MatchedSkills)
}

func TestHandleAnalyze_MultipartUnsupportedFile(t *testing.T) {
	rec := doMultipart(t, newTestServer(t), "resume.pdf", "%PDF-1.4", "docker")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported document type")
}

func TestHandleAnalyze_InvalidJSON(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodPost, "/analyze", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_MissingResume(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodPost, "/analyze", `{"job_text":"x"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ResumeText")
}

func TestHandleAnalyze_JobTextAndURLExclusive(t *testing.T) {
	body := `{"resume_text":"x","job_text":"y","job_url":"https://example.com/job"}`
	rec := doJSON(t, newTestServer(t), http.MethodPost, "/analyze", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_JobURL(t *testing.T) {
	posting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div class="job-description">We need python.</div></body></html>`))
	}))
	defer posting.Close()

	body := `{"resume_text":"I write python.","job_url":"` + posting.URL + `"}`
	rec := doJSON(t, newTestServer(t), http.MethodPost, "/analyze", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"python"}, resp.Result.MatchedSkills)
}

func TestHandleAnalyze_JobURLFetchFailure(t *testing.T) {
	posting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer posting.Close()

	body := `{"resume_text":"x","job_url":"` + posting.URL + `"}`
	rec := doJSON(t, newTestServer(t), http.MethodPost, "/analyze", body)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleGetAnalysis_NoDatabase(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodGet,
		"/analyses/"+types.NewJobDescription("", "", "en").ID.String(), "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleGetAnalysis_BadID(t *testing.T) {
	// The persistence check runs before ID parsing
	rec := doJSON(t, newTestServer(t), http.MethodGet, "/analyses/not-a-uuid", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
