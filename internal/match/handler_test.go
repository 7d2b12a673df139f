package match

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(svc).RegisterRoutes(&router.RouterGroup)
	return router
}

func postSummarize(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/ml/summarize", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSummarizeEndpoint(t *testing.T) {
	files := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	t.Cleanup(files.Close)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"summary":"Great fit","match_score":88}`))
	}))
	t.Cleanup(upstream.Close)

	svc := NewService(NewHTTPScorer(upstream.URL, time.Second), time.Second)
	router := newTestRouter(svc)

	rec := postSummarize(router, `{"resumeUrl":"`+files.URL+`/r.pdf","jobDescription":"build"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Summary string   `json:"summary"`
		Score   *float64 `json:"score"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if resp.Summary != "Great fit" || resp.Score == nil || *resp.Score != 88 {
		t.Fatalf("unexpected response %s", rec.Body.String())
	}
}

func TestSummarizeEndpointValidation(t *testing.T) {
	svc := NewService(NewHTTPScorer("http://localhost:0", time.Second), time.Second)
	router := newTestRouter(svc)

	rec := postSummarize(router, `{"resumeUrl":"","jobDescription":"build"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Missing resumeUrl or jobDescription") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestSummarizeEndpointFetchFailure(t *testing.T) {
	files := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(files.Close)

	svc := NewService(NewHTTPScorer("http://localhost:0", time.Second), time.Second)
	router := newTestRouter(svc)

	rec := postSummarize(router, `{"resumeUrl":"`+files.URL+`/gone.pdf","jobDescription":"build"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Failed to download resume PDF") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestSummarizeEndpointModelError(t *testing.T) {
	files := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	t.Cleanup(files.Close)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("model exploded"))
	}))
	t.Cleanup(upstream.Close)

	svc := NewService(NewHTTPScorer(upstream.URL, time.Second), time.Second)
	router := newTestRouter(svc)

	rec := postSummarize(router, `{"resumeUrl":"`+files.URL+`/r.pdf","jobDescription":"build"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if resp.Error != "ML model error" || resp.Details != "model exploded" {
		t.Fatalf("unexpected response %s", rec.Body.String())
	}
}
