package match

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"
)

// Result is the normalized scoring outcome. Score stays nil when the
// scoring service returned neither match_score nor score.
type Result struct {
	Summary string   `json:"summary"`
	Score   *float64 `json:"score,omitempty"`
}

// Scorer rates a resume against a job description.
type Scorer interface {
	Score(ctx context.Context, resume []byte, jobDescription string) (Result, error)
}

// HTTPScorer talks to the external scoring service over multipart HTTP.
type HTTPScorer struct {
	Endpoint string
	Client   *http.Client
}

func NewHTTPScorer(endpoint string, timeout time.Duration) *HTTPScorer {
	return &HTTPScorer{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: timeout},
	}
}

// scoringResponse accepts both field names the service has used; the
// normalized Result prefers match_score.
type scoringResponse struct {
	Summary    string   `json:"summary"`
	MatchScore *float64 `json:"match_score"`
	Score      *float64 `json:"score"`
}

func (s *HTTPScorer) Score(ctx context.Context, resume []byte, jobDescription string) (Result, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="resume"; filename="resume.pdf"`)
	header.Set("Content-Type", "application/pdf")
	part, err := writer.CreatePart(header)
	if err != nil {
		return Result{}, err
	}
	if _, err := part.Write(resume); err != nil {
		return Result{}, err
	}
	if err := writer.WriteField("job_description", jobDescription); err != nil {
		return Result{}, err
	}
	if err := writer.Close(); err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, body)
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	res, err := s.Client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		details, _ := io.ReadAll(io.LimitReader(res.Body, 64<<10))
		return Result{}, &ModelError{Status: res.StatusCode, Details: string(details)}
	}

	var raw scoringResponse
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		return Result{}, err
	}

	result := Result{Summary: raw.Summary}
	if raw.MatchScore != nil {
		result.Score = raw.MatchScore
	} else {
		result.Score = raw.Score
	}
	return result, nil
}

var _ Scorer = (*HTTPScorer)(nil)
