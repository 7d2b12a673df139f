package match

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"skillbridge/internal/shared/metrics"
)

// maxResumeFetchBytes caps the downloaded resume at 10 MiB.
const maxResumeFetchBytes = 10 << 20

// Service runs the match workflow: download the stored resume, hand it to
// the scoring service, and normalize the answer.
type Service struct {
	Scorer Scorer
	Fetch  *http.Client
}

func NewService(scorer Scorer, fetchTimeout time.Duration) *Service {
	return &Service{
		Scorer: scorer,
		Fetch:  &http.Client{Timeout: fetchTimeout},
	}
}

func (s *Service) Summarize(ctx context.Context, resumeURL, jobDescription string) (Result, error) {
	if strings.TrimSpace(resumeURL) == "" || strings.TrimSpace(jobDescription) == "" {
		return Result{}, ErrInvalidInput
	}

	metrics.IncMatchStarted()
	started := time.Now()
	defer func() {
		metrics.ObserveMatchDurationMs(float64(time.Since(started).Milliseconds()))
	}()

	resume, err := s.fetchResume(ctx, resumeURL)
	if err != nil {
		metrics.IncMatchFailed()
		return Result{}, err
	}

	result, err := s.Scorer.Score(ctx, resume, jobDescription)
	if err != nil {
		metrics.IncMatchFailed()
		return Result{}, err
	}

	metrics.IncMatchCompleted()
	return result, nil
}

func (s *Service) fetchResume(ctx context.Context, resumeURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resumeURL, nil)
	if err != nil {
		return nil, &FetchError{URL: resumeURL, Err: err}
	}

	res, err := s.Fetch.Do(req)
	if err != nil {
		return nil, &FetchError{URL: resumeURL, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &FetchError{URL: resumeURL, Status: res.StatusCode}
	}

	payload, err := io.ReadAll(io.LimitReader(res.Body, maxResumeFetchBytes))
	if err != nil {
		return nil, &FetchError{URL: resumeURL, Err: err}
	}
	return payload, nil
}
