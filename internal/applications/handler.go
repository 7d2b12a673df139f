package applications

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillbridge/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/applications", h.apply)
	rg.GET("/applications", h.listByCandidate)
	rg.GET("/jobs/:jobId/applicants", h.listApplicants)
}

type applyRequest struct {
	CandidateID string `json:"candidateId"`
	JobID       string `json:"jobId"`
	ResumeURL   string `json:"resumeUrl"`
	CoverLetter string `json:"coverLetter"`
}

func (h *Handler) apply(c *gin.Context) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing required fields")
		return
	}

	application, err := h.Svc.Apply(c.Request.Context(), req.CandidateID, req.JobID, req.ResumeURL, req.CoverLetter)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Missing required fields")
		case errors.Is(err, ErrAlreadyApplied):
			respond.Error(c, http.StatusBadRequest, "conflict", "Already applied to this job")
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Internal Server Error")
		}
		return
	}

	respond.Created(c, gin.H{"application": application})
}

func (h *Handler) listByCandidate(c *gin.Context) {
	candidateID := c.Query("candidateId")
	if candidateID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing candidateId")
		return
	}

	refs, err := h.Svc.ListByCandidate(c.Request.Context(), candidateID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Internal Server Error")
		return
	}

	respond.OK(c, gin.H{"applications": refs})
}

func (h *Handler) listApplicants(c *gin.Context) {
	jobID := c.Param("jobId")
	if jobID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing jobId")
		return
	}

	applicants, err := h.Svc.ListByJob(c.Request.Context(), jobID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Internal Server Error")
		return
	}

	respond.OK(c, gin.H{"applicants": applicants})
}
