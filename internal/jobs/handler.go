package jobs

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
	rg.POST("/jobs", h.create)
	rg.GET("/jobs", h.list)
	rg.PUT("/jobs/:jobId", h.update)
	rg.DELETE("/jobs/:jobId", h.remove)
}

type postingRequest struct {
	RecruiterID    string `json:"recruiterId"`
	JobName        string `json:"jobName"`
	JobRole        string `json:"jobRole"`
	JobDescription string `json:"jobDescription"`
	Requirements   string `json:"requirements"`
	Location       string `json:"location"`
	Salary         string `json:"salary"`
}

func (r postingRequest) input() PostingInput {
	return PostingInput{
		RecruiterID:    r.RecruiterID,
		JobName:        r.JobName,
		JobRole:        r.JobRole,
		JobDescription: r.JobDescription,
		Requirements:   r.Requirements,
		Location:       r.Location,
		Salary:         r.Salary,
	}
}

func (h *Handler) create(c *gin.Context) {
	var req postingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing required fields")
		return
	}

	job, err := h.Svc.Create(c.Request.Context(), req.input())
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "Missing required fields")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Internal Server Error")
		return
	}

	respond.Created(c, gin.H{"job": job})
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Internal Server Error")
		return
	}
	respond.OK(c, gin.H{"jobs": list})
}

func (h *Handler) update(c *gin.Context) {
	jobID := c.Param("jobId")

	var req postingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing required fields")
		return
	}

	job, err := h.Svc.Update(c.Request.Context(), jobID, req.input())
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Missing required fields")
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Job not found")
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Internal Server Error")
		}
		return
	}

	respond.OK(c, gin.H{"job": job})
}

func (h *Handler) remove(c *gin.Context) {
	jobID := c.Param("jobId")

	if err := h.Svc.Delete(c.Request.Context(), jobID); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Job not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Internal Server Error")
		return
	}

	respond.OK(c, gin.H{"success": true})
}
