package match

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillbridge/internal/shared/server/respond"
	"skillbridge/internal/shared/telemetry"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ml/summarize", h.summarize)
}

type summarizeRequest struct {
	ResumeURL      string `json:"resumeUrl"`
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) summarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing resumeUrl or jobDescription")
		return
	}

	result, err := h.Svc.Summarize(c.Request.Context(), req.ResumeURL, req.JobDescription)
	if err != nil {
		var fetchErr *FetchError
		var modelErr *ModelError
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Missing resumeUrl or jobDescription")
		case errors.As(err, &fetchErr):
			respond.Error(c, http.StatusBadRequest, "resume_fetch_failed", "Failed to download resume PDF")
		case errors.As(err, &modelErr):
			telemetry.Error("match.model_error", map[string]any{
				"status":     modelErr.Status,
				"request_id": c.GetString("requestId"),
			})
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":   "ML model error",
				"details": modelErr.Details,
			})
		default:
			telemetry.Error("match.internal_error", map[string]any{
				"error":      err.Error(),
				"request_id": c.GetString("requestId"),
			})
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal server error",
				"details": err.Error(),
			})
		}
		return
	}

	respond.OK(c, result)
}
