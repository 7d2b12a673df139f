package profiles

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

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
	rg.POST("/onboard/candidate", h.onboardCandidate)
	rg.POST("/onboard/recruiter", h.onboardRecruiter)
	rg.GET("/onboard/status", h.onboardStatus)
}

// flexibleInt accepts both a JSON number and a quoted number; the web form
// sends age as a string and the API clients send an integer.
type flexibleInt int

func (f *flexibleInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return err
	}
	*f = flexibleInt(n)
	return nil
}

type onboardRequest struct {
	UserID      string      `json:"userId"`
	Name        string      `json:"name"`
	Age         flexibleInt `json:"age"`
	CollegeName string      `json:"collegeName"`
	CompanyName string      `json:"companyName"`
}

func (r onboardRequest) age() int {
	return int(r.Age)
}

func (h *Handler) onboardCandidate(c *gin.Context) {
	var req onboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "All fields are required.")
		return
	}

	candidate, err := h.Svc.OnboardCandidate(c.Request.Context(), req.UserID, req.Name, req.age(), req.CollegeName)
	if err != nil {
		h.writeOnboardError(c, err)
		return
	}

	respond.Created(c, gin.H{"candidate": candidate})
}

func (h *Handler) onboardRecruiter(c *gin.Context) {
	var req onboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "All fields are required.")
		return
	}

	recruiter, err := h.Svc.OnboardRecruiter(c.Request.Context(), req.UserID, req.Name, req.age(), req.CompanyName)
	if err != nil {
		h.writeOnboardError(c, err)
		return
	}

	respond.Created(c, gin.H{"recruiter": recruiter})
}

func (h *Handler) onboardStatus(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing userId")
		return
	}

	onboarded, role, err := h.Svc.Status(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Internal Server Error")
		return
	}

	body := gin.H{"onboarded": onboarded}
	if role != "" {
		body["role"] = role
	}
	respond.OK(c, body)
}

func (h *Handler) writeOnboardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "All fields are required.")
	case errors.Is(err, ErrAlreadyOnboarded):
		respond.Error(c, http.StatusBadRequest, "conflict", "User already onboarded")
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Internal Server Error")
	}
}
