package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillbridge/internal/shared/server/respond"
	"skillbridge/internal/shared/sessions"
)

type Handler struct {
	Svc      *Service
	Sessions *sessions.Manager
}

func NewHandler(svc *Service, mgr *sessions.Manager) *Handler {
	return &Handler{Svc: svc, Sessions: mgr}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/signup", h.signup)
	rg.POST("/auth/login", h.login)
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing fields")
		return
	}

	user, err := h.Svc.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Missing fields")
		case errors.Is(err, ErrEmailTaken):
			respond.Error(c, http.StatusBadRequest, "conflict", "User already exists")
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Internal Server Error")
		}
		return
	}

	respond.OK(c, gin.H{"message": "User created", "user": user})
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Invalid credentials")
		return
	}

	user, err := h.Svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Invalid credentials")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Internal Server Error")
		return
	}

	token, err := h.Sessions.Issue(user.ID, user.Email)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Internal Server Error")
		return
	}

	respond.OK(c, gin.H{"token": token, "user": user})
}
