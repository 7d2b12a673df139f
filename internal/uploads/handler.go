package uploads

import (
	"bytes"
	"io"
	"mime"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ledongthuc/pdf"

	"skillbridge/internal/shared/server/respond"
	"skillbridge/internal/shared/storage/object"
)

// maxResumeBytes caps uploads at 10 MiB.
const maxResumeBytes = 10 << 20

type Handler struct {
	Store object.ObjectStore
}

func NewHandler(store object.ObjectStore) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload/resume", h.uploadResume)
}

// RegisterFileRoutes serves stored resumes back out. S3-stored resumes are
// normally fetched from the bucket URL directly, but the route works for
// either backend.
func (h *Handler) RegisterFileRoutes(rg *gin.RouterGroup) {
	rg.GET("/files/*storageKey", h.serveFile)
}

func (h *Handler) serveFile(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("storageKey"), "/")
	if key == "" {
		respond.Error(c, http.StatusNotFound, "not_found", "File not found")
		return
	}

	rc, err := h.Store.Open(c.Request.Context(), key)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "File not found")
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}

func (h *Handler) uploadResume(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	userID := c.PostForm("userId")
	if err != nil || userID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "File and userId are required")
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(io.LimitReader(file, maxResumeBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}
	if len(payload) > maxResumeBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "File too large")
		return
	}

	if strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		if _, err := pdf.NewReader(bytes.NewReader(payload), int64(len(payload))); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid PDF file")
			return
		}
	}

	stored, err := h.Store.SaveResume(c.Request.Context(), userID, header.Filename, bytes.NewReader(payload))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	respond.OK(c, gin.H{"url": stored.URL})
}
