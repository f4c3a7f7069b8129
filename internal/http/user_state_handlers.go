package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"edunova/internal/domain"
	"edunova/internal/service"
)

type progressRequest struct {
	ContentType string  `json:"contentType"`
	ContentID   int64   `json:"contentId"`
	Progress    float64 `json:"progress"`
	Completed   bool    `json:"completed"`
}

func (h *Handler) getSettings(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settingsToResponse(*settings))
}

func (h *Handler) updateSettings(c *gin.Context) {
	var patch domain.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	settings, err := h.settings.Update(c.Request.Context(), currentUserID(c), patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Settings updated successfully",
		"settings": settingsToResponse(*settings),
	})
}

func (h *Handler) listProgress(c *gin.Context) {
	records, err := h.progress.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]ProgressResponse, len(records))
	for i := range records {
		resp[i] = progressToResponse(records[i])
	}
	c.JSON(http.StatusOK, gin.H{"progress": resp})
}

func (h *Handler) recordProgress(c *gin.Context) {
	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	rec, err := h.progress.Upsert(c.Request.Context(), currentUserID(c), service.ProgressInput{
		ContentType: domain.ProgressContentType(req.ContentType),
		ContentID:   req.ContentID,
		Progress:    req.Progress,
		Completed:   req.Completed,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Progress updated successfully",
		"progress": progressToResponse(*rec),
	})
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.progress.Stats(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, statsToResponse(stats))
}
