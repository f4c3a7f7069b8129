package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"edunova/internal/domain"
)

func filterFromQuery(c *gin.Context) domain.ContentFilter {
	return domain.ContentFilter{
		Search:  c.Query("search"),
		Subject: c.Query("subject"),
		Level:   c.Query("level"),
		DocType: domain.DocumentType(c.Query("type")),
	}
}

func (h *Handler) listDocuments(c *gin.Context) {
	docs, err := h.content.SearchDocuments(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]DocumentResponse, len(docs))
	for i := range docs {
		resp[i] = documentToResponse(docs[i])
	}
	c.JSON(http.StatusOK, gin.H{"documents": resp})
}

func (h *Handler) getDocument(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		badRequest(c, "invalid document id")
		return
	}

	doc, err := h.content.GetDocument(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, documentToResponse(*doc))
}

func (h *Handler) listVideos(c *gin.Context) {
	filter := filterFromQuery(c)
	filter.DocType = ""

	videos, err := h.content.SearchVideos(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]VideoResponse, len(videos))
	for i := range videos {
		resp[i] = videoToResponse(videos[i])
	}
	c.JSON(http.StatusOK, gin.H{"videos": resp})
}

func (h *Handler) getVideo(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		badRequest(c, "invalid video id")
		return
	}

	v, err := h.content.GetVideo(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, videoToResponse(*v))
}
