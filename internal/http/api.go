package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"edunova/internal/service"
)

// TokenService mints and resolves bearer tokens.
type TokenService interface {
	Issue(userID int64) (string, time.Time, error)
	Resolve(raw string) (int64, error)
}

// Handler wires HTTP routes to domain services.
type Handler struct {
	users    service.UserService
	tokens   TokenService
	content  service.ContentService
	settings service.SettingsService
	progress service.ProgressService
	logger   logrus.FieldLogger
}

// Services lists the collaborators a Handler dispatches to.
type Services struct {
	Users    service.UserService
	Tokens   TokenService
	Content  service.ContentService
	Settings service.SettingsService
	Progress service.ProgressService
}

func NewHandler(s Services, logger logrus.FieldLogger) *Handler {
	return &Handler{
		users:    s.Users,
		tokens:   s.Tokens,
		content:  s.Content,
		settings: s.Settings,
		progress: s.Progress,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestLogger(h.logger))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		})

		auth := api.Group("/auth")
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.GET("/me", h.requireAuth(), h.me)

		api.GET("/documents", h.listDocuments)
		api.GET("/documents/:id", h.getDocument)
		api.GET("/videos", h.listVideos)
		api.GET("/videos/:id", h.getVideo)

		private := api.Group("", h.requireAuth())
		private.GET("/settings", h.getSettings)
		private.PUT("/settings", h.updateSettings)
		private.GET("/progress", h.listProgress)
		private.POST("/progress", h.recordProgress)
		private.GET("/stats", h.stats)
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
