package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"edunova/internal/domain"
)

const (
	requestIDHeader = "X-Request-ID"
	ctxLoggerKey    = "logger"
	ctxUserIDKey    = "userID"
)

func requestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := c.GetHeader(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header(requestIDHeader, reqID)

		entry := logger.WithField("request_id", reqID)
		c.Set(ctxLoggerKey, entry)

		c.Next()

		entry.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"latency":   time.Since(start).String(),
			"client_ip": c.ClientIP(),
		}).Info("request")
	}
}

func loggerFrom(c *gin.Context, fallback logrus.FieldLogger) logrus.FieldLogger {
	if v, ok := c.Get(ctxLoggerKey); ok {
		if l, ok := v.(logrus.FieldLogger); ok {
			return l
		}
	}
	return fallback
}

// requireAuth resolves the bearer token and stores the user id on the
// context. Every failure kind gets the same 401 body.
func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := h.tokens.Resolve(c.GetHeader("Authorization"))
		if err != nil {
			loggerFrom(c, h.logger).WithField("reason", tokenFailureKind(err)).Info("authentication failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func tokenFailureKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingToken):
		return "missing_token"
	case errors.Is(err, domain.ErrExpiredToken):
		return "expired_token"
	case errors.Is(err, domain.ErrInvalidToken):
		return "invalid_token"
	}
	return "unknown"
}

func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(ctxUserIDKey)
}
