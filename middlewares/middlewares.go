package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
)

// RequestLogger tags every request with an id and logs its outcome.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := uuid.Must(uuid.NewV4()).String()
		c.Set("request_id", requestId)
		c.Writer.Header().Set("X-Request-Id", requestId)

		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"request_id": requestId,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"elapsed":    time.Since(start).String(),
		}).Info("request completed")
	}
}
