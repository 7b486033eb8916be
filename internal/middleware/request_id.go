package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	log "github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-Id"

const requestIDKey = "request_id"

// RequestLogger assigns each request an id (honoring an incoming
// X-Request-Id) and writes one structured log line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			id, err := uuid.NewV4()
			if err != nil {
				log.Errorf("failed to generate request ID for %v: %v", c.ClientIP(), err)
			} else {
				reqID = id.String()
			}
		}
		c.Writer.Header().Set(RequestIDHeader, reqID)
		c.Set(requestIDKey, reqID)

		start := time.Now()
		c.Next()

		log.WithFields(log.Fields{
			"request_id": reqID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"elapsed":    time.Since(start).String(),
		}).Info("request handled")
	}
}
