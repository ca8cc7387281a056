package api

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"postal-distance-service/internal/platform/obs"
)

// requestIDMiddleware attaches a unique id to the request context so that
// adapter-level timing logs can be correlated with the request line.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), obs.RequestIDKey, uuid.NewString())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// loggingMiddleware logs end-to-end request duration and response size for
// basic observability.
func loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Milliseconds()
		reqID, _ := c.Request.Context().Value(obs.RequestIDKey).(string)

		log.Printf(
			"req_id=%s method=%s path=%s status=%d bytes=%d dur=%dms",
			reqID, c.Request.Method, c.Request.URL.RequestURI(),
			c.Writer.Status(), c.Writer.Size(), duration,
		)
	}
}
