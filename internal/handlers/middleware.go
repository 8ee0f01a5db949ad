package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger logs one line per request once the handler chain has run.
// The websocket upgrade is logged when the stream closes.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	if h.log == nil {
		return
	}
	fields := []interface{}{
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"latency", time.Since(start),
	}
	if id := c.Param("id"); id != "" {
		fields = append(fields, "chamber", id)
	}
	if len(c.Errors) > 0 {
		fields = append(fields, "errors", c.Errors.String())
	}

	switch {
	case c.Writer.Status() >= 500:
		h.log.Errorw("http_request", fields...)
	case c.Writer.Status() >= 400:
		h.log.Warnw("http_request", fields...)
	default:
		h.log.Debugw("http_request", fields...)
	}
}
