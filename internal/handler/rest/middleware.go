package rest

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mpetrashin/go-web-fundamentals/internal/logger"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID assigns every request a trace id, honoring one supplied by
// the caller, and attaches a child logger carrying it to the request
// context. The trace id is echoed back in the response headers.
func (h *Handler) withTraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(ctx zerolog.Context) zerolog.Context {
			return ctx.Str("trace_id", traceID)
		})
		c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))

		c.Header(traceIDHeader, traceID)
		c.Next()
	}
}

// withLogging emits one structured log line per request. Gin's response
// writer already tracks status and size, so no decorator is needed here.
func (h *Handler) withLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromRequest(c.Request)

		start := time.Now()

		uri := c.Request.RequestURI
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", c.Writer.Status()).
			Dur("duration", duration).
			Int("size", c.Writer.Size()).
			Send()
	}
}
