package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	ginrender "github.com/gin-gonic/gin/render"
	"github.com/rs/xid"
	"go.uber.org/zap"

	"github.com/Bitlatte/petroweb/internal/render"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// requestID tags each request with an id, reusing one sent by a proxy.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = xid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
			zap.String("request_id", c.GetString(requestIDKey)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			log.Warn("request", fields...)
		default:
			log.Debug("request", fields...)
		}
	}
}

// noCache stops browsers caching pages while content is being edited.
func noCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Next()
	}
}

// htmlRender lets c.HTML execute the site's page templates.
type htmlRender struct {
	r *render.Renderer
}

func (h htmlRender) Instance(name string, data any) ginrender.Render {
	return htmlInstance{r: h.r, name: name, data: data}
}

type htmlInstance struct {
	r    *render.Renderer
	name string
	data any
}

func (i htmlInstance) Render(w http.ResponseWriter) error {
	i.WriteContentType(w)
	return i.r.Render(w, i.name, i.data)
}

func (i htmlInstance) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if len(header["Content-Type"]) == 0 {
		header["Content-Type"] = []string{"text/html; charset=utf-8"}
	}
}
