package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ForceHTTPS permanently redirects plain-http requests to https, except for
// requests addressed to localhost. X-Forwarded-Proto from a proxy is trusted.
func ForceHTTPS() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := c.Request
		if req.TLS != nil ||
			strings.EqualFold(req.Header.Get("X-Forwarded-Proto"), "https") ||
			strings.HasPrefix(req.Host, "localhost:") {
			c.Next()
			return
		}
		c.Redirect(http.StatusMovedPermanently, "https://"+req.Host+req.URL.RequestURI())
		c.Abort()
	}
}

func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	log = log.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
