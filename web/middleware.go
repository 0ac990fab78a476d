package web

import (
	"time"

	"github.com/gin-gonic/gin"

	"iris-eda/rock-share/base/logger"
)

// requestLogger 每个请求一行日志
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}
		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		switch {
		case status >= 500:
			logger.Errorf("%s %s %d %v %s", c.Request.Method, path, status, latency, c.Errors.String())
		case status >= 400:
			logger.Warnf("%s %s %d %v", c.Request.Method, path, status, latency)
		default:
			logger.Infof("%s %s %d %v", c.Request.Method, path, status, latency)
		}
	}
}
