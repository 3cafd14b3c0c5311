package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestLogger writes one entry per request. Successful requests to
// quietRoutes (health probes) drop to debug level.
func RequestLogger(logger *zap.Logger, quietRoutes ...string) gin.HandlerFunc {
	quiet := make(map[string]struct{}, len(quietRoutes))
	for _, route := range quietRoutes {
		quiet[route] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := levelForStatus(status)
		if _, ok := quiet[c.FullPath()]; ok && level == zapcore.InfoLevel {
			level = zapcore.DebugLevel
		}

		entry := logger.Check(level, "http request")
		if entry == nil {
			return
		}

		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.String("request_id", GetRequestID(c)),
			zap.String("lang", GetLang(c)),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
			fields = append(fields, zap.Strings("errors", errs.Errors()))
		}
		entry.Write(fields...)
	}
}

func levelForStatus(status int) zapcore.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zapcore.ErrorLevel
	case status >= http.StatusBadRequest:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}
