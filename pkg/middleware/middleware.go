// Package middleware 提供 Gin 的通用中间件（日志、panic recover、CORS、缓存控制、限流）
package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wyfcoding/storefront/pkg/logger"
)

// RequestIDKey context key for request ID
const RequestIDKey = "request_id"

// TraceIDKey context key for trace ID
const TraceIDKey = "trace_id"

// GinLoggingMiddleware Gin 日志中间件
func GinLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		traceID := c.GetHeader("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Set(TraceIDKey, traceID)

		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method
		clientIP := c.ClientIP()

		ctx := logger.ContextWithTrace(c.Request.Context(), traceID, requestID)
		c.Request = c.Request.WithContext(ctx)

		logger.Info(ctx, "HTTP request started",
			"request_id", requestID,
			"method", method,
			"path", path,
			"client_ip", clientIP,
		)

		c.Next()

		duration := time.Since(start)
		logger.Info(ctx, "HTTP request completed",
			"request_id", requestID,
			"method", method,
			"path", path,
			"status_code", c.Writer.Status(),
			"response_size", c.Writer.Size(),
			"duration", duration,
		)
	}
}

// GinRecoveryMiddleware Gin panic 恢复中间件
func GinRecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID, _ := c.Get(RequestIDKey)

				logger.Error(c.Request.Context(), "HTTP request panicked",
					"request_id", requestID,
					"panic", err,
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":      "Internal server error",
					"request_id": requestID,
				})
			}
		}()
		c.Next()
	}
}

// GinCORSMiddleware Gin CORS 中间件
func GinCORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Trace-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// CacheControlMiddleware 为所有写操作响应附加禁用缓存的响应头
func CacheControlMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Writer.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			c.Writer.Header().Set("Pragma", "no-cache")
			c.Writer.Header().Set("Expires", "0")
		}
		c.Next()
	}
}
