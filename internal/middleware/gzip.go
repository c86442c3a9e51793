package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/MaxRadzey/translate-client/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type compressWriter struct {
	gin.ResponseWriter
	Writer *gzip.Writer
}

func (c *compressWriter) Write(data []byte) (int, error) {
	return c.Writer.Write(data)
}

func (c *compressWriter) Close() error {
	return c.Writer.Close()
}

func (c *compressWriter) WriteString(s string) (int, error) {
	return c.Writer.Write([]byte(s))
}

// Gzip обрабатывает сжатие и распаковку gzip для HTTP запросов и ответов.
func Gzip() gin.HandlerFunc {
	return func(c *gin.Context) {
		contentEncoding := c.GetHeader("Content-Encoding")
		if strings.Contains(contentEncoding, "gzip") {
			reader, err := gzip.NewReader(c.Request.Body)
			if err != nil {
				logger.Log.Debug("Invalid gzip request body", zap.Error(err))
				c.AbortWithStatus(http.StatusBadRequest)
				return
			}

			defer func() {
				if err := reader.Close(); err != nil {
					logger.Log.Warn("Error closing gzip reader", zap.Error(err))
				}
			}()
			c.Request.Body = reader
			c.Request.Header.Del("Content-Encoding")
			c.Request.ContentLength = -1
		}

		acceptEncoding := c.GetHeader("Accept-Encoding")
		if strings.Contains(acceptEncoding, "gzip") {
			gz := gzip.NewWriter(c.Writer)
			defer func() {
				if err := gz.Close(); err != nil {
					logger.Log.Warn("Error closing gzip writer", zap.Error(err))
				}
			}()
			c.Writer = &compressWriter{Writer: gz, ResponseWriter: c.Writer}
			c.Header("Content-Encoding", "gzip")
			c.Header("Vary", "Accept-Encoding")
		}

		c.Next()
	}
}
