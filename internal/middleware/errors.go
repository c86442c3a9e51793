package middleware

import (
	"errors"
	"net/http"

	"github.com/MaxRadzey/translate-client/internal/contextkeys"
	"github.com/MaxRadzey/translate-client/internal/logger"
	"github.com/MaxRadzey/translate-client/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Errors превращает последнюю ошибку из c.Errors
// в простой текстовый ответ. Структурированного JSON с ошибкой нет.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		status, message := statusFor(last.Err)
		logger.Log.Error("Request failed",
			zap.Int("status", status),
			zap.String("request_id", c.GetString(contextkeys.RequestIDKey)),
			zap.Error(last.Err),
		)

		if c.Writer.Written() {
			return
		}
		c.String(status, message)
	}
}

func statusFor(err error) (int, string) {
	var requestErr *service.RequestError
	if errors.As(err, &requestErr) {
		return http.StatusBadRequest, requestErr.Error()
	}

	var upstreamErr *service.UpstreamError
	if errors.As(err, &upstreamErr) {
		return http.StatusBadGateway, "Translation service error!"
	}

	return http.StatusInternalServerError, "Internal server error!"
}
