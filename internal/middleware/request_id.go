package middleware

import (
	"github.com/MaxRadzey/translate-client/internal/contextkeys"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader содержит идентификатор запроса.
const RequestIDHeader = "X-Request-ID"

// RequestID берет идентификатор запроса из заголовка X-Request-ID
// или генерирует новый, кладет его в контекст и возвращает в ответе.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		c.Set(contextkeys.RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}
