package router

import (
	"net/http"

	"github.com/MaxRadzey/translate-client/internal/handler"
	"github.com/MaxRadzey/translate-client/internal/logger"
	"github.com/MaxRadzey/translate-client/internal/middleware"
	"github.com/MaxRadzey/translate-client/internal/view"
	"github.com/gin-gonic/gin"
)

// SetupRouter создает и настраивает HTTP роутер со всеми middleware и маршрутами.
func SetupRouter(h *handler.Handler) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.SetHTMLTemplate(view.Templates())

	SetupMiddleware(r)

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(logger.RequestLogger())
	r.Use(logger.ResponseLogger())
	r.Use(middleware.Gzip())
	r.Use(middleware.Errors())

	r.GET("/", h.Index)
	r.POST("/", h.Translate)
	r.GET("/ping", h.Ping)

	return r
}

// SetupMiddleware настраивает middleware для роутера.
func SetupMiddleware(router *gin.Engine) {
	router.NoMethod(func(c *gin.Context) {
		c.String(http.StatusMethodNotAllowed, "Method not allowed!")
	})
}
