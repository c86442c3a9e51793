package handler

import (
	"net/http"

	"github.com/MaxRadzey/translate-client/internal/models"
	"github.com/MaxRadzey/translate-client/internal/service"
	"github.com/MaxRadzey/translate-client/internal/view"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type Handler struct {
	Service *service.Service
}

// Index отдает страницу формы в начальном состоянии.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, view.IndexTemplate, view.Idle().Page())
}

// Translate хэндлер, обрабатывает POST-запросы формы с полем input,
// переводит текст во все целевые локали и возвращает JSON
// {ok, input, zh_SG, ms_SG, ta_SG}. Если клиент предпочитает text/html
// (обычная отправка формы без скрипта), отдается отрисованная страница.
// Ошибки передаются в c.Errors и оформляются middleware.Errors.
func (h *Handler) Translate(c *gin.Context) {
	input, ok := c.GetPostForm("input")
	if !ok {
		_ = c.Error(&service.RequestError{Field: "input"})
		c.Abort()
		return
	}

	result, err := h.Service.Translate(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	switch c.NegotiateFormat(binding.MIMEJSON, binding.MIMEHTML) {
	case binding.MIMEHTML:
		c.HTML(http.StatusOK, view.IndexTemplate, view.Displaying(result).Page())
	default:
		c.JSON(http.StatusOK, models.NewResponse(result))
	}
}

// Ping отвечает pong, если сервер запущен.
func (h *Handler) Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
