package app

import (
	"github.com/MaxRadzey/translate-client/internal/config"
	"github.com/MaxRadzey/translate-client/internal/handler"
	"github.com/MaxRadzey/translate-client/internal/logger"
	"github.com/MaxRadzey/translate-client/internal/router"
	"github.com/MaxRadzey/translate-client/internal/service"
	"github.com/MaxRadzey/translate-client/internal/upstream"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Run запускает http сервер.
func Run(AppConfig *config.Config) error {
	if err := AppConfig.Validate(); err != nil {
		return err
	}

	if err := logger.Initialize(AppConfig.LogLevel); err != nil {
		return err
	}
	defer func() {
		_ = logger.Log.Sync()
	}()

	r, err := NewRouter(AppConfig)
	if err != nil {
		return err
	}

	logger.Log.Info("Starting server",
		zap.String("address", AppConfig.Address),
		zap.String("upstream", AppConfig.UpstreamURL),
		zap.Duration("upstream_timeout", AppConfig.UpstreamTimeout),
	)

	return r.Run(AppConfig.Address)
}

// NewRouter собирает клиент апстрима, сервис и хэндлеры в готовый роутер.
func NewRouter(AppConfig *config.Config) (*gin.Engine, error) {
	client, err := upstream.NewClient(AppConfig.UpstreamURL, AppConfig.UpstreamTimeout)
	if err != nil {
		return nil, err
	}

	h := &handler.Handler{Service: service.NewService(client)}

	return router.SetupRouter(h), nil
}
