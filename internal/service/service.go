package service

import (
	"context"
	"errors"

	"github.com/MaxRadzey/translate-client/internal/locale"
	"github.com/MaxRadzey/translate-client/internal/logger"
	"github.com/MaxRadzey/translate-client/internal/models"
	"github.com/MaxRadzey/translate-client/internal/upstream"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Translator переводит текст в одну локаль.
type Translator interface {
	Translate(ctx context.Context, target locale.Locale, text string) (string, error)
}

type Service struct {
	translator Translator
	targets    []locale.Locale
}

func NewService(translator Translator) *Service {
	return &Service{
		translator: translator,
		targets:    locale.Targets(),
	}
}

// Translate переводит input во все целевые локали параллельно и дожидается всех вызовов.
// Если хотя бы один вызов завершился ошибкой, возвращается *UpstreamError,
// а остальные переводы отбрасываются. Кэширования нет: каждый вызов идет в апстрим.
func (s *Service) Translate(ctx context.Context, input string) (*models.TranslationResult, error) {
	texts := make([]string, len(s.targets))

	// Group без WithContext: ошибка одного вызова не отменяет остальные.
	var g errgroup.Group
	for i, target := range s.targets {
		g.Go(func() error {
			text, err := s.translator.Translate(ctx, target, input)
			if err != nil {
				return newUpstreamError(target, err)
			}
			texts[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	translations := make(map[locale.Locale]string, len(s.targets))
	for i, target := range s.targets {
		translations[target] = texts[i]
	}

	return &models.TranslationResult{
		Input:        input,
		Translations: translations,
	}, nil
}

func newUpstreamError(target locale.Locale, err error) *UpstreamError {
	upstreamErr := &UpstreamError{Locale: target, Err: err}

	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) {
		upstreamErr.StatusCode = statusErr.StatusCode
	}

	logger.Log.Warn("Translate call failed",
		zap.String("locale", target.String()),
		zap.Int("status", upstreamErr.StatusCode),
		zap.Error(err),
	)

	return upstreamErr
}
