package service

import (
	"fmt"

	"github.com/MaxRadzey/translate-client/internal/locale"
)

// RequestError — в запросе отсутствует обязательное поле.
type RequestError struct {
	Field string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("missing %s parameter", e.Field)
}

// UpstreamError — один из вызовов апстрима завершился неудачно.
// StatusCode равен 0, если ответ не был получен или код был успешным,
// но тело не прошло проверку.
type UpstreamError struct {
	Locale     locale.Locale
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream error for %s: status %d", e.Locale, e.StatusCode)
	}
	return fmt.Sprintf("upstream error for %s: %v", e.Locale, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
