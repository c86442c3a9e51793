package upstream

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse — тело ответа не соответствует ожидаемой схеме.
var ErrMalformedResponse = errors.New("malformed translate response")

// StatusError — апстрим ответил кодом вне диапазона 2xx.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code in translate response: %d", e.StatusCode)
}
