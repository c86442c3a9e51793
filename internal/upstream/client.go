package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/MaxRadzey/translate-client/internal/locale"
)

// MaxResponseSize ограничивает размер тела ответа апстрима.
const MaxResponseSize = 1 << 20

// Client ходит во внешний API перевода по HTTP.
type Client struct {
	endpoint *url.URL
	source   locale.Locale
	timeout  time.Duration
	http     *http.Client
}

// NewClient создает клиент для эндпоинта вида https://host/api/translate.
// timeout ограничивает каждый отдельный вызов и должен быть положительным.
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	u, err := url.ParseRequestURI(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream endpoint: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.New("invalid upstream endpoint: scheme and host are required")
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("upstream timeout must be positive, got %s", timeout)
	}

	return &Client{
		endpoint: u,
		source:   locale.Source,
		timeout:  timeout,
		http:     &http.Client{},
	}, nil
}

// WithHTTPClient подменяет транспорт (используется в тестах с httptest.Server).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// URL возвращает адрес запроса перевода в указанную локаль.
func (c *Client) URL(target locale.Locale) string {
	u := *c.endpoint
	q := u.Query()
	q.Set("source", c.source.String())
	q.Set("target", target.String())
	u.RawQuery = q.Encode()
	return u.String()
}

// Translate переводит text в локаль target одним POST запросом.
// Возвращает *StatusError при коде вне 2xx и ErrMalformedResponse,
// если тело ответа не содержит data.translations[0].translatedText.
func (c *Client) Translate(ctx context.Context, target locale.Locale, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(translateRequest{Query: text})
	if err != nil {
		return "", fmt.Errorf("failed to encode translate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(target), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create translate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read translate response: %w", err)
	}
	if len(body) > MaxResponseSize {
		return "", fmt.Errorf("%w: body exceeds %d bytes", ErrMalformedResponse, MaxResponseSize)
	}

	return decodeResponse(body)
}
