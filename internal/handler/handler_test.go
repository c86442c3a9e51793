package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MaxRadzey/translate-client/internal/handler"
	"github.com/MaxRadzey/translate-client/internal/locale"
	"github.com/MaxRadzey/translate-client/internal/router"
	"github.com/MaxRadzey/translate-client/internal/service"
	testupstream "github.com/MaxRadzey/translate-client/internal/testing"
	"github.com/MaxRadzey/translate-client/internal/upstream"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var greetings = map[locale.Locale]string{
	locale.Chinese: "你好",
	locale.Malay:   "Helo",
	locale.Tamil:   "வணக்கம்",
}

// setupTestRouter создает роутер, который ходит в фейковый апстрим.
func setupTestRouter(t *testing.T, fake *testupstream.FakeUpstream) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client, err := upstream.NewClient(fake.Endpoint(), time.Second)
	require.NoError(t, err)

	h := &handler.Handler{Service: service.NewService(client.WithHTTPClient(fake.Client()))}
	return router.SetupRouter(h)
}

func formRequest(form url.Values, accept string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	return req
}

func TestIndex(t *testing.T) {
	fake := testupstream.NewFakeUpstreamWithTexts(greetings)
	defer fake.Close()
	rt := setupTestRouter(t, fake)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "<title>translate-client</title>")
	assert.Contains(t, body, `<textarea name="input"></textarea>`)
	for _, label := range []string{"Chinese", "Malay", "Tamil"} {
		assert.Contains(t, body, "<h3>"+label+"</h3>")
	}
	assert.Zero(t, fake.CallCount(), "rendering the form must not call the upstream")
}

func TestTranslate(t *testing.T) {
	type want struct {
		code     int
		response string
		calls    int
	}

	tests := []struct {
		name    string
		form    url.Values
		replies map[locale.Locale]testupstream.Reply
		want    want
	}{
		{
			name: "Test #1 send valid request",
			form: url.Values{"input": {"Hello"}},
			replies: map[locale.Locale]testupstream.Reply{
				locale.Chinese: {Text: "你好"},
				locale.Malay:   {Text: "Helo"},
				locale.Tamil:   {Text: "வணக்கம்"},
			},
			want: want{
				code:     http.StatusOK,
				response: `{"ok":true,"input":"Hello","zh_SG":"你好","ms_SG":"Helo","ta_SG":"வணக்கம்"}`,
				calls:    3,
			},
		},
		{
			name: "Test #2 empty input is forwarded",
			form: url.Values{"input": {""}},
			replies: map[locale.Locale]testupstream.Reply{
				locale.Chinese: {Text: ""},
				locale.Malay:   {Text: ""},
				locale.Tamil:   {Text: ""},
			},
			want: want{
				code:     http.StatusOK,
				response: `{"ok":true,"input":"","zh_SG":"","ms_SG":"","ta_SG":""}`,
				calls:    3,
			},
		},
		{
			name: "Test #3 missing input",
			form: url.Values{"text": {"Hello"}},
			want: want{
				code:     http.StatusBadRequest,
				response: "missing input parameter",
				calls:    0,
			},
		},
		{
			name: "Test #4 one upstream call fails",
			form: url.Values{"input": {"Hello"}},
			replies: map[locale.Locale]testupstream.Reply{
				locale.Chinese: {Text: "你好"},
				locale.Malay:   {Text: "Helo"},
				locale.Tamil:   {Status: http.StatusInternalServerError},
			},
			want: want{
				code:     http.StatusBadGateway,
				response: "Translation service error!",
				calls:    3,
			},
		},
		{
			name: "Test #5 malformed upstream body",
			form: url.Values{"input": {"Hello"}},
			replies: map[locale.Locale]testupstream.Reply{
				locale.Chinese: {Body: `{"data":{"translations":[{}]}}`},
				locale.Malay:   {Text: "Helo"},
				locale.Tamil:   {Text: "வணக்கம்"},
			},
			want: want{
				code:     http.StatusBadGateway,
				response: "Translation service error!",
				calls:    3,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fake := testupstream.NewFakeUpstream(test.replies)
			defer fake.Close()
			rt := setupTestRouter(t, fake)

			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, formRequest(test.form, ""))

			require.Equal(t, test.want.code, rec.Code, "Код ответа не совпадает с ожидаемым")
			if test.want.code == http.StatusOK {
				assert.JSONEq(t, test.want.response, rec.Body.String())
			} else {
				assert.Equal(t, test.want.response, rec.Body.String())
			}
			assert.Equal(t, test.want.calls, fake.CallCount())
		})
	}
}

func TestTranslateRendersPageForHTMLClients(t *testing.T) {
	fake := testupstream.NewFakeUpstreamWithTexts(greetings)
	defer fake.Close()
	rt := setupTestRouter(t, fake)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, formRequest(url.Values{"input": {"Hello"}}, "text/html,application/xhtml+xml,*/*;q=0.8"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, `<textarea name="input">Hello</textarea>`)
	assert.Contains(t, body, `data-text="你好"`)
	assert.Contains(t, body, `data-text="Helo"`)
	assert.Contains(t, body, `data-text="வணக்கம்"`)
}

func TestTranslateRepeatedSubmissionsAreNotCached(t *testing.T) {
	fake := testupstream.NewFakeUpstreamWithTexts(greetings)
	defer fake.Close()
	rt := setupTestRouter(t, fake)

	for _, input := range []string{"Hello", "Hello again"} {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, formRequest(url.Values{"input": {input}}, "application/json"))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"input":"`+input+`"`)
	}

	assert.Equal(t, 6, fake.CallCount())
}

func TestPing(t *testing.T) {
	fake := testupstream.NewFakeUpstreamWithTexts(greetings)
	defer fake.Close()
	rt := setupTestRouter(t, fake)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	fake := testupstream.NewFakeUpstreamWithTexts(greetings)
	defer fake.Close()
	rt := setupTestRouter(t, fake)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method not allowed!", rec.Body.String())
}
