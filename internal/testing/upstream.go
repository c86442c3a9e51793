package testing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/MaxRadzey/translate-client/internal/locale"
)

// Reply задает ответ фейкового апстрима для одной локали.
// Если Body пустой, отдается корректный JSON с Text.
type Reply struct {
	Status int
	Text   string
	Body   string
}

// Call хранит зафиксированный вызов апстрима.
type Call struct {
	Method      string
	Source      string
	Target      string
	ContentType string
	Query       string
}

// FakeUpstream подменяет внешний API перевода на httptest.Server.
// Неизвестная целевая локаль получает 400.
type FakeUpstream struct {
	*httptest.Server

	mu      sync.Mutex
	replies map[locale.Locale]Reply
	calls   []Call
	hook    func(target locale.Locale)
}

// NewFakeUpstream поднимает сервер с заданными ответами по локалям.
// Для локали без ответа возвращается 404.
func NewFakeUpstream(replies map[locale.Locale]Reply) *FakeUpstream {
	f := &FakeUpstream{replies: replies}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	return f
}

// NewFakeUpstreamWithTexts создает апстрим, который на все локали отвечает успешно.
func NewFakeUpstreamWithTexts(texts map[locale.Locale]string) *FakeUpstream {
	replies := make(map[locale.Locale]Reply, len(texts))
	for l, text := range texts {
		replies[l] = Reply{Status: http.StatusOK, Text: text}
	}
	return NewFakeUpstream(replies)
}

// Endpoint возвращает URL, который ожидает upstream.Client.
func (f *FakeUpstream) Endpoint() string {
	return f.URL + "/api/translate"
}

// OnCall задает хук, вызываемый до отправки ответа (например, для задержки).
func (f *FakeUpstream) OnCall(hook func(target locale.Locale)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hook = hook
}

// Calls возвращает копию списка вызовов.
func (f *FakeUpstream) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount возвращает количество вызовов.
func (f *FakeUpstream) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *FakeUpstream) serve(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query string `json:"query"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	rawTarget := r.URL.Query().Get("target")

	f.mu.Lock()
	f.calls = append(f.calls, Call{
		Method:      r.Method,
		Source:      r.URL.Query().Get("source"),
		Target:      rawTarget,
		ContentType: r.Header.Get("Content-Type"),
		Query:       body.Query,
	})
	hook := f.hook
	f.mu.Unlock()

	target, err := locale.Parse(rawTarget)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	reply, ok := f.replies[target]
	f.mu.Unlock()

	if hook != nil {
		hook(target)
	}

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	status := reply.Status
	if status == 0 {
		status = http.StatusOK
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if reply.Body != "" {
		_, _ = w.Write([]byte(reply.Body))
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data": map[string]any{
			"translations": []map[string]string{{"translatedText": reply.Text}},
		},
	})
}
