package view

import (
	"embed"
	"html/template"

	"github.com/MaxRadzey/translate-client/internal/locale"
	"github.com/MaxRadzey/translate-client/internal/models"
)

// IndexTemplate задает имя шаблона страницы формы.
const IndexTemplate = "index.html"

const (
	title       = "translate-client"
	description = "a translate-client"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates разбирает встроенные HTML шаблоны.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))
}

// Panel выводит перевод для одной локали.
type Panel struct {
	Locale   locale.Locale
	Label    string
	Text     string
	Copyable bool
}

// Page собирает данные для шаблона страницы.
type Page struct {
	Title       string
	Description string
	Input       string
	Panels      []Panel
}

// State описывает форму: Idle (результата нет) или Displaying (показан последний успешный результат).
// Сервер не хранит состояние между запросами; при ошибке отправки скрипт страницы
// оставляет панели без изменений.
type State struct {
	result *models.TranslationResult
}

// Idle возвращает начальное состояние без результата.
func Idle() State {
	return State{}
}

// Displaying возвращает состояние с показанным результатом.
func Displaying(result *models.TranslationResult) State {
	return State{result: result}
}

// CopyText возвращает текст для копирования в буфер обмена.
// ok == false, если перевод для локали еще не получен: копирование в этом случае ничего не делает.
func (s State) CopyText(l locale.Locale) (string, bool) {
	return s.result.Text(l)
}

// Page собирает данные шаблона для текущего состояния.
func (s State) Page() Page {
	page := Page{
		Title:       title,
		Description: description,
	}
	if s.result != nil {
		page.Input = s.result.Input
	}

	for _, l := range locale.Targets() {
		text, ok := s.CopyText(l)
		page.Panels = append(page.Panels, Panel{
			Locale:   l,
			Label:    l.Label(),
			Text:     text,
			Copyable: ok,
		})
	}

	return page
}
