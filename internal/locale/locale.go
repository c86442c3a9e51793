package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Locale задает идентификатор локали в формате апстрима (например, zh_SG).
type Locale string

const (
	// Source задает язык исходного текста: всегда английский (Сингапур).
	Source Locale = "en_SG"

	Chinese Locale = "zh_SG"
	Malay   Locale = "ms_SG"
	Tamil   Locale = "ta_SG"
)

// Targets возвращает фиксированный набор целевых локалей в порядке отображения.
func Targets() []Locale {
	return []Locale{Chinese, Malay, Tamil}
}

// Parse проверяет, что строка является одной из известных целевых локалей.
func Parse(s string) (Locale, error) {
	for _, l := range Targets() {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown target locale %q", s)
}

func (l Locale) String() string {
	return string(l)
}

// Tag переводит локаль в BCP 47 тег (zh_SG -> zh-SG).
func (l Locale) Tag() (language.Tag, error) {
	return language.Parse(strings.ReplaceAll(string(l), "_", "-"))
}

// Label возвращает английское название языка локали: "Chinese", "Malay", "Tamil".
// Если тег не распознан, возвращается сам идентификатор.
func (l Locale) Label() string {
	tag, err := l.Tag()
	if err != nil {
		return string(l)
	}
	base, _ := tag.Base()
	name := display.English.Languages().Name(base)
	if name == "" {
		return string(l)
	}
	return name
}
