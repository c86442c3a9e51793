package models

import "github.com/MaxRadzey/translate-client/internal/locale"

// TranslationResult хранит исходный текст и переводы по каждой целевой локали.
type TranslationResult struct {
	Input        string
	Translations map[locale.Locale]string
}

// Text возвращает перевод для локали и признак его наличия.
func (r *TranslationResult) Text(l locale.Locale) (string, bool) {
	if r == nil {
		return "", false
	}
	text, ok := r.Translations[l]
	return text, ok
}

// Response описывает JSON ответ эндпоинта формы.
type Response struct {
	OK    bool   `json:"ok"`
	Input string `json:"input"`
	ZhSG  string `json:"zh_SG"`
	MsSG  string `json:"ms_SG"`
	TaSG  string `json:"ta_SG"`
}

// NewResponse собирает плоский JSON ответ из результата перевода.
func NewResponse(result *TranslationResult) Response {
	return Response{
		OK:    true,
		Input: result.Input,
		ZhSG:  result.Translations[locale.Chinese],
		MsSG:  result.Translations[locale.Malay],
		TaSG:  result.Translations[locale.Tamil],
	}
}
