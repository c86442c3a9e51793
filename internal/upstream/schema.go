package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// responseSchema описывает минимально необходимую форму ответа:
// data.translations[0].translatedText должен быть строкой, остальные элементы не проверяются.
const responseSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["data"],
	"properties": {
		"data": {
			"type": "object",
			"required": ["translations"],
			"properties": {
				"translations": {
					"type": "array",
					"minItems": 1,
					"prefixItems": [{
						"type": "object",
						"required": ["translatedText"],
						"properties": {
							"translatedText": {"type": "string"}
						}
					}]
				}
			}
		}
	}
}`

var compiledSchema = jsonschema.MustCompileString("translate-response.json", responseSchema)

type translateRequest struct {
	Query string `json:"query"`
}

type translateResponse struct {
	Data struct {
		Translations []json.RawMessage `json:"translations"`
	} `json:"data"`
}

type translation struct {
	TranslatedText string `json:"translatedText"`
}

// decodeResponse валидирует тело по схеме и извлекает первый перевод.
func decodeResponse(body []byte) (string, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if err := compiledSchema.Validate(raw); err != nil {
		return "", fmt.Errorf("%w: %s", ErrMalformedResponse, describe(err))
	}

	var resp translateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	var first translation
	if err := json.Unmarshal(resp.Data.Translations[0], &first); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return first.TranslatedText, nil
}

func describe(err error) string {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return err.Error()
	}

	var issues []string
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if len(node.Causes) == 0 {
			location := node.InstanceLocation
			if location == "" {
				location = "#"
			}
			issues = append(issues, fmt.Sprintf("%s: %s", location, node.Message))
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(validationErr)

	return strings.Join(issues, "; ")
}
