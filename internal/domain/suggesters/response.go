package suggesters

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	m "github.com/mouse-blink/luarename/internal/model"
)

var (
	// ErrEmptyResponse is returned when the reply holds no text.
	ErrEmptyResponse = errors.New("suggestion response was empty")
	// ErrInvalidJSON is returned when no JSON document can be recovered from the reply.
	ErrInvalidJSON = errors.New("suggestion response is not valid JSON")
	// ErrInvalidSchema is returned when the JSON does not have the expected shape.
	ErrInvalidSchema = errors.New("suggestion response has an invalid schema")
)

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

const maxQuotedReply = 200

// ParseResponse extracts suggestions from a completion reply. It accepts a
// bare JSON document, one wrapped in a markdown fence, or the span between the
// first '{' and the last '}'.
func ParseResponse(text string) ([]m.Suggestion, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResponse
	}

	doc, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	return decodeSuggestions(doc)
}

func extractJSON(text string) (json.RawMessage, error) {
	var doc json.RawMessage
	if err := json.Unmarshal([]byte(text), &doc); err == nil {
		return doc, nil
	}

	if match := fencedBlock.FindStringSubmatch(text); match != nil {
		if err := json.Unmarshal([]byte(match[1]), &doc); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidJSON, quote(text))
		}

		return doc, nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start < 0 || end <= start {
		return nil, ErrInvalidJSON
	}

	if err := json.Unmarshal([]byte(text[start:end+1]), &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidJSON, quote(text))
	}

	return doc, nil
}

func decodeSuggestions(doc json.RawMessage) ([]m.Suggestion, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(doc, &envelope); err != nil {
		return nil, fmt.Errorf("%w: expected an object", ErrInvalidSchema)
	}

	raw, ok := envelope["suggestions"]
	if !ok {
		return nil, fmt.Errorf("%w: missing suggestions", ErrInvalidSchema)
	}

	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil, fmt.Errorf("%w: suggestions must be an array of objects", ErrInvalidSchema)
	}

	out := make([]m.Suggestion, 0, len(items))

	for i, item := range items {
		from, okFrom := item["from"].(string)
		to, okTo := item["to"].(string)

		if !okFrom || !okTo || from == "" || to == "" {
			return nil, fmt.Errorf("%w: suggestion %d needs non-empty from and to", ErrInvalidSchema, i)
		}

		out = append(out, m.Suggestion{From: from, To: to})
	}

	return out, nil
}

func quote(text string) string {
	if len(text) > maxQuotedReply {
		text = text[:maxQuotedReply]
	}

	return fmt.Sprintf("%q", text)
}
