package formatter

import (
	"fmt"

	"github.com/goccy/go-json"
)

// ContentTypeJSON is sent with every successful projection
const ContentTypeJSON = "application/json; charset=utf-8"

// BuildJSON serializes v to JSON
func BuildJSON(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return b, nil
}
