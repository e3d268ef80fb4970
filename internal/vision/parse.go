package vision

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseResult locates the single JSON object in a model response (first "{"
// to last "}") and decodes it. Models often wrap the object in prose or
// markdown fences, so anything outside the braces is discarded.
func ParseResult(response string) (*Result, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var result Result
	if err := json.Unmarshal([]byte(response[start:end+1]), &result); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}
	return &result, nil
}
