// Package render is the rich content pipeline: it turns stored author
// content, either a structured block document or a markdown-like plain
// string, into sanitized HTML fragments.
package render

import (
	"bytes"
	"encoding/json"
)

// Content dispatches on the stored representation: a JSON array is a block
// document, a JSON string (or bare text) is markdown-subset input.
func Content(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}
	switch trimmed[0] {
	case '[':
		return RenderBlocks(trimmed)
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return Sanitize(errorPlaceholder("content could not be displayed"))
		}
		return RenderMarkdown(text)
	default:
		return RenderMarkdown(string(trimmed))
	}
}
