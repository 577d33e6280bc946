package services

import (
	"bytes"
	"encoding/json"
	"log"
	"strings"
)

// NormalizeContent stores the rich-text body as it arrived: either a block
// document (JSON array) or plain markdown-like text, which is kept as a
// JSON string so the column stays valid JSONB either way.
func NormalizeContent(raw json.RawMessage) []byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []byte(`[]`)
	}
	if json.Valid(trimmed) {
		return trimmed
	}
	encoded, _ := json.Marshal(string(trimmed))
	return encoded
}

// Contributor is one entry of a project's ordered contributor list. The
// list round-trips losslessly through the edit form.
type Contributor struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
	ProfileURL string `json:"profileUrl,omitempty"`
}

// ParseContributors decodes the serialized contributor list from the admin
// form. A malformed payload degrades to an empty list and is logged for the
// operator; it never aborts the surrounding save.
func ParseContributors(raw json.RawMessage) []Contributor {
	if len(raw) == 0 {
		return []Contributor{}
	}
	var contributors []Contributor
	if err := json.Unmarshal(raw, &contributors); err != nil {
		log.Printf("contributors parse degraded to empty list: %v", err)
		return []Contributor{}
	}
	cleaned := make([]Contributor, 0, len(contributors))
	for _, c := range contributors {
		c.Name = strings.TrimSpace(c.Name)
		c.Role = strings.TrimSpace(c.Role)
		c.AvatarURL = strings.TrimSpace(c.AvatarURL)
		c.ProfileURL = strings.TrimSpace(c.ProfileURL)
		if c.Name == "" {
			continue
		}
		cleaned = append(cleaned, c)
	}
	return cleaned
}

// ParseImageList decodes an ordered gallery of image URLs with the same
// degrade-to-empty contract as ParseContributors.
func ParseImageList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var images []string
	if err := json.Unmarshal(raw, &images); err != nil {
		log.Printf("gallery parse degraded to empty list: %v", err)
		return []string{}
	}
	return CleanStrings(images)
}

// mustJSON serializes values whose shape is fully controlled above; a
// failure here is a programming error, so fall back to an empty array.
func mustJSON(value interface{}) []byte {
	data, err := json.Marshal(value)
	if err != nil {
		return []byte("[]")
	}
	return data
}

func decodeStrings(raw []byte) []string {
	items := []string{}
	_ = json.Unmarshal(raw, &items)
	return items
}

func decodeContributors(raw []byte) []Contributor {
	contributors := []Contributor{}
	_ = json.Unmarshal(raw, &contributors)
	return contributors
}
