package services

import "strings"

// SplitTags turns a comma-separated form value into a cleaned tag list.
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	return CleanTags(strings.Split(raw, ","))
}

// CleanTags trims entries, drops empties and duplicates, and preserves the
// author's order. Every surviving tag is kept.
func CleanTags(tags []string) []string {
	seen := make(map[string]bool)
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		value := strings.TrimSpace(tag)
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		cleaned = append(cleaned, value)
	}
	return cleaned
}

// CleanStrings trims entries and drops empties, keeping order and
// duplicates. Used for achievements, technologies and course lists.
func CleanStrings(items []string) []string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		value := strings.TrimSpace(item)
		if value == "" {
			continue
		}
		cleaned = append(cleaned, value)
	}
	return cleaned
}

// NormalizeRequired trims the value and reports a validation error naming
// the field when nothing is left.
func NormalizeRequired(value, field string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", ErrValidation(field, field+" is required")
	}
	return trimmed, nil
}

func ClampProficiency(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

func nilIfEmpty(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
