package httpapi

import "strings"

// TagAll is the tag filter's passthrough value.
const TagAll = "All"

const relatedLimit = 3

// matchesSearch is a case-insensitive substring match over the given
// fields; an empty query matches everything.
func matchesSearch(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// matchesTag is an exact tag-equality filter; empty and "All" pass
// everything through.
func matchesTag(tag string, tags []string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || tag == TagAll {
		return true
	}
	for _, candidate := range tags {
		if candidate == tag {
			return true
		}
	}
	return false
}

func sharesTag(a, b []string) bool {
	for _, tag := range a {
		for _, other := range b {
			if tag == other {
				return true
			}
		}
	}
	return false
}

// filterProjects applies search and tag filter with AND semantics, keeping
// the input order. Search covers title, description and tags.
func filterProjects(cards []ProjectCardDTO, query, tag string) []ProjectCardDTO {
	filtered := make([]ProjectCardDTO, 0, len(cards))
	for _, card := range cards {
		fields := append([]string{card.Title, card.Description}, card.Tags...)
		if matchesSearch(query, fields...) && matchesTag(tag, card.Tags) {
			filtered = append(filtered, card)
		}
	}
	return filtered
}

func filterPosts(cards []PostCardDTO, query, tag string) []PostCardDTO {
	filtered := make([]PostCardDTO, 0, len(cards))
	for _, card := range cards {
		fields := append([]string{card.Title, card.Excerpt}, card.Tags...)
		if matchesSearch(query, fields...) && matchesTag(tag, card.Tags) {
			filtered = append(filtered, card)
		}
	}
	return filtered
}

// relatedProjects picks other projects sharing at least one tag with the
// current one, excluding it, capped at relatedLimit.
func relatedProjects(cards []ProjectCardDTO, current ProjectCardDTO) []ProjectCardDTO {
	related := make([]ProjectCardDTO, 0, relatedLimit)
	for _, card := range cards {
		if card.ID == current.ID {
			continue
		}
		if !sharesTag(card.Tags, current.Tags) {
			continue
		}
		related = append(related, card)
		if len(related) == relatedLimit {
			break
		}
	}
	return related
}

func relatedPosts(cards []PostCardDTO, current PostCardDTO) []PostCardDTO {
	related := make([]PostCardDTO, 0, relatedLimit)
	for _, card := range cards {
		if card.ID == current.ID {
			continue
		}
		if !sharesTag(card.Tags, current.Tags) {
			continue
		}
		related = append(related, card)
		if len(related) == relatedLimit {
			break
		}
	}
	return related
}
