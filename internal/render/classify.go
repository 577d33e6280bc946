package render

import (
	"regexp"
	"strings"
)

// Code detection is a best-effort heuristic over plain text, not a parser.
// Prose that happens to contain matching substrings can be misclassified;
// the rules below aim for reasonable behavior, not parity with any editor.

const minCodeLength = 50

var codePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\s*(import|from)\s+\w`),
	regexp.MustCompile(`(?m)^\s*(def|class|func|function|var|const|let)\s`),
	regexp.MustCompile(`(?m)^\s*(npm|npx|yarn|pip|pip3|go)\s+(install|run|get|add)\b`),
	regexp.MustCompile(`(?m)^\s*(//|#|/\*|--)\s?\w`),
	regexp.MustCompile(`[{};]\s*$`),
	regexp.MustCompile(`\)\s*(=>|\{)`),
	regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE)\b.+\b(FROM|INTO|SET|WHERE)\b`),
}

type languageRule struct {
	language string
	pattern  *regexp.Regexp
}

var languageRules = []languageRule{
	{"python", regexp.MustCompile(`(?m)(^\s*def\s|^\s*from\s+\w+\s+import|^\s*import\s+\w+$|print\(|self\.)`)},
	{"go", regexp.MustCompile(`(?m)(^\s*func\s|^\s*package\s+\w+|:=|fmt\.)`)},
	{"javascript", regexp.MustCompile(`(?m)(^\s*(const|let|var)\s|=>|console\.|require\(|^\s*import\s.+from\s)`)},
	{"bash", regexp.MustCompile(`(?m)(^\s*(npm|npx|yarn|pip|pip3|sudo|cd|mkdir|curl|git)\s|^\s*\$\s|^#!)`)},
	{"sql", regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE)\b.+\b(FROM|INTO|SET|WHERE)\b`)},
	{"json", regexp.MustCompile(`(?s)^\s*[\[{].*[\]}]\s*$`)},
}

// Classify reports whether a plain-text block looks like source code and
// guesses its language for syntax highlighting.
func Classify(text string) (bool, string) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minCodeLength {
		return false, ""
	}
	isCode := false
	for _, pattern := range codePatterns {
		if pattern.MatchString(trimmed) {
			isCode = true
			break
		}
	}
	if !isCode {
		return false, ""
	}
	return true, GuessLanguage(trimmed)
}

func GuessLanguage(text string) string {
	for _, rule := range languageRules {
		if rule.pattern.MatchString(text) {
			return rule.language
		}
	}
	return "text"
}
