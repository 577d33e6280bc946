package render

import (
	"html"
	"regexp"
	"strings"
)

// RenderMarkdown handles the restricted markdown subset used by content
// authored as plain text: #/##/### headings, **bold**, *italic*, and
// newline to line break. Anything else is escaped text. Paragraphs that
// look like source code render as highlighted code blocks instead.
func RenderMarkdown(text string) string {
	var b strings.Builder
	var paragraph []string

	flush := func() {
		if len(paragraph) == 0 {
			return
		}
		plain := strings.Join(paragraph, "\n")
		lines := make([]string, 0, len(paragraph))
		paragraph = nil
		if isCode, language := Classify(plain); isCode {
			writeCodeBlock(&b, plain, language)
			return
		}
		for _, line := range strings.Split(plain, "\n") {
			lines = append(lines, renderInlineMarkdown(line))
		}
		b.WriteString("<p>" + strings.Join(lines, "<br>") + "</p>")
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flush()
		case strings.HasPrefix(trimmed, "### "):
			flush()
			b.WriteString("<h3>" + renderInlineMarkdown(strings.TrimPrefix(trimmed, "### ")) + "</h3>")
		case strings.HasPrefix(trimmed, "## "):
			flush()
			b.WriteString("<h2>" + renderInlineMarkdown(strings.TrimPrefix(trimmed, "## ")) + "</h2>")
		case strings.HasPrefix(trimmed, "# "):
			flush()
			b.WriteString("<h1>" + renderInlineMarkdown(strings.TrimPrefix(trimmed, "# ")) + "</h1>")
		default:
			paragraph = append(paragraph, trimmed)
		}
	}
	flush()
	return Sanitize(b.String())
}

var (
	boldPattern   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern = regexp.MustCompile(`\*([^*]+)\*`)
)

// renderInlineMarkdown escapes the line first, then applies the two inline
// marks. Bold runs before italic so ** is not eaten as two italics.
func renderInlineMarkdown(line string) string {
	escaped := html.EscapeString(line)
	escaped = boldPattern.ReplaceAllString(escaped, "<strong>$1</strong>")
	escaped = italicPattern.ReplaceAllString(escaped, "<em>$1</em>")
	return escaped
}

func writeCodeBlock(b *strings.Builder, code, language string) {
	if language == "" {
		language = "text"
	}
	b.WriteString(`<pre><code class="language-` + language + `">`)
	b.WriteString(html.EscapeString(code))
	b.WriteString("</code></pre>")
}
