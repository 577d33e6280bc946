package render

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

// Node is one node of the structured editor document: block nodes carry
// Content children, text leaves carry Text plus inline marks.
type Node struct {
	Type     string   `json:"type"`
	Level    int      `json:"level,omitempty"`
	Text     string   `json:"text,omitempty"`
	Marks    []string `json:"marks,omitempty"`
	Font     string   `json:"font,omitempty"`
	URL      string   `json:"url,omitempty"`
	Alt      string   `json:"alt,omitempty"`
	Language string   `json:"language,omitempty"`
	EntryID  string   `json:"entryId,omitempty"`
	Content  []Node   `json:"content,omitempty"`
}

// Block node types.
const (
	NodeParagraph   = "paragraph"
	NodeHeading     = "heading"
	NodeBulletList  = "bulletList"
	NodeOrderedList = "orderedList"
	NodeListItem    = "listItem"
	NodeBlockquote  = "blockquote"
	NodeCodeBlock   = "codeBlock"
	NodeTable       = "table"
	NodeTableRow    = "tableRow"
	NodeTableCell   = "tableCell"
	NodeImage       = "image"
	NodeEmbed       = "embed"
	NodeRule        = "rule"
	NodeText        = "text"
)

// RenderBlocks converts a serialized block document into sanitized HTML.
// A document that fails to decode renders as a single error placeholder;
// one malformed node inside an otherwise good document renders its own
// placeholder and never blocks the rest.
func RenderBlocks(raw []byte) string {
	var doc []Node
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Sanitize(errorPlaceholder("content could not be displayed"))
	}
	var b strings.Builder
	for _, node := range doc {
		renderNode(&b, node)
	}
	return Sanitize(b.String())
}

func renderNode(b *strings.Builder, node Node) {
	switch node.Type {
	case NodeParagraph:
		plain := plainText(node)
		if isCode, language := Classify(plain); isCode {
			writeCodeBlock(b, plain, language)
			return
		}
		b.WriteString("<p>")
		renderInlineNodes(b, node.Content)
		b.WriteString("</p>")
	case NodeHeading:
		level := node.Level
		if level < 1 || level > 6 {
			level = 1
		}
		fmt.Fprintf(b, "<h%d>", level)
		renderInlineNodes(b, node.Content)
		fmt.Fprintf(b, "</h%d>", level)
	case NodeBulletList:
		b.WriteString("<ul>")
		renderChildren(b, node.Content)
		b.WriteString("</ul>")
	case NodeOrderedList:
		b.WriteString("<ol>")
		renderChildren(b, node.Content)
		b.WriteString("</ol>")
	case NodeListItem:
		b.WriteString("<li>")
		renderInlineNodes(b, node.Content)
		b.WriteString("</li>")
	case NodeBlockquote:
		b.WriteString("<blockquote>")
		renderChildren(b, node.Content)
		b.WriteString("</blockquote>")
	case NodeCodeBlock:
		language := node.Language
		if language == "" {
			language = GuessLanguage(plainText(node))
		}
		writeCodeBlock(b, plainText(node), language)
	case NodeTable:
		b.WriteString("<table>")
		renderChildren(b, node.Content)
		b.WriteString("</table>")
	case NodeTableRow:
		b.WriteString("<tr>")
		renderChildren(b, node.Content)
		b.WriteString("</tr>")
	case NodeTableCell:
		b.WriteString("<td>")
		renderInlineNodes(b, node.Content)
		b.WriteString("</td>")
	case NodeImage:
		if strings.TrimSpace(node.URL) == "" {
			b.WriteString(errorPlaceholder("image unavailable"))
			return
		}
		b.WriteString(`<figure><img src="` + html.EscapeString(node.URL) + `" alt="` + html.EscapeString(node.Alt) + `">`)
		if node.Alt != "" {
			b.WriteString("<figcaption>" + html.EscapeString(node.Alt) + "</figcaption>")
		}
		b.WriteString("</figure>")
	case NodeEmbed:
		if strings.TrimSpace(node.URL) == "" && strings.TrimSpace(node.EntryID) == "" {
			b.WriteString(errorPlaceholder("embedded content unavailable"))
			return
		}
		url := node.URL
		if url == "" {
			url = "/entries/" + node.EntryID
		}
		b.WriteString(`<p><a href="` + html.EscapeString(url) + `">`)
		if text := plainText(node); text != "" {
			b.WriteString(html.EscapeString(text))
		} else {
			b.WriteString(html.EscapeString(url))
		}
		b.WriteString("</a></p>")
	case NodeRule:
		b.WriteString("<hr>")
	case NodeText:
		renderTextNode(b, node)
	default:
		// Unknown node types degrade to a placeholder instead of
		// aborting the document.
		b.WriteString(errorPlaceholder("unsupported content block"))
	}
}

func renderChildren(b *strings.Builder, nodes []Node) {
	for _, node := range nodes {
		renderNode(b, node)
	}
}

// renderInlineNodes renders children that are expected to be text runs;
// nested blocks inside inline positions still render rather than vanish.
func renderInlineNodes(b *strings.Builder, nodes []Node) {
	for _, node := range nodes {
		if node.Type == NodeText || node.Type == "" {
			renderTextNode(b, node)
			continue
		}
		renderNode(b, node)
	}
}

// Inline mark names.
const (
	MarkBold      = "bold"
	MarkItalic    = "italic"
	MarkUnderline = "underline"
	MarkStrike    = "strike"
	MarkCode      = "code"
	MarkLink      = "link"
)

func renderTextNode(b *strings.Builder, node Node) {
	text := html.EscapeString(node.Text)
	for i := len(node.Marks) - 1; i >= 0; i-- {
		switch node.Marks[i] {
		case MarkBold:
			text = "<strong>" + text + "</strong>"
		case MarkItalic:
			text = "<em>" + text + "</em>"
		case MarkUnderline:
			text = "<u>" + text + "</u>"
		case MarkStrike:
			text = "<s>" + text + "</s>"
		case MarkCode:
			text = "<code>" + text + "</code>"
		case MarkLink:
			if strings.TrimSpace(node.URL) != "" {
				text = `<a href="` + html.EscapeString(node.URL) + `">` + text + "</a>"
			}
		}
	}
	if node.Font != "" {
		text = `<span style="font-family: ` + html.EscapeString(node.Font) + `">` + text + "</span>"
	}
	b.WriteString(text)
}

func plainText(node Node) string {
	if node.Text != "" {
		return node.Text
	}
	var parts []string
	for _, child := range node.Content {
		if text := plainText(child); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "")
}

func errorPlaceholder(message string) string {
	return `<span class="content-error">` + html.EscapeString(message) + `</span>`
}
