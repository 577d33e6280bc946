package render

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{
			"heading and bold",
			"# Title\n**bold**",
			[]string{"<h1>Title</h1>", "<p><strong>bold</strong></p>"},
		},
		{
			"all heading levels",
			"# One\n## Two\n### Three",
			[]string{"<h1>One</h1>", "<h2>Two</h2>", "<h3>Three</h3>"},
		},
		{
			"italic",
			"some *emphasised* words here",
			[]string{"<em>emphasised</em>"},
		},
		{
			"newline becomes line break",
			"first line\nsecond line",
			[]string{"first line<br>second line"},
		},
		{
			"blank line splits paragraphs",
			"first paragraph\n\nsecond paragraph",
			[]string{"<p>first paragraph</p>", "<p>second paragraph</p>"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RenderMarkdown(tc.input)
			for _, fragment := range tc.want {
				if !strings.Contains(got, fragment) {
					t.Errorf("RenderMarkdown(%q) = %q, missing %q", tc.input, got, fragment)
				}
			}
		})
	}
}

func TestRenderMarkdownEscapesHTML(t *testing.T) {
	got := RenderMarkdown("hello <script>alert(1)</script> world")
	if strings.Contains(got, "<script>") {
		t.Errorf("script tag survived rendering: %q", got)
	}
	if !strings.Contains(got, "hello") || !strings.Contains(got, "world") {
		t.Errorf("surrounding text lost: %q", got)
	}
}

func TestRenderMarkdownCodeParagraph(t *testing.T) {
	input := "func main() {\n\tfmt.Println(\"hello from a code sample\")\n}"
	got := RenderMarkdown(input)
	if !strings.Contains(got, `<pre><code class="language-go">`) {
		t.Errorf("code paragraph did not render as a go code block: %q", got)
	}
	if strings.Contains(got, "<p>") {
		t.Errorf("code paragraph also rendered as prose: %q", got)
	}
}
