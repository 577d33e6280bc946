package render

import (
	"strings"
	"testing"
)

func TestRenderBlocks(t *testing.T) {
	doc := `[
		{"type":"heading","level":2,"content":[{"type":"text","text":"Results"}]},
		{"type":"paragraph","content":[
			{"type":"text","text":"It was "},
			{"type":"text","text":"fast","marks":["bold"]},
			{"type":"text","text":" and "},
			{"type":"text","text":"stable","marks":["italic"]}
		]},
		{"type":"bulletList","content":[
			{"type":"listItem","content":[{"type":"text","text":"first"}]},
			{"type":"listItem","content":[{"type":"text","text":"second"}]}
		]},
		{"type":"codeBlock","language":"go","content":[{"type":"text","text":"fmt.Println(42)"}]},
		{"type":"rule"}
	]`
	got := RenderBlocks([]byte(doc))
	for _, fragment := range []string{
		"<h2>Results</h2>",
		"<strong>fast</strong>",
		"<em>stable</em>",
		"<ul><li>first</li><li>second</li></ul>",
		`<pre><code class="language-go">fmt.Println(42)</code></pre>`,
		"<hr",
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("RenderBlocks() = %q, missing %q", got, fragment)
		}
	}
}

func TestRenderBlocksMalformedDocument(t *testing.T) {
	got := RenderBlocks([]byte(`{"not":"an array"`))
	if !strings.Contains(got, "content-error") {
		t.Errorf("malformed document should render a placeholder, got %q", got)
	}
}

func TestRenderBlocksUnknownNodePlaceholder(t *testing.T) {
	doc := `[
		{"type":"paragraph","content":[{"type":"text","text":"before"}]},
		{"type":"hologram"},
		{"type":"paragraph","content":[{"type":"text","text":"after"}]}
	]`
	got := RenderBlocks([]byte(doc))
	if !strings.Contains(got, "<p>before</p>") || !strings.Contains(got, "<p>after</p>") {
		t.Errorf("good siblings of a bad node should still render, got %q", got)
	}
	if !strings.Contains(got, "content-error") {
		t.Errorf("unknown node should render a placeholder, got %q", got)
	}
}

func TestRenderBlocksImageWithoutURL(t *testing.T) {
	got := RenderBlocks([]byte(`[{"type":"image","url":"  "}]`))
	if !strings.Contains(got, "image unavailable") {
		t.Errorf("image without a source should render a placeholder, got %q", got)
	}
	if strings.Contains(got, "<img") {
		t.Errorf("no img tag expected, got %q", got)
	}
}

func TestRenderBlocksStripsScripts(t *testing.T) {
	doc := `[{"type":"paragraph","content":[{"type":"text","text":"<script>alert(1)</script>"}]}]`
	got := RenderBlocks([]byte(doc))
	if strings.Contains(got, "<script>") {
		t.Errorf("script content survived rendering: %q", got)
	}
}

func TestContentDispatch(t *testing.T) {
	t.Run("block document", func(t *testing.T) {
		got := Content([]byte(`[{"type":"paragraph","content":[{"type":"text","text":"hi"}]}]`))
		if !strings.Contains(got, "<p>hi</p>") {
			t.Errorf("Content() = %q, want a paragraph", got)
		}
	})
	t.Run("json string is markdown", func(t *testing.T) {
		got := Content([]byte(`"# Title\n**bold**"`))
		if !strings.Contains(got, "<h1>Title</h1>") || !strings.Contains(got, "<strong>bold</strong>") {
			t.Errorf("Content() = %q, want heading and bold", got)
		}
	})
	t.Run("bare text is markdown", func(t *testing.T) {
		got := Content([]byte("## Heading"))
		if !strings.Contains(got, "<h2>Heading</h2>") {
			t.Errorf("Content() = %q, want a heading", got)
		}
	})
	t.Run("empty renders nothing", func(t *testing.T) {
		if got := Content(nil); got != "" {
			t.Errorf("Content(nil) = %q, want empty", got)
		}
	})
}
