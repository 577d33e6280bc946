package render

import "github.com/microcosm-cc/bluemonday"

// All pipeline output passes through this policy before it reaches a view
// layer, so user-supplied script content never survives rendering.
var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("u", "s", "figure", "figcaption", "hr")
	p.AllowAttrs("class").OnElements("pre", "code", "span", "blockquote")
	p.AllowStyles("font-family").OnElements("span")
	p.AllowTables()
	return p
}

func Sanitize(html string) string {
	return policy.Sanitize(html)
}
