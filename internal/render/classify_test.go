package render

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		isCode   bool
		language string
	}{
		{
			"go function",
			"func main() {\n\tfmt.Println(\"hello world, from a test\")\n}",
			true, "go",
		},
		{
			"python function",
			"def handler(event):\n    print(event)\n    return {\"ok\": True}",
			true, "python",
		},
		{
			"javascript arrow function",
			"const handler = (event) => {\n  console.log(event);\n};",
			true, "javascript",
		},
		{
			"bash install command",
			"# install the toolchain first\nnpm install --save-dev typescript eslint",
			true, "bash",
		},
		{
			"sql query",
			"SELECT id, title FROM projects WHERE featured = true ORDER BY created_at DESC;",
			true, "sql",
		},
		{
			"short snippet stays prose",
			"let x = 1;",
			false, "",
		},
		{
			"plain prose",
			"I spent the weekend rebuilding the deployment pipeline and it finally feels fast enough.",
			false, "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			isCode, language := Classify(tc.input)
			if isCode != tc.isCode {
				t.Fatalf("Classify(%q) isCode = %v, want %v", tc.input, isCode, tc.isCode)
			}
			if language != tc.language {
				t.Errorf("Classify(%q) language = %q, want %q", tc.input, language, tc.language)
			}
		})
	}
}

func TestGuessLanguageFallsBackToText(t *testing.T) {
	if got := GuessLanguage("nothing here matches a known language at all"); got != "text" {
		t.Errorf("GuessLanguage() = %q, want text", got)
	}
}
