package services

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalizeContent(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"empty becomes empty array", "", "[]"},
		{"whitespace becomes empty array", "   \n", "[]"},
		{"block document passes through", `[{"type":"paragraph","text":"hi"}]`, `[{"type":"paragraph","text":"hi"}]`},
		{"json string passes through", `"# Title"`, `"# Title"`},
		{"bare markdown wrapped as string", "# Title\nbody", `"# Title\nbody"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeContent(json.RawMessage(tc.raw))
			if string(got) != tc.want {
				t.Errorf("NormalizeContent(%q) = %s, want %s", tc.raw, got, tc.want)
			}
			if !json.Valid(got) {
				t.Errorf("NormalizeContent(%q) produced invalid JSON: %s", tc.raw, got)
			}
		})
	}
}

func TestContributorsRoundTrip(t *testing.T) {
	in := []Contributor{
		{Name: "Ada", Role: "Engineer", ProfileURL: "https://example.com/ada"},
		{Name: "Grace", Role: "Advisor"},
	}
	raw := mustJSON(in)
	got := ParseContributors(raw)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round trip changed contributors: got %v, want %v", got, in)
	}
}

func TestParseContributors(t *testing.T) {
	t.Run("malformed degrades to empty list", func(t *testing.T) {
		got := ParseContributors(json.RawMessage(`{"oops":`))
		if len(got) != 0 {
			t.Errorf("expected empty list, got %v", got)
		}
	})
	t.Run("nameless entries dropped", func(t *testing.T) {
		got := ParseContributors(json.RawMessage(`[{"name":"  ","role":"ghost"},{"name":" Ada ","role":" Dev "}]`))
		want := []Contributor{{Name: "Ada", Role: "Dev"}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ParseContributors() = %v, want %v", got, want)
		}
	})
	t.Run("empty input", func(t *testing.T) {
		if got := ParseContributors(nil); len(got) != 0 {
			t.Errorf("expected empty list, got %v", got)
		}
	})
}

func TestParseImageList(t *testing.T) {
	got := ParseImageList(json.RawMessage(`[" /media/assets/a/content ", "", "https://cdn.example.com/b.png"]`))
	want := []string{"/media/assets/a/content", "https://cdn.example.com/b.png"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseImageList() = %v, want %v", got, want)
	}

	if got := ParseImageList(json.RawMessage(`not json`)); len(got) != 0 {
		t.Errorf("malformed gallery should degrade to empty, got %v", got)
	}
}
