package services

import (
	"regexp"
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Hello World!", "hello-world"},
		{"already a slug", "hello-world", "hello-world"},
		{"punctuation runs collapse", "C++ & Go: a comparison!!!", "c-go-a-comparison"},
		{"leading and trailing junk", "  --Fancy Title--  ", "fancy-title"},
		{"non-ascii letters collapse", "Café Notes", "caf-notes"},
		{"digits kept", "Top 10 Tips (2024)", "top-10-tips-2024"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.input); got != tc.want {
				t.Errorf("Slugify(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSlugifyShape(t *testing.T) {
	// Whatever the input, the result is lowercase, has no edge hyphens
	// and no consecutive hyphens.
	inputs := []string{
		"Hello World!",
		"!!!",
		"A  B   C",
		"MiXeD CaSe TiTlE",
		"trailing---dashes---",
		"ends with space ",
	}
	doubleDash := regexp.MustCompile(`--`)
	for _, input := range inputs {
		got := Slugify(input)
		if got == "" {
			t.Errorf("Slugify(%q) produced an empty slug", input)
		}
		if got != strings.ToLower(got) {
			t.Errorf("Slugify(%q) = %q is not lowercase", input, got)
		}
		if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
			t.Errorf("Slugify(%q) = %q has an edge hyphen", input, got)
		}
		if doubleDash.MatchString(got) {
			t.Errorf("Slugify(%q) = %q has consecutive hyphens", input, got)
		}
	}
}

func TestSlugifyEmptyFallsBackToRandom(t *testing.T) {
	got := Slugify("???")
	if got == "" {
		t.Fatal("expected a generated slug for unusable input")
	}
}
