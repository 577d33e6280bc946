package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestSplitTags(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"empties dropped and trimmed", "React, , Next.js", []string{"React", "Next.js"}},
		{"single tag", "Go", []string{"Go"}},
		{"empty input", "", []string{}},
		{"only separators", " , ,, ", []string{}},
		{"duplicates removed", "Go, Go, SQL", []string{"Go", "SQL"}},
		{"order preserved", "c, b, a", []string{"c", "b", "a"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SplitTags(tc.input); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SplitTags(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestSplitTagsKeepsLongLists(t *testing.T) {
	tags := make([]string, 14)
	for i := range tags {
		tags[i] = fmt.Sprintf("tag-%02d", i+1)
	}
	got := SplitTags(strings.Join(tags, ", "))
	if !reflect.DeepEqual(got, tags) {
		t.Errorf("SplitTags() = %v, want all %d tags in order", got, len(tags))
	}
}

func TestCleanStrings(t *testing.T) {
	got := CleanStrings([]string{" shipped the thing ", "", "  ", "kept order", "shipped the thing"})
	want := []string{"shipped the thing", "kept order", "shipped the thing"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CleanStrings() = %v, want %v", got, want)
	}
}

func TestNormalizeRequired(t *testing.T) {
	if _, err := NormalizeRequired("  ", "title"); err == nil {
		t.Fatal("expected a validation error for a blank value")
	} else {
		var serr ServiceError
		if !errors.As(err, &serr) {
			t.Fatalf("expected ServiceError, got %T", err)
		}
		if serr.Field != "title" {
			t.Errorf("validation error names field %q, want title", serr.Field)
		}
		if serr.Status != 400 {
			t.Errorf("validation error status = %d, want 400", serr.Status)
		}
	}

	value, err := NormalizeRequired("  My Project  ", "title")
	if err != nil {
		t.Fatalf("NormalizeRequired() error = %v", err)
	}
	if value != "My Project" {
		t.Errorf("NormalizeRequired() = %q, want trimmed value", value)
	}
}

func TestClampProficiency(t *testing.T) {
	cases := []struct{ in, want int }{
		{-5, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{140, 100},
	}
	for _, tc := range cases {
		if got := ClampProficiency(tc.in); got != tc.want {
			t.Errorf("ClampProficiency(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
