package services

import (
	"regexp"
	"strings"
	"testing"
)

func TestStorageKey(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{14}-[0-9a-f]{8}\.png$`)
	key := StorageKey("photo.PNG")
	if !pattern.MatchString(key) {
		t.Errorf("StorageKey(%q) = %q, want timestamp-suffix.png shape", "photo.PNG", key)
	}

	if a, b := StorageKey("a.jpg"), StorageKey("a.jpg"); a == b {
		t.Errorf("two keys for the same filename collided: %q", a)
	}

	if key := StorageKey("noext"); strings.Contains(key, ".") {
		t.Errorf("extensionless filename grew an extension: %q", key)
	}
}

func TestIsExternalURL(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"https://cdn.example.com/a.png", true},
		{"http://example.com/b.jpg", true},
		{"/media/assets/abc/content", false},
		{"ftp://example.com/c", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsExternalURL(tc.value); got != tc.want {
			t.Errorf("IsExternalURL(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestNormalizeImageRef(t *testing.T) {
	if got := NormalizeImageRef("  https://cdn.example.com/a.png  "); got == nil || *got != "https://cdn.example.com/a.png" {
		t.Errorf("external URL should pass through trimmed, got %v", got)
	}
	if got := NormalizeImageRef("/media/assets/abc/content"); got == nil {
		t.Error("uploaded asset URL should be accepted")
	}
	if got := NormalizeImageRef(""); got != nil {
		t.Errorf("empty ref should be nil, got %q", *got)
	}
	if got := NormalizeImageRef("javascript:alert(1)"); got != nil {
		t.Errorf("unrecognized ref should be dropped, got %q", *got)
	}
}
