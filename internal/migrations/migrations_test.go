package migrations

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseVersion(t *testing.T) {
	cases := []struct {
		name    string
		version int
		ok      bool
	}{
		{"V1__init.sql", 1, true},
		{"V12__add_posts.sql", 12, true},
		{"init.sql", 0, false},
		{"Vx__bad.sql", 0, false},
	}
	for _, tc := range cases {
		version, ok := parseVersion(tc.name)
		if version != tc.version || ok != tc.ok {
			t.Errorf("parseVersion(%q) = (%d, %v), want (%d, %v)", tc.name, version, ok, tc.version, tc.ok)
		}
	}
}

func TestListMigrationsOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"V10__ten.sql", "V2__two.sql", "V1__one.sql", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	migs, err := listMigrations(dir)
	if err != nil {
		t.Fatalf("listMigrations() error = %v", err)
	}
	want := []string{"V1__one.sql", "V2__two.sql", "V10__ten.sql"}
	if len(migs) != len(want) {
		t.Fatalf("listMigrations() returned %d entries, want %d", len(migs), len(want))
	}
	for i, name := range want {
		if migs[i].Name != name {
			t.Errorf("migration %d = %q, want %q", i, migs[i].Name, name)
		}
	}
}
