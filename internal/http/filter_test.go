package httpapi

import (
	"reflect"
	"testing"

	"portfolio-backend-go/internal/models"
)

func skillFixtures() []models.Skill {
	return []models.Skill{
		{ID: "s1", Name: "Go", Category: "Backend", Proficiency: 90},
		{ID: "s2", Name: "React", Category: "Frontend", Proficiency: 80},
		{ID: "s3", Name: "PostgreSQL", Category: "Backend", Proficiency: 75},
	}
}

func sampleProjectCards() []ProjectCardDTO {
	return []ProjectCardDTO{
		{ID: "1", Title: "Portfolio Site", Description: "Personal website", Tags: []string{"React", "TypeScript"}},
		{ID: "2", Title: "Chat Server", Description: "Realtime backend in Go", Tags: []string{"Go", "WebSocket"}},
		{ID: "3", Title: "Data Pipeline", Description: "ETL jobs", Tags: []string{"Go", "SQL"}},
		{ID: "4", Title: "Blog Engine", Description: "Markdown blog", Tags: []string{"Go"}},
		{ID: "5", Title: "Game of Life", Description: "Cellular automaton", Tags: []string{"React"}},
	}
}

func cardIDs(cards []ProjectCardDTO) []string {
	ids := make([]string, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestFilterProjects(t *testing.T) {
	cards := sampleProjectCards()
	cases := []struct {
		name  string
		query string
		tag   string
		want  []string
	}{
		{"no filters keeps everything in order", "", "", []string{"1", "2", "3", "4", "5"}},
		{"tag All passes through", "", "All", []string{"1", "2", "3", "4", "5"}},
		{"tag filter is exact", "", "Go", []string{"2", "3", "4"}},
		{"search is case-insensitive", "BLOG", "", []string{"4"}},
		{"search covers description", "realtime", "", []string{"2"}},
		{"search covers tags", "typescript", "", []string{"1"}},
		{"search and tag combine with AND", "server", "Go", []string{"2"}},
		{"no match is empty, not nil", "zzz", "Go", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := filterProjects(cards, tc.query, tc.tag)
			if got == nil {
				t.Fatal("filterProjects() returned nil")
			}
			if ids := cardIDs(got); !reflect.DeepEqual(ids, tc.want) {
				t.Errorf("filterProjects(q=%q, tag=%q) = %v, want %v", tc.query, tc.tag, ids, tc.want)
			}
		})
	}
}

func TestFilterPosts(t *testing.T) {
	cards := []PostCardDTO{
		{ID: "a", Title: "Why Go", Excerpt: "Notes on concurrency", Tags: []string{"Go"}},
		{ID: "b", Title: "CSS Tricks", Excerpt: "Layout notes", Tags: []string{"CSS"}},
	}
	got := filterPosts(cards, "notes", "Go")
	if ids := len(got); ids != 1 || got[0].ID != "a" {
		t.Errorf("filterPosts() = %v, want only post a", got)
	}
}

func TestRelatedProjects(t *testing.T) {
	cards := sampleProjectCards()
	current := cards[3] // Blog Engine, tagged Go

	related := relatedProjects(cards, current)
	ids := cardIDs(related)
	if !reflect.DeepEqual(ids, []string{"2", "3"}) {
		t.Errorf("relatedProjects() = %v, want the other Go projects in order", ids)
	}
	for _, card := range related {
		if card.ID == current.ID {
			t.Error("related list contains the project itself")
		}
	}
}

func TestRelatedProjectsCap(t *testing.T) {
	cards := []ProjectCardDTO{
		{ID: "1", Tags: []string{"Go"}},
		{ID: "2", Tags: []string{"Go"}},
		{ID: "3", Tags: []string{"Go"}},
		{ID: "4", Tags: []string{"Go"}},
		{ID: "5", Tags: []string{"Go"}},
	}
	related := relatedProjects(cards, cards[0])
	if len(related) != 3 {
		t.Errorf("related list has %d entries, want 3", len(related))
	}
}

func TestRelatedPostsNoSharedTags(t *testing.T) {
	cards := []PostCardDTO{
		{ID: "a", Tags: []string{"Go"}},
		{ID: "b", Tags: []string{"CSS"}},
	}
	related := relatedPosts(cards, cards[0])
	if len(related) != 0 {
		t.Errorf("relatedPosts() = %v, want empty", related)
	}
}

func TestGroupSkillsKeepsOrder(t *testing.T) {
	skills := skillFixtures()
	groups := groupSkills(skills)
	if len(groups) != 2 {
		t.Fatalf("groupSkills() produced %d groups, want 2", len(groups))
	}
	if groups[0].Category != "Backend" || groups[1].Category != "Frontend" {
		t.Errorf("group order = %q, %q; want first-seen order", groups[0].Category, groups[1].Category)
	}
	if len(groups[0].Skills) != 2 || groups[0].Skills[0].Name != "Go" || groups[0].Skills[1].Name != "PostgreSQL" {
		t.Errorf("Backend group = %v, want Go then PostgreSQL", groups[0].Skills)
	}
}
