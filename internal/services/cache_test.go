package services

import (
	"testing"
	"time"
)

func TestListingsGetCachesFetch(t *testing.T) {
	listings := NewListings(time.Minute)
	calls := 0
	fetch := func() (interface{}, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	for i := 0; i < 3; i++ {
		data, err := listings.Get(CacheProjects, fetch)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if items, ok := data.([]string); !ok || len(items) != 2 {
			t.Fatalf("Get() = %v, want the fetched slice", data)
		}
	}
	if calls != 1 {
		t.Errorf("fetch ran %d times, want 1", calls)
	}
}

func TestListingsInvalidate(t *testing.T) {
	listings := NewListings(time.Minute)
	calls := 0
	fetch := func() (interface{}, error) {
		calls++
		return calls, nil
	}

	if _, err := listings.Get(CachePosts, fetch); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	listings.Invalidate(CachePosts, CacheProjects)
	if _, err := listings.Get(CachePosts, fetch); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if calls != 2 {
		t.Errorf("fetch ran %d times after invalidation, want 2", calls)
	}
}
