package services

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Listing cache keys, one per publicly listed entity type.
const (
	CacheProjects       = "projects"
	CachePosts          = "posts"
	CacheProfile        = "profile"
	CacheExperience     = "experience"
	CacheEducation      = "education"
	CacheSkills         = "skills"
	CacheCertifications = "certifications"
)

// Listings is a cache-aside wrapper over the public list queries. Every
// successful admin write invalidates the owning entity type's entry, so
// public pages pick up changes on the next request.
type Listings struct {
	c *cache.Cache
}

func NewListings(ttl time.Duration) *Listings {
	return &Listings{c: cache.New(ttl, 2*ttl)}
}

func (l *Listings) Get(key string, fetch func() (interface{}, error)) (interface{}, error) {
	if data, found := l.c.Get(key); found {
		return data, nil
	}
	data, err := fetch()
	if err != nil {
		return nil, err
	}
	l.c.Set(key, data, cache.DefaultExpiration)
	return data, nil
}

func (l *Listings) Invalidate(keys ...string) {
	for _, key := range keys {
		l.c.Delete(key)
	}
}
