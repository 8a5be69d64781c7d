package assistant

import (
	"sync"

	"jobapp-backend/internal/applications"
)

// Cache is a per-request read-through memo for the two reads the assistant
// repeats: active resume text and the application list. It is created per
// request, never shared across users or requests, and invalidated on writes.
type Cache struct {
	mu sync.Mutex

	resumeText    string
	resumeName    string
	resumeLoaded  bool
	resumeMissing bool

	apps       []applications.Application
	appsLoaded bool
}

// NewCache constructs an empty Cache.
func NewCache() *Cache {
	return &Cache{}
}

func (c *Cache) resume() (text, fileName string, missing, ok bool) {
	if c == nil {
		return "", "", false, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.resumeLoaded {
		return "", "", false, false
	}
	return c.resumeText, c.resumeName, c.resumeMissing, true
}

func (c *Cache) setResume(text, fileName string, missing bool) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resumeText = text
	c.resumeName = fileName
	c.resumeMissing = missing
	c.resumeLoaded = true
}

// invalidateResume drops the memoized resume after an upload.
func (c *Cache) invalidateResume() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resumeLoaded = false
	c.resumeText = ""
	c.resumeName = ""
	c.resumeMissing = false
}

func (c *Cache) applications() ([]applications.Application, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.appsLoaded {
		return nil, false
	}
	return c.apps, true
}

func (c *Cache) setApplications(apps []applications.Application) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apps = apps
	c.appsLoaded = true
}

// invalidateApplications drops the memoized list after a new row is written.
func (c *Cache) invalidateApplications() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apps = nil
	c.appsLoaded = false
}
