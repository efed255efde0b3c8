package site

import (
	"sync"
	"time"

	"github.com/soulcreations/site/content"
)

// PageCache keeps the rendered shell document per locale. Entries expire
// after ttl so the footer year follows the clock.
type PageCache struct {
	mu     sync.RWMutex
	pages  map[content.Locale]cachedPage
	ttl    time.Duration
	render func(content.Locale) ([]byte, error)
	now    func() time.Time
}

type cachedPage struct {
	body     []byte
	rendered time.Time
}

// NewPageCache creates a PageCache that fills itself with render.
func NewPageCache(ttl time.Duration, render func(content.Locale) ([]byte, error)) *PageCache {
	return &PageCache{
		pages:  make(map[content.Locale]cachedPage),
		ttl:    ttl,
		render: render,
		now:    time.Now,
	}
}

func (c *PageCache) lookup(l content.Locale) ([]byte, bool) {
	p, ok := c.pages[l]
	if !ok || c.now().Sub(p.rendered) >= c.ttl {
		return nil, false
	}
	return p.body, true
}

// Get returns the shell for l. It tries a read lock first and only takes the
// write lock when the entry must be rendered.
func (c *PageCache) Get(l content.Locale) ([]byte, error) {
	c.mu.RLock()
	body, ok := c.lookup(l)
	c.mu.RUnlock()
	if ok {
		return body, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if body, ok := c.lookup(l); ok {
		return body, nil
	}
	body, err := c.render(l)
	if err != nil {
		return nil, err
	}
	c.pages[l] = cachedPage{body: body, rendered: c.now()}
	return body, nil
}

// Invalidate clears the cache so the next read renders again.
func (c *PageCache) Invalidate() {
	c.mu.Lock()
	c.pages = make(map[content.Locale]cachedPage)
	c.mu.Unlock()
}
