// Package client runs the site in the browser: it owns the current route,
// re-renders on every fragment change and turns clicks into navigation.
//
// Everything here runs on the single browser event loop. Each handler
// completes before the next event is delivered, so App holds no locks.
package client

import (
	"time"

	"go.uber.org/zap"

	"github.com/soulcreations/site/content"
	"github.com/soulcreations/site/route"
	"github.com/soulcreations/site/views"
)

// Mount is the DOM region views are rendered into.
type Mount interface {
	// Replace swaps the rendered view in and updates the document title
	// and language.
	Replace(html, title string, lang content.Locale) error
	ScrollTo(id string)
	ScrollTop()
}

// App dispatches routes to views.
type App struct {
	table     *content.Table
	resolver  *route.Resolver
	mount     Mount
	log       *zap.Logger
	preferred content.Locale
	now       func() time.Time

	current     route.Route
	rendered    bool
	unsubscribe func()
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.log = l
		}
	}
}

// WithPreferred sets the locale highlighted on the landing page.
func WithPreferred(l content.Locale) Option {
	return func(a *App) {
		a.preferred = l
	}
}

// WithClock overrides the clock used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

// New creates an App. Call Start to render and begin following the fragment.
func New(table *content.Table, resolver *route.Resolver, mount Mount, opts ...Option) *App {
	a := &App{
		table:     table,
		resolver:  resolver,
		mount:     mount,
		log:       zap.NewNop(),
		preferred: content.English,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start renders the current route and re-renders on every change.
func (a *App) Start() {
	if a.unsubscribe != nil {
		return
	}
	a.unsubscribe = a.resolver.Watch(func(r route.Route) {
		a.show(r)
	})
	a.show(a.resolver.Current())
}

// Stop detaches from the navigation port.
func (a *App) Stop() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

// Current is the route last rendered.
func (a *App) Current() route.Route {
	return a.current
}

// Render re-resolves the fragment and renders it.
func (a *App) Render() {
	a.show(a.resolver.Current())
}

func (a *App) show(r route.Route) {
	page := views.Select(r, a.table, views.Options{Preferred: a.preferred, Year: a.now().Year()})
	html, err := views.String(page.Body)
	if err != nil {
		a.log.Error("render view", zap.String("view", string(page.Kind)), zap.Error(err))
		return
	}
	if err := a.mount.Replace(html, page.Title, page.Lang); err != nil {
		a.log.Error("mount view", zap.String("view", string(page.Kind)), zap.Error(err))
		return
	}
	changed := !a.rendered || a.current.Path() != r.Path()
	a.current = r
	a.rendered = true
	if changed {
		a.mount.ScrollTop()
	}
	a.log.Debug("route rendered",
		zap.String("path", r.Path()),
		zap.String("view", string(page.Kind)),
		zap.String("lang", string(page.Lang)),
	)
}
