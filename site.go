// Package site hosts the Soul Creations client. The server only ever delivers
// the static shell: a document with the landing page prerendered for the
// visitor's language, the embedded boot script and stylesheet, and the
// compiled WebAssembly client from the static directory. Everything behind
// the "#" is resolved in the browser.
package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/soulcreations/site/content"
	"github.com/soulcreations/site/views"
)

// ViewFuncs holds the components the host renders. Nil fields fall back to
// the built-in views, so callers can replace the document shell without
// touching the landing page or the other way around.
type ViewFuncs struct {
	// Shell wraps a prerendered page in the full HTML document.
	Shell func(page views.Page) templ.Component
	// Landing builds the page prerendered for locale l.
	Landing func(l content.Locale) views.Page
}

// App is the host server.
type App struct {
	Config Config
	Echo   *echo.Echo
	Views  ViewFuncs
	Table  *content.Table
	Cache  *PageCache

	log          *zap.Logger
	staticDir    string
	now          func() time.Time
	customRoutes []func(*App)
	setupOnce    sync.Once
}

// New creates an App. Routes are registered on the first call to Handler or
// Start.
func New(cfg Config, v ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     v,
		log:       zap.NewNop(),
		staticDir: cfg.StaticDir,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Table == nil {
		a.Table = content.Default()
	}
	if a.Views.Shell == nil {
		a.Views.Shell = a.defaultShell
	}
	if a.Views.Landing == nil {
		a.Views.Landing = a.defaultLanding
	}
	a.Cache = NewPageCache(a.Config.CacheTTL, a.renderShell)
	a.Echo.HideBanner = true
	a.Echo.HidePort = true
	return a
}

// Handler returns the fully configured HTTP handler.
func (a *App) Handler() http.Handler {
	a.setup()
	return a.Echo
}

// Start serves on Config.Addr until ctx is cancelled, then shuts down within
// Config.ShutdownTimeout.
func (a *App) Start(ctx context.Context) error {
	a.setup()

	errCh := make(chan error, 1)
	go func() {
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	a.log.Info("listening", zap.String("addr", a.Config.Addr), zap.String("url", a.Config.URL))

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("site: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	a.log.Info("shutting down", zap.Duration("timeout", a.Config.ShutdownTimeout))
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("site: shutdown: %w", err)
	}
	return nil
}

// Close releases the listener immediately.
func (a *App) Close() error {
	if err := a.Echo.Close(); err != nil {
		return fmt.Errorf("site: close: %w", err)
	}
	return nil
}

func (a *App) setup() {
	a.setupOnce.Do(func() {
		a.setupMiddleware()
		a.setupRoutes()
		for _, fn := range a.customRoutes {
			fn(a)
		}
	})
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded assets win over same-named files in the static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(embeddedFS))))
	for _, name := range publicAssets() {
		e.GET("/public/"+name, embeddedHandler)
	}
	e.FileFS("/favicon.svg", "embedded/favicon.svg", EmbeddedAssets)

	// site.wasm and wasm_exec.js
	e.Static("/public", a.staticDir)

	e.GET("/", a.handleShell)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/healthz", handleHealth)
}

func (a *App) siteConfig() views.SiteConfig {
	return views.SiteConfig{URL: a.Config.URL, Description: a.Config.Description}
}

func (a *App) defaultShell(page views.Page) templ.Component {
	return views.Component(views.Document(a.siteConfig(), a.Table, page))
}

func (a *App) defaultLanding(l content.Locale) views.Page {
	return views.Landing(a.Table, views.Options{Preferred: l, Year: a.now().Year()})
}

// renderShell produces the shell document for locale l.
func (a *App) renderShell(l content.Locale) ([]byte, error) {
	var buf bytes.Buffer
	if err := a.Views.Shell(a.Views.Landing(l)).Render(context.Background(), &buf); err != nil {
		return nil, fmt.Errorf("site: render shell %s: %w", l, err)
	}
	return buf.Bytes(), nil
}
