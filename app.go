// Package geopage serves a generator of self-contained 1990s-style personal
// homepages, built with Go, Echo, and templ.
//
// Visitors fill a form, preview or download the generated page, and may
// publish it. Published sites keep a view counter and a guestbook and are
// listed in a gallery, a sitemap and an RSS feed.
package geopage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/eringen/geopage/sitecfg"
	"github.com/eringen/geopage/sitegen"
	"github.com/eringen/geopage/store"
	"github.com/eringen/geopage/views"
)

// SiteStore is the persistence gateway the application needs.
// *store.Store implements it.
type SiteStore interface {
	CreateSite(ctx context.Context, cfg sitecfg.Config, ownerID string) (string, error)
	UpdateSite(ctx context.Context, id, ownerID string, cfg sitecfg.Config) (string, error)
	GetSite(ctx context.Context, id string) (sitecfg.Site, error)
	ListSitesByOwner(ctx context.Context, ownerID string) ([]sitecfg.Site, error)
	ListSites(ctx context.Context, limit int) ([]sitecfg.Site, error)
	IncrementViews(ctx context.Context, id string) error
	AppendGuestbookEntry(ctx context.Context, siteID string, entry sitecfg.GuestbookEntry) (string, error)
	ListGuestbookEntries(ctx context.Context, siteID string, limit int) ([]sitecfg.GuestbookEntry, error)
	CountGuestbookEntries(ctx context.Context, siteID string) (int, error)
	CountGuestbookEntriesBatch(ctx context.Context, siteIDs []string) (map[string]int, error)
}

var _ SiteStore = (*store.Store)(nil)

// ViewFuncs holds the components the application renders. Nil fields fall
// back to the views package.
type ViewFuncs struct {
	Home        func(page views.FormPage) templ.Component
	SiteDetail  func(page views.SitePage) templ.Component
	Gallery     func(page views.ListPage) templ.Component
	MySites     func(page views.ListPage) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// DefaultViews returns the built-in pages.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:        views.Home,
		SiteDetail:  views.SiteDetail,
		Gallery:     views.Gallery,
		MySites:     views.MySites,
		NotFound:    views.NotFound,
		ServerError: views.ServerError,
	}
}

func (v *ViewFuncs) fillDefaults() {
	d := DefaultViews()
	if v.Home == nil {
		v.Home = d.Home
	}
	if v.SiteDetail == nil {
		v.SiteDetail = d.SiteDetail
	}
	if v.Gallery == nil {
		v.Gallery = d.Gallery
	}
	if v.MySites == nil {
		v.MySites = d.MySites
	}
	if v.NotFound == nil {
		v.NotFound = d.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = d.ServerError
	}
}

// App is the central geopage application. It wires together the store,
// generator, cache, handlers, middleware, and views.
type App struct {
	Config    AppConfig
	Echo      *echo.Echo
	Store     SiteStore
	Cache     *GalleryCache
	Views     ViewFuncs
	Generator *sitegen.Generator
	Log       *zap.Logger

	guestbookLimiter *RateLimiter
	createLimiter    *RateLimiter
	customRoutes     []func(*App)
	ownedStore       *store.Store
	initialized      bool
}

// New creates a geopage App with the given configuration and views.
func New(cfg AppConfig, v ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()
	v.fillDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  v,
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}
	if a.Log == nil {
		a.Log = zap.NewNop()
	}
	if a.Generator == nil {
		a.Generator = sitegen.New()
	}
	return a
}

// Init validates the configuration, opens the store unless one was supplied,
// and registers middleware and routes. Start calls it; tests may call it
// directly and drive a.Echo with httptest.
func (a *App) Init() error {
	if a.initialized {
		return nil
	}
	if err := a.Config.Validate(); err != nil {
		return fmt.Errorf("geopage: %w", err)
	}

	if a.Store == nil {
		st, err := store.NewStore(a.Config.DatabasePath)
		if err != nil {
			return fmt.Errorf("geopage: init store: %w", err)
		}
		a.ownedStore = st
		a.Store = st
	}

	a.Cache = NewGalleryCache(a.Store, a.Config.GalleryLimit, a.Config.GalleryCacheTTL)
	a.guestbookLimiter = NewRateLimiter(a.Config.GuestbookRateLimit, time.Minute)
	a.createLimiter = NewRateLimiter(a.Config.CreateRateLimit, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.initialized = true
	return nil
}

// Start initializes the app and serves HTTP until ctx is cancelled, then
// shuts down gracefully.
func (a *App) Start(ctx context.Context) error {
	if err := a.Init(); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("server starting", zap.String("addr", a.Config.Addr), zap.String("url", a.Config.URL))
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.Log.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("geopage: shutdown: %w", err)
	}
	return <-errCh
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Generator
	e.GET("/", a.handleHome)
	e.POST("/preview/", a.handlePreview)
	e.POST("/download/", a.handleDownload)

	// Owner routes
	e.POST("/sites/", a.handleCreateSite)
	e.GET("/sites/:id/edit/", a.handleEditSite)
	e.POST("/sites/:id/", a.handleUpdateSite)
	e.GET("/my/", a.handleMySites)

	// Public site pages
	e.GET("/gallery/", a.handleGallery)
	e.GET("/site/:id/", a.handleSite)
	e.GET("/site/:id/raw", a.handleSiteRaw)
	e.GET("/site/:id/download", a.handleSiteDownload)
	e.GET("/site/:id/thumb.png", a.handleThumbnail)
	e.POST("/site/:id/guestbook/", a.handleSignGuestbook)

	// JSON API
	api := e.Group("/api")
	api.GET("/presets", a.handleAPIPresets)
	api.GET("/themes", a.handleAPIThemes)
	api.POST("/validate", a.handleAPIValidate)
	api.POST("/render", a.handleAPIRender)
	api.GET("/sites/:id", a.handleAPISite)
	api.GET("/sites/:id/guestbook", a.handleAPIGuestbook)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.guestbookLimiter != nil {
		a.guestbookLimiter.Stop()
	}
	if a.createLimiter != nil {
		a.createLimiter.Stop()
	}
	var err error
	if a.ownedStore != nil {
		err = a.ownedStore.Close()
	}
	_ = a.Log.Sync()
	return err
}
