package geopage

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/geopage/sitecfg"
	"github.com/eringen/geopage/store"
	"github.com/eringen/geopage/views"
)

func (a *App) handleHome(c echo.Context) error {
	cfg := defaultDraft()
	if id := c.QueryParam("preset"); id != "" {
		p, ok := sitecfg.Preset(id)
		if !ok {
			return echo.NewHTTPError(http.StatusNotFound, "unknown preset")
		}
		cfg = p.Config
	}
	return Render(c, a.Views.Home(a.formPage(c, cfg, nil, "")))
}

// handlePreview renders a draft without validation; an incomplete form still previews.
func (a *App) handlePreview(c echo.Context) error {
	rendersTotal.WithLabelValues("preview").Inc()
	return Render(c, a.Generator.Component(configFromForm(c)))
}

func (a *App) handleDownload(c echo.Context) error {
	cfg := configFromForm(c)
	rendersTotal.WithLabelValues("download").Inc()
	setAttachment(c, sitecfg.DownloadName(cfg.Name))
	return Render(c, a.Generator.Component(cfg))
}

func (a *App) handleSite(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	site, err := a.Store.GetSite(ctx, id)
	if err != nil {
		return a.mapError(c, err)
	}
	if err := a.Store.IncrementViews(ctx, id); err != nil {
		a.Log.Error("increment views", zap.String("site_id", id), zap.Error(err))
	} else {
		site.Views++
	}
	rendersTotal.WithLabelValues("detail").Inc()
	page, err := a.sitePage(c, site)
	if err != nil {
		return err
	}
	return Render(c, a.Views.SiteDetail(page))
}

func (a *App) sitePage(c echo.Context, site sitecfg.Site) (views.SitePage, error) {
	ctx := c.Request().Context()
	entries, err := a.Store.ListGuestbookEntries(ctx, site.ID, store.MaxGuestbookEntries)
	if err != nil {
		return views.SitePage{}, err
	}
	count, err := a.Store.CountGuestbookEntries(ctx, site.ID)
	if err != nil {
		return views.SitePage{}, err
	}
	return views.SitePage{
		Site: a.siteInfo(),
		Meta: views.PageMeta{
			Title:       site.Name + "'s Awesome Homepage!",
			Description: "All about " + site.Hobby,
			URL:         BuildURL(a.Config.URL, "site", site.ID),
			OGType:      "article",
		},
		CSRF:           CsrfToken(c),
		Record:         site,
		Document:       a.Generator.Generate(site.Config),
		Entries:        entries,
		EntryCount:     count,
		IsOwner:        site.OwnerID != "" && site.OwnerID == OwnerID(c),
		DownloadName:   sitecfg.DownloadName(site.Name),
		GuestbookLimit: store.MaxGuestbookEntries,
	}, nil
}

func (a *App) handleSiteRaw(c echo.Context) error {
	site, err := a.Store.GetSite(c.Request().Context(), c.Param("id"))
	if err != nil {
		return a.mapError(c, err)
	}
	rendersTotal.WithLabelValues("raw").Inc()
	return Render(c, a.Generator.Component(site.Config))
}

func (a *App) handleSiteDownload(c echo.Context) error {
	site, err := a.Store.GetSite(c.Request().Context(), c.Param("id"))
	if err != nil {
		return a.mapError(c, err)
	}
	rendersTotal.WithLabelValues("download").Inc()
	setAttachment(c, sitecfg.DownloadName(site.Name))
	return Render(c, a.Generator.Component(site.Config))
}

func (a *App) handleGallery(c echo.Context) error {
	entries, err := a.Cache.List(c.Request().Context())
	if err != nil {
		return err
	}
	return Render(c, a.Views.Gallery(views.ListPage{
		Site: a.siteInfo(),
		Meta: views.PageMeta{
			Title:       "The Gallery",
			Description: "The newest homepages built on " + a.Config.Name,
			URL:         BuildURL(a.Config.URL, "gallery"),
			OGType:      "website",
		},
		Cards: siteCards(entries),
	}))
}

func (a *App) handleMySites(c echo.Context) error {
	page := views.ListPage{Site: a.siteInfo(), Meta: views.PageMeta{Title: "My Sites"}}
	owner := OwnerID(c)
	if owner == "" {
		return Render(c, a.Views.MySites(page))
	}
	ctx := c.Request().Context()
	sites, err := a.Store.ListSitesByOwner(ctx, owner)
	if err != nil {
		return err
	}
	entries, err := withGuestbookCounts(ctx, a.Store, sites)
	if err != nil {
		return err
	}
	page.Cards = siteCards(entries)
	return Render(c, a.Views.MySites(page))
}

func siteCards(entries []GalleryEntry) []views.SiteCard {
	cards := make([]views.SiteCard, len(entries))
	for i, e := range entries {
		cards[i] = views.SiteCard{Record: e.Site, GuestbookCount: e.GuestbookCount}
	}
	return cards
}

func (a *App) handleSitemap(c echo.Context) error {
	entries, err := a.Cache.List(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderSitemap(c, entries)
}

func (a *App) handleFeed(c echo.Context) error {
	entries, err := a.Cache.List(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderRSS(c, entries)
}

func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nDisallow: /sites/\nDisallow: /my/\nDisallow: /api/\n\nSitemap: %s\n",
		strings.TrimSuffix(BuildURL(a.Config.URL), "/")+"/sitemap.xml")
	return c.String(http.StatusOK, body)
}

func setAttachment(c echo.Context, filename string) {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
}

// isValidationError reports whether err is a user-correctable input error.
func isValidationError(err error) bool {
	return errors.Is(err, sitecfg.ErrMissingField) ||
		errors.Is(err, sitecfg.ErrInvalidEmail) ||
		errors.Is(err, sitecfg.ErrEntryEmpty) ||
		errors.Is(err, sitecfg.ErrEntryTooLong)
}

// mapError turns store and validation sentinels into HTTP responses.
// Anything else goes to the error handler.
func (a *App) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, sitecfg.ErrNotFound):
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
	case errors.Is(err, sitecfg.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusForbidden, "you can only edit your own sites")
	case isValidationError(err):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return err
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound && !wantsJSON(c) {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Log.Error("server error",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err))
		if !wantsJSON(c) {
			_ = RenderStatus(c, code, a.Views.ServerError())
			return
		}
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

func wantsJSON(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, "/api/")
}
